package timelock

import "github.com/ideal-lab5/timelock/internal/ibe"

// Wire layout of a ciphertext, in order:
//
//	U (96, compressed G2) || V (32) || W (32) || nonce (12) || sealed (len+16)
const (
	ibeUSize  = 96 // compressed G2 point
	ibeVSize  = ibe.PayloadSize
	ibeWSize  = ibe.PayloadSize
	nonceSize = 12 // AES-GCM standard nonce
	tagSize   = 16 // AES-GCM tag

	// wireOverhead is the exact fixed cost of the wire format over the
	// plaintext length.
	wireOverhead = ibeUSize + ibeVSize + ibeWSize + nonceSize + tagSize
)

// CiphertextOverhead is the documented upper bound on the fixed bytes
// Encrypt adds on top of the plaintext. The exact wire cost is currently
// wireOverhead (188); the published constant keeps headroom for
// serialization changes and must move in lockstep with the wire format.
// TestEstimateCoversRealCiphertexts cross-checks it against real
// encryptions.
const CiphertextOverhead = 200

// EstimateCiphertextSize returns a safe upper bound for the ciphertext size
// of a messageLen-byte message, for any key and identity. It is an upper
// bound, not an exact prediction.
func EstimateCiphertextSize(messageLen int) int {
	return messageLen + CiphertextOverhead
}
