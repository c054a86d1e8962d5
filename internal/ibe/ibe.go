// Package ibe implements Boneh-Franklin FullIdent identity-based encryption
// over BLS12-381, oriented the way drand quicknet uses the curve: beacon
// public keys live in G2, identities are hashed to G1, and the beacon
// signature for a round doubles as the IBE private key for that round's
// identity.
//
// FullIdent here always carries a fixed 32-byte payload (the session secret
// of the outer timelock construction), never the message itself.
package ibe

import (
	"errors"
	"io"

	bls "github.com/cloudflare/circl/ecc/bls12381"
)

// PayloadSize is the number of bytes a FullIdent ciphertext carries.
const PayloadSize = 32

// ErrDecryptionFailed reports that the re-derived commitment U did not match
// the ciphertext, meaning the private key is wrong for this identity or the
// ciphertext was tampered with.
var ErrDecryptionFailed = errors.New("ibe: decryption failed")

// identityDST is the RFC 9380 domain separation tag drand quicknet uses when
// hashing messages onto G1.
var identityDST = []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_")

// Ciphertext is a FullIdent ciphertext <U, V, W>.
type Ciphertext struct {
	// U = rP2, the sender's commitment in G2.
	U bls.G2
	// V = sigma XOR H2(e(Q_id, P_pub)^r)
	V [PayloadSize]byte
	// W = payload XOR H4(sigma)
	W [PayloadSize]byte
}

// HashIdentity maps identity bytes onto G1, producing Q_id.
func HashIdentity(identity []byte) *bls.G1 {
	q := new(bls.G1)
	q.Hash(identity, identityDST)
	return q
}

// Encrypt produces a FullIdent ciphertext binding payload to the given
// identity under the beacon public key pPub. The randomness sigma is drawn
// from rng; everything else is deterministic in (sigma, payload).
func Encrypt(pPub *bls.G2, identity []byte, payload *[PayloadSize]byte, rng io.Reader) (*Ciphertext, error) {
	var sigma [PayloadSize]byte
	if _, err := io.ReadFull(rng, sigma[:]); err != nil {
		return nil, err
	}

	// r = H3(sigma, payload) makes the ciphertext committing: decryption
	// can re-derive r and reject anything that was not built this way.
	r := h3(sigma[:], payload[:])

	var ct Ciphertext
	ct.U.ScalarMult(r, bls.G2Generator())

	// g_id = e(Q_id, P_pub)^r, computed as e(Q_id, r*P_pub).
	rPub := new(bls.G2)
	rPub.ScalarMult(r, pPub)
	gid := bls.Pair(HashIdentity(identity), rPub)

	mask, err := h2(gid)
	if err != nil {
		return nil, err
	}
	xorPayload(&ct.V, &sigma, &mask)

	h4sigma := h4(sigma[:])
	xorPayload(&ct.W, payload, &h4sigma)
	return &ct, nil
}

// Decrypt recovers the payload from ct using the identity's private key,
// which for drand is the beacon's G1 signature over the round identity.
// The recovered payload is released only after the U = rP2 check passes, so
// a wrong key or a mangled ciphertext never yields attacker-influenced bytes.
func Decrypt(priv *bls.G1, ct *Ciphertext) (*[PayloadSize]byte, error) {
	gid := bls.Pair(priv, &ct.U)
	mask, err := h2(gid)
	if err != nil {
		return nil, err
	}

	var sigma [PayloadSize]byte
	xorPayload(&sigma, &ct.V, &mask)

	h4sigma := h4(sigma[:])
	var payload [PayloadSize]byte
	xorPayload(&payload, &ct.W, &h4sigma)

	r := h3(sigma[:], payload[:])
	var u bls.G2
	u.ScalarMult(r, bls.G2Generator())
	if !u.IsEqual(&ct.U) {
		return nil, ErrDecryptionFailed
	}
	return &payload, nil
}

func xorPayload(dst, a, b *[PayloadSize]byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
