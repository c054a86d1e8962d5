package timelock

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/ideal-lab5/timelock/internal/ibe"
)

// aeadInfo domain-separates the HKDF derivation of the AEAD key from the
// session secret.
var aeadInfo = []byte("timelock/aead/aes256gcm/v1")

// newAEAD derives the AES-256-GCM instance for a session secret via
// HKDF-SHA-256. The derived key is wiped once the cipher holds its own key
// schedule.
func newAEAD(session []byte) (cipher.AEAD, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, session, nil, aeadInfo), key); err != nil {
		return nil, err
	}
	defer ZeroizeBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals message so it can only be opened with the beacon signature
// over identity. secretKey is a caller-chosen 32-byte session secret; it is
// IBE-encrypted to the identity and also keys the AEAD layer, so it needs no
// storage by the caller. A zero-length message is valid and produces an
// overhead-only ciphertext.
func Encrypt(pk *PublicKey, identity, secretKey, message []byte) ([]byte, error) {
	const op = "Encrypt"
	if pk == nil {
		return nil, errorf(op, ErrInvalidInput, "nil public key")
	}
	if len(identity) != IdentitySize {
		return nil, errorf(op, ErrInvalidInput, "identity must be %d bytes, got %d", IdentitySize, len(identity))
	}
	if len(secretKey) != SecretKeySize {
		return nil, errorf(op, ErrInvalidInput, "secret key must be %d bytes, got %d", SecretKeySize, len(secretKey))
	}

	var session [ibe.PayloadSize]byte
	copy(session[:], secretKey)
	defer ZeroizeBytes(session[:])

	ibeCT, err := ibe.Encrypt(&pk.p, identity, &session, rand.Reader)
	if err != nil {
		return nil, errorf(op, ErrEncryptionFailed, "%v", err)
	}

	aead, err := newAEAD(session[:])
	if err != nil {
		return nil, errorf(op, ErrEncryptionFailed, "%v", err)
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, errorf(op, ErrEncryptionFailed, "%v", err)
	}

	out := make([]byte, 0, wireOverhead+len(message))
	out = append(out, ibeCT.U.BytesCompressed()...)
	out = append(out, ibeCT.V[:]...)
	out = append(out, ibeCT.W[:]...)
	out = append(out, nonce[:]...)
	out = aead.Seal(out, nonce[:], message, nil)
	return out, nil
}

// Decrypt opens a ciphertext with the beacon signature for its round. The
// ciphertext is read only, never consumed. Plaintext is returned only after
// both the FullIdent commitment check and the AEAD tag verify; on any
// failure no partially decrypted data escapes.
func Decrypt(ciphertext []byte, sig *Signature) ([]byte, error) {
	const op = "Decrypt"
	if sig == nil {
		return nil, errorf(op, ErrInvalidInput, "nil signature")
	}
	if len(ciphertext) < wireOverhead {
		return nil, errorf(op, ErrMalformedCiphertext, "got %d bytes, below the %d-byte minimum", len(ciphertext), wireOverhead)
	}

	var ibeCT ibe.Ciphertext
	if err := ibeCT.U.SetBytes(ciphertext[:ibeUSize]); err != nil {
		return nil, errorf(op, ErrMalformedCiphertext, "invalid commitment point")
	}
	off := ibeUSize
	copy(ibeCT.V[:], ciphertext[off:off+ibeVSize])
	off += ibeVSize
	copy(ibeCT.W[:], ciphertext[off:off+ibeWSize])
	off += ibeWSize
	nonce := ciphertext[off : off+nonceSize]
	sealed := ciphertext[off+nonceSize:]

	session, err := ibe.Decrypt(&sig.p, &ibeCT)
	if err != nil {
		return nil, errorf(op, ErrDecryptionFailed, "signature does not open this ciphertext")
	}
	defer ZeroizeBytes(session[:])

	aead, err := newAEAD(session[:])
	if err != nil {
		return nil, errorf(op, ErrDecryptionFailed, "%v", err)
	}
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, errorf(op, ErrDecryptionFailed, "authentication failed")
	}
	return plaintext, nil
}
