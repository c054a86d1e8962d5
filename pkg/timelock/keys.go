package timelock

import (
	bls "github.com/cloudflare/circl/ecc/bls12381"
)

const (
	// PublicKeySize is the compressed size of a beacon public key (G2).
	PublicKeySize = 96

	// SignatureSize is the compressed size of a beacon signature (G1).
	SignatureSize = 48

	// SecretKeySize is the size of the ephemeral session secret supplied
	// to Encrypt.
	SecretKeySize = 32
)

// PublicKey is a beacon public key, a point in G2.
type PublicKey struct {
	p bls.G2
}

// ParsePublicKey decodes a hex-encoded compressed G2 public key, as
// published by drand chain info endpoints.
func ParsePublicKey(hexKey string) (*PublicKey, error) {
	const op = "ParsePublicKey"
	raw, err := decodeHex(hexKey)
	if err != nil {
		return nil, errorf(op, ErrInvalidPublicKey, "%v", err)
	}
	if len(raw) != PublicKeySize {
		return nil, errorf(op, ErrInvalidPublicKey, "got %d bytes, want %d", len(raw), PublicKeySize)
	}
	var pk PublicKey
	if err := pk.p.SetBytes(raw); err != nil {
		return nil, errorf(op, ErrInvalidPublicKey, "not a valid G2 element")
	}
	return &pk, nil
}

// Bytes returns the compressed encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	return pk.p.BytesCompressed()
}

// Signature is a beacon signature over a round identity, a point in G1. For
// a timelock ciphertext it doubles as the IBE private key of the round.
type Signature struct {
	p bls.G1
}

// ParseSignature decodes a hex-encoded compressed G1 signature, as found in
// a drand beacon pulse.
func ParseSignature(hexSig string) (*Signature, error) {
	const op = "ParseSignature"
	raw, err := decodeHex(hexSig)
	if err != nil {
		return nil, errorf(op, ErrInvalidSignature, "%v", err)
	}
	if len(raw) != SignatureSize {
		return nil, errorf(op, ErrInvalidSignature, "got %d bytes, want %d", len(raw), SignatureSize)
	}
	var sig Signature
	if err := sig.p.SetBytes(raw); err != nil {
		return nil, errorf(op, ErrInvalidSignature, "not a valid G1 element")
	}
	return &sig, nil
}

// Bytes returns the compressed encoding of the signature.
func (s *Signature) Bytes() []byte {
	return s.p.BytesCompressed()
}
