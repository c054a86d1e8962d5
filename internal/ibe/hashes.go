package ibe

import (
	"crypto/sha256"
	"math/big"

	bls "github.com/cloudflare/circl/ecc/bls12381"
)

// Order of the BLS12-381 scalar field, used to reduce hash output into a
// valid scalar for H3.
var scalarOrder, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// h2 maps a Gt element to a 32-byte mask: SHA-256 over the serialized
// element.
func h2(gt *bls.Gt) ([PayloadSize]byte, error) {
	raw, err := gt.MarshalBinary()
	if err != nil {
		return [PayloadSize]byte{}, err
	}
	return sha256.Sum256(raw), nil
}

// h3 hashes (a || b) into the scalar field: SHA-256 interpreted as a
// big-endian integer and reduced modulo the group order, so the bytes
// handed to SetBytes are always in range.
func h3(a, b []byte) *bls.Scalar {
	h := sha256.New()
	h.Write(a)
	h.Write(b)
	k := new(big.Int).SetBytes(h.Sum(nil))
	k.Mod(k, scalarOrder)

	var buf [32]byte
	k.FillBytes(buf[:])
	s := new(bls.Scalar)
	s.SetBytes(buf[:])
	return s
}

// h4 is the payload mask derived from sigma: a plain SHA-256 digest.
func h4(a []byte) [PayloadSize]byte {
	return sha256.Sum256(a)
}
