package ffi

import (
	"unsafe"

	"github.com/ideal-lab5/timelock/pkg/timelock"
)

const (
	// IdentitySize is the size of a round identity buffer.
	IdentitySize = timelock.IdentitySize

	// SecretKeySize is the size of the secret-key buffer read by Encrypt.
	SecretKeySize = timelock.SecretKeySize
)

// CreateIdentity writes the drand identity for round into out, which must
// hold at least IdentitySize bytes. Only the first IdentitySize bytes are
// written.
func CreateIdentity(round uint64, out unsafe.Pointer, outLen uint) Result {
	if out == nil || outLen < IdentitySize {
		recordError("identity buffer is null or smaller than 32 bytes")
		return InvalidInput
	}
	id := timelock.RoundIdentity(round)
	dst := unsafe.Slice((*byte)(out), outLen)
	copy(dst, id[:])
	clearError()
	return Success
}

// EstimateCiphertextSize writes an upper bound on the ciphertext size for a
// messageLen-byte message through out. No cryptography runs; this is a pure
// arithmetic bound callers use to pre-size buffers.
func EstimateCiphertextSize(messageLen uint, out *uint) Result {
	if out == nil {
		recordError("null output pointer for estimated size")
		return InvalidInput
	}
	*out = messageLen + timelock.CiphertextOverhead
	clearError()
	return Success
}

// Init clears the calling thread's error state. Safe to call any number of
// times; the boundary holds no other global state.
func Init() Result {
	clearError()
	return Success
}

// Cleanup is the counterpart to Init. Also idempotent.
func Cleanup() {
	clearError()
}
