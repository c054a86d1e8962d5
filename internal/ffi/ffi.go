//go:build cgo && !windows

package ffi

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include <stdlib.h>
#include "timelock.h"
*/
import "C"

import (
	"unsafe"

	"github.com/ideal-lab5/timelock/pkg/timelock"
)

// cVersion lives for the whole process; timelock_get_version hands the
// pointer straight to C callers.
var cVersion = C.CString(timelock.Version)

// Encrypt validates the caller's pointers, parses the public key, encrypts
// message to identity and, on success, writes a freshly allocated ciphertext
// handle through out (a timelock_ciphertext_t **). Ownership of the handle
// passes to the caller; on any failure out is left untouched and no
// allocation survives.
//
// Validation order is fixed: null pointers and identity length first
// (InvalidInput), then public-key parsing (InvalidPublicKey), then the
// cryptographic core.
func Encrypt(message unsafe.Pointer, messageLen uint,
	identity unsafe.Pointer, identityLen uint,
	publicKeyHex unsafe.Pointer, secretKey unsafe.Pointer,
	out unsafe.Pointer) Result {

	if message == nil || identity == nil || publicKeyHex == nil || secretKey == nil || out == nil ||
		identityLen != IdentitySize {
		recordError("null argument, or identity length is not 32 bytes")
		return InvalidInput
	}

	pk, err := timelock.ParsePublicKey(C.GoString((*C.char)(publicKeyHex)))
	if err != nil {
		recordError(err.Error())
		return InvalidPublicKey
	}

	msg := unsafe.Slice((*byte)(message), messageLen)
	id := unsafe.Slice((*byte)(identity), identityLen)

	// Detach the secret key from caller memory and wipe the copy after use.
	sk := make([]byte, SecretKeySize)
	copy(sk, unsafe.Slice((*byte)(secretKey), SecretKeySize))
	defer timelock.ZeroizeBytes(sk)

	ciphertext, err := timelock.Encrypt(pk, id, sk, msg)
	if err != nil {
		recordError(err.Error())
		return encryptResult(err)
	}

	h, res := newHandle(ciphertext)
	if res != Success {
		recordError("failed to allocate ciphertext buffer")
		return res
	}
	*(*unsafe.Pointer)(out) = h
	clearError()
	return Success
}

// Decrypt opens the ciphertext behind handle with the hex-encoded beacon
// signature and copies the plaintext into out. inoutLen carries the buffer
// capacity in and the plaintext length out; when the capacity is too small
// it is set to the required length and MemoryError is returned so the
// caller can reallocate and retry. The handle is borrowed and never
// mutated.
func Decrypt(handle unsafe.Pointer, signatureHex unsafe.Pointer,
	out unsafe.Pointer, inoutLen *uint) Result {

	if handle == nil || signatureHex == nil || out == nil || inoutLen == nil {
		recordError("null argument to decrypt")
		return InvalidInput
	}
	ciphertext, ok := handleView(handle)
	if !ok {
		recordError("ciphertext handle has a null data pointer")
		return InvalidInput
	}

	sig, err := timelock.ParseSignature(C.GoString((*C.char)(signatureHex)))
	if err != nil {
		recordError(err.Error())
		return InvalidSignature
	}

	plaintext, err := timelock.Decrypt(ciphertext, sig)
	if err != nil {
		recordError(err.Error())
		return decryptResult(err)
	}

	if uint(len(plaintext)) > *inoutLen {
		*inoutLen = uint(len(plaintext))
		recordError("output buffer too small for recovered plaintext")
		return MemoryError
	}
	if len(plaintext) > 0 {
		copy(unsafe.Slice((*byte)(out), *inoutLen), plaintext)
	}
	*inoutLen = uint(len(plaintext))
	clearError()
	return Success
}

// VersionPtr returns the static version string as a C pointer. Callers must
// not free it.
func VersionPtr() unsafe.Pointer {
	return unsafe.Pointer(cVersion)
}
