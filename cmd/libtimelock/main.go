//go:build cgo && !windows

package main

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include <stdlib.h>
#include "timelock.h"
*/
import "C"

import (
	"unsafe"

	"github.com/ideal-lab5/timelock/internal/ffi"
)

// The exported functions below are the entire C surface of the library.
// They only translate between C and Go representations; validation, error
// recording and the cryptography itself live in internal/ffi and
// pkg/timelock.

//export timelock_create_drand_identity
func timelock_create_drand_identity(roundNumber C.uint64_t, identityOut *C.uint8_t, identityLen C.size_t) C.timelock_result_t {
	return C.timelock_result_t(ffi.CreateIdentity(uint64(roundNumber), unsafe.Pointer(identityOut), uint(identityLen)))
}

//export timelock_estimate_ciphertext_size
func timelock_estimate_ciphertext_size(messageLen C.size_t, estimatedSizeOut *C.size_t) C.timelock_result_t {
	return C.timelock_result_t(ffi.EstimateCiphertextSize(uint(messageLen), (*uint)(unsafe.Pointer(estimatedSizeOut))))
}

//export timelock_encrypt
func timelock_encrypt(message *C.uint8_t, messageLen C.size_t,
	identity *C.uint8_t, identityLen C.size_t,
	publicKeyHex *C.char,
	secretKey *C.uint8_t,
	ciphertextOut **C.timelock_ciphertext_t) C.timelock_result_t {
	return C.timelock_result_t(ffi.Encrypt(
		unsafe.Pointer(message), uint(messageLen),
		unsafe.Pointer(identity), uint(identityLen),
		unsafe.Pointer(publicKeyHex),
		unsafe.Pointer(secretKey),
		unsafe.Pointer(ciphertextOut)))
}

//export timelock_decrypt
func timelock_decrypt(ciphertext *C.timelock_ciphertext_t,
	signatureHex *C.char,
	plaintextOut *C.uint8_t,
	plaintextLen *C.size_t) C.timelock_result_t {
	return C.timelock_result_t(ffi.Decrypt(
		unsafe.Pointer(ciphertext),
		unsafe.Pointer(signatureHex),
		unsafe.Pointer(plaintextOut),
		(*uint)(unsafe.Pointer(plaintextLen))))
}

//export timelock_ciphertext_free
func timelock_ciphertext_free(ciphertext *C.timelock_ciphertext_t) {
	ffi.FreeCiphertext(unsafe.Pointer(ciphertext))
}

//export timelock_get_last_error
func timelock_get_last_error() *C.char {
	return (*C.char)(ffi.LastErrorPtr())
}

//export timelock_get_version
func timelock_get_version() *C.char {
	return (*C.char)(ffi.VersionPtr())
}

//export timelock_init
func timelock_init() C.timelock_result_t {
	return C.timelock_result_t(ffi.Init())
}

//export timelock_cleanup
func timelock_cleanup() {
	ffi.Cleanup()
}

func main() {}
