//go:build !cgo || windows

package ffi

import "unsafe"

// Stub implementations for non-cgo builds and Windows. The handle-based
// operations need the C heap and therefore cannot run; they fail loudly
// rather than pretend.

func Encrypt(message unsafe.Pointer, messageLen uint,
	identity unsafe.Pointer, identityLen uint,
	publicKeyHex unsafe.Pointer, secretKey unsafe.Pointer,
	out unsafe.Pointer) Result {
	recordError("timelock boundary not built with cgo")
	return EncryptionFailed
}

func Decrypt(handle unsafe.Pointer, signatureHex unsafe.Pointer,
	out unsafe.Pointer, inoutLen *uint) Result {
	recordError("timelock boundary not built with cgo")
	return DecryptionFailed
}

func FreeCiphertext(handle unsafe.Pointer) {}

func VersionPtr() unsafe.Pointer { return nil }
