package ffi

import (
	"errors"

	"github.com/ideal-lab5/timelock/pkg/timelock"
)

// Result mirrors timelock_result_t in include/timelock.h. The integer
// values are the wire contract with every non-Go caller and must never be
// reordered.
type Result int32

const (
	Success Result = iota
	InvalidInput
	EncryptionFailed
	DecryptionFailed
	MemoryError
	SerializationError
	InvalidPublicKey
	InvalidSignature
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case InvalidInput:
		return "InvalidInput"
	case EncryptionFailed:
		return "EncryptionFailed"
	case DecryptionFailed:
		return "DecryptionFailed"
	case MemoryError:
		return "MemoryError"
	case SerializationError:
		return "SerializationError"
	case InvalidPublicKey:
		return "InvalidPublicKey"
	case InvalidSignature:
		return "InvalidSignature"
	}
	return "Unknown"
}

// encryptResult translates an Encrypt error into its boundary code.
func encryptResult(err error) Result {
	switch {
	case errors.Is(err, timelock.ErrInvalidInput):
		return InvalidInput
	case errors.Is(err, timelock.ErrInvalidPublicKey):
		return InvalidPublicKey
	case errors.Is(err, timelock.ErrMalformedCiphertext):
		return SerializationError
	}
	return EncryptionFailed
}

// decryptResult translates a Decrypt error into its boundary code.
func decryptResult(err error) Result {
	switch {
	case errors.Is(err, timelock.ErrInvalidInput):
		return InvalidInput
	case errors.Is(err, timelock.ErrInvalidSignature):
		return InvalidSignature
	case errors.Is(err, timelock.ErrMalformedCiphertext):
		return SerializationError
	}
	return DecryptionFailed
}
