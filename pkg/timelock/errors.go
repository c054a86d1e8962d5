package timelock

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a malformed or missing argument.
	ErrInvalidInput = errors.New("timelock: invalid input")

	// ErrInvalidPublicKey indicates the public key failed to parse or is
	// not a valid G2 element.
	ErrInvalidPublicKey = errors.New("timelock: invalid public key")

	// ErrInvalidSignature indicates the beacon signature failed to parse
	// or is not a valid G1 element.
	ErrInvalidSignature = errors.New("timelock: invalid signature")

	// ErrEncryptionFailed indicates the encryption step itself failed.
	ErrEncryptionFailed = errors.New("timelock: encryption failed")

	// ErrDecryptionFailed indicates the signature does not authenticate
	// the ciphertext, or the ciphertext was tampered with.
	ErrDecryptionFailed = errors.New("timelock: decryption failed")

	// ErrMalformedCiphertext indicates ciphertext bytes that do not parse
	// as the timelock wire format.
	ErrMalformedCiphertext = errors.New("timelock: malformed ciphertext")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("timelock.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf builds an *Error whose cause wraps the given sentinel, so callers
// can branch with errors.Is while still seeing the detail.
func errorf(op string, sentinel error, format string, args ...any) error {
	args = append([]any{sentinel}, args...)
	return &Error{Op: op, Err: fmt.Errorf("%w: "+format, args...)}
}
