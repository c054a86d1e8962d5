//go:build !cgo || windows

package ffi

import "unsafe"

// Without cgo there is no C thread-local storage, so the error slot
// degrades to a process-global string. These builds exist only so the
// module compiles everywhere; no foreign caller can reach them.
var stubLastError string

func recordError(msg string) { stubLastError = msg }

func clearError() { stubLastError = "" }

// LastErrorPtr always reports no message in non-cgo builds.
func LastErrorPtr() unsafe.Pointer { return nil }

// LastError returns the process-global error message, or "" if none.
func LastError() string { return stubLastError }
