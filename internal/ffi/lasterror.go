//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "lasterror.h"
*/
import "C"

import "unsafe"

// recordError stores msg in the calling thread's error slot, replacing any
// prior value.
func recordError(msg string) {
	cmsg := C.CString(msg)
	C.timelock_tls_error_store(cmsg)
	C.free(unsafe.Pointer(cmsg))
}

// clearError empties the calling thread's error slot. Every successful
// entry point ends with this so that a stale message from an earlier
// failure cannot be misattributed.
func clearError() {
	C.timelock_tls_error_clear()
}

// LastErrorPtr returns the calling thread's error message as a C string
// pointer, or nil if the last call on this thread succeeded. The pointer
// stays valid until the next failing call on the same thread.
func LastErrorPtr() unsafe.Pointer {
	return unsafe.Pointer(C.timelock_tls_error_peek())
}

// LastError returns the calling thread's error message, or "" if none.
func LastError() string {
	p := C.timelock_tls_error_peek()
	if p == nil {
		return ""
	}
	return C.GoString(p)
}
