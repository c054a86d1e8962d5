//go:build cgo && !windows

package ffi

/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#include <stdlib.h>
#include <string.h>
#include "timelock.h"
*/
import "C"

import "unsafe"

// newHandle copies ciphertext into C-owned memory and wraps it in a
// timelock_ciphertext_t, also C-allocated. Keeping both allocations on the
// C heap means the handle can outlive any Go object and is released by the
// same allocator that created it, whichever runtime ends up calling free.
func newHandle(ciphertext []byte) (unsafe.Pointer, Result) {
	h := (*C.timelock_ciphertext_t)(C.malloc(C.size_t(unsafe.Sizeof(C.timelock_ciphertext_t{}))))
	if h == nil {
		return nil, MemoryError
	}

	var data unsafe.Pointer
	if len(ciphertext) > 0 {
		data = C.malloc(C.size_t(len(ciphertext)))
		if data == nil {
			C.free(unsafe.Pointer(h))
			return nil, MemoryError
		}
		C.memcpy(data, unsafe.Pointer(&ciphertext[0]), C.size_t(len(ciphertext)))
	}

	h.data = (*C.uint8_t)(data)
	h.len = C.size_t(len(ciphertext))
	return unsafe.Pointer(h), Success
}

// handleView returns the handle's bytes without copying. The second return
// is false when the handle carries a null data pointer.
func handleView(handle unsafe.Pointer) ([]byte, bool) {
	h := (*C.timelock_ciphertext_t)(handle)
	if h.data == nil {
		return nil, false
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(h.data)), int(h.len)), true
}

// FreeCiphertext releases a handle created by Encrypt: first the byte
// buffer, then the handle struct. A nil handle is a no-op. Freeing a handle
// twice, or one not produced by Encrypt, is undefined behavior by contract;
// no bookkeeping exists to detect it.
func FreeCiphertext(handle unsafe.Pointer) {
	if handle == nil {
		return
	}
	h := (*C.timelock_ciphertext_t)(handle)
	if h.data != nil {
		C.free(unsafe.Pointer(h.data))
	}
	C.free(handle)
}
