// Package ffi implements the validated C boundary around pkg/timelock: the
// result-code taxonomy, pointer and length validation, the C-heap ciphertext
// handle, and the thread-local error channel. All cgo in the module is
// isolated here; cmd/libtimelock only converts C types and delegates.
//
// Functions take unsafe.Pointer plus explicit lengths rather than C types so
// the boundary logic stays testable from plain Go. Callers that want the
// per-thread error slot to behave like a C caller's must pin their OS thread
// around call plus read (the exported C entry points get this for free, as a
// cgo callback runs on the calling thread).
package ffi
