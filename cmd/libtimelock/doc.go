// Command libtimelock builds the C shared library for timelock
// encryption.
//
// Build it with:
//
//	go build -buildmode=c-shared -o libtimelock.so ./cmd/libtimelock
//
// and compile C programs against include/timelock.h, which is the
// hand-maintained public header matching the exported symbols. The
// go-generated libtimelock.h produced alongside the .so can be ignored.
//
// Requires cgo and a non-Windows target.
package main
