package timelock

import "runtime"

// ZeroizeBytes overwrites buf with zeros and uses runtime.KeepAlive to stop
// the compiler from eliminating the dead stores (golang/go#33325). The
// garbage collector may still have made copies, so this is best effort,
// consistent with the rest of the Go ecosystem.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
