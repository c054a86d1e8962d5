// Package timelock implements timelock encryption against a drand-style
// randomness beacon: a message is encrypted to a future round number and
// becomes decryptable once the beacon publishes its signature for that
// round.
//
// The package is pure Go and safe for concurrent use; every call is a
// bounded, synchronous computation with no shared state. The C-callable
// boundary in internal/ffi and cmd/libtimelock dispatches into this package.
package timelock
