//go:build !cgo || windows

package main

// The C export surface in main.go requires cgo and a non-Windows target.
// This stub keeps the package buildable (e.g. with CGO_ENABLED=0); the
// resulting binary does nothing, matching the empty main in main.go.
func main() {}
