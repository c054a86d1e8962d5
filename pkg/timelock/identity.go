package timelock

import (
	"crypto/sha256"
	"encoding/binary"
)

// IdentitySize is the size of a round identity in bytes.
const IdentitySize = 32

// RoundIdentity derives the identity drand quicknet signs for a round:
// SHA-256 over the 8-byte big-endian round number. It is total over all
// round numbers and deterministic across platforms; round 0 is as valid as
// any other round at this layer.
func RoundIdentity(round uint64) [IdentitySize]byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], round)
	return sha256.Sum256(buf[:])
}
