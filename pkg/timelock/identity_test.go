package timelock

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundIdentityKnownValues(t *testing.T) {
	// SHA-256 over the big-endian round number, matching drand quicknet.
	cases := map[uint64]string{
		0:    "af5570f5a1810b7af78caf4bc70a660f0df51e42baf91d4de5b2328de0e83dfc",
		1:    "cd2662154e6d76b2b2b92e70c0cac3ccf534f9b74eb5b89819ec509083d00a50",
		1000: "f652498d092acd949bad74e40683bf3824fb817980504a0c7e6722cfc5a9c0a3",
	}
	for round, want := range cases {
		id := RoundIdentity(round)
		assert.Equal(t, want, fmt.Sprintf("%x", id), "round %d", round)
	}
}

func TestRoundIdentityEdgeRounds(t *testing.T) {
	lo := RoundIdentity(0)
	hi := RoundIdentity(^uint64(0))
	require.NotEqual(t, lo, hi)
}

func TestRoundIdentityDeterministicAcrossGoroutines(t *testing.T) {
	const round = 12345
	want := RoundIdentity(round)

	var wg sync.WaitGroup
	results := make([][IdentitySize]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = RoundIdentity(round)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.Equal(t, want, results[i])
	}
}
