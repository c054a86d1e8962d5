package timelock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	got, err := decodeHex("00ff7Aa5")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x7a, 0xa5}, got)

	got, err = decodeHex("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeHexRejectsOddLength(t *testing.T) {
	_, err := decodeHex("abc")
	require.Error(t, err)
}

func TestDecodeHexRejectsBadDigits(t *testing.T) {
	for _, s := range []string{"0g", "g0", "0x12", " 12", "12 "} {
		_, err := decodeHex(s)
		assert.Error(t, err, "input %q", s)
	}
}
