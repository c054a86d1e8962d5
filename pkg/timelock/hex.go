package timelock

import "fmt"

// decodeHex is a deliberately small hex parser kept outside the
// cryptographic path: even-length check, per-nibble validation, nothing
// else. Its failures always surface through ErrInvalidPublicKey or
// ErrInvalidSignature at the call sites, never as a silent misparse.
func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string (%d characters)", len(s))
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := hexNibble(s[i])
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q at position %d", s[i], i)
		}
		lo, ok := hexNibble(s[i+1])
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q at position %d", s[i+1], i+1)
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
