package timelock

import (
	"crypto/rand"
	"fmt"
	"testing"

	bls "github.com/cloudflare/circl/ecc/bls12381"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideal-lab5/timelock/internal/ibe"
)

// testBeacon simulates a drand network: it holds a master scalar and signs
// round identities the way the beacon would.
type testBeacon struct {
	msk *bls.Scalar
}

func newTestBeacon(t *testing.T) *testBeacon {
	t.Helper()
	msk := new(bls.Scalar)
	require.NoError(t, msk.Random(rand.Reader))
	return &testBeacon{msk: msk}
}

// PublicKeyHex returns the beacon public key as drand chain info would
// publish it.
func (b *testBeacon) PublicKeyHex() string {
	pub := new(bls.G2)
	pub.ScalarMult(b.msk, bls.G2Generator())
	return fmt.Sprintf("%x", pub.BytesCompressed())
}

// SignatureHex returns the beacon pulse signature for a round.
func (b *testBeacon) SignatureHex(round uint64) string {
	id := RoundIdentity(round)
	sig := new(bls.G1)
	sig.ScalarMult(b.msk, ibe.HashIdentity(id[:]))
	return fmt.Sprintf("%x", sig.BytesCompressed())
}

func newSecretKey(t *testing.T) []byte {
	t.Helper()
	sk := make([]byte, SecretKeySize)
	_, err := rand.Read(sk)
	require.NoError(t, err)
	return sk
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	beacon := newTestBeacon(t)
	pk, err := ParsePublicKey(beacon.PublicKeyHex())
	require.NoError(t, err)

	const round = 1
	id := RoundIdentity(round)

	for _, size := range []int{0, 1, 4, 127, 128, 10000} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			message := make([]byte, size)
			_, err := rand.Read(message)
			require.NoError(t, err)

			ct, err := Encrypt(pk, id[:], newSecretKey(t), message)
			require.NoError(t, err)

			sig, err := ParseSignature(beacon.SignatureHex(round))
			require.NoError(t, err)

			got, err := Decrypt(ct, sig)
			require.NoError(t, err)
			require.Equal(t, message, got)
		})
	}
}

func TestEmptyMessageCiphertextIsOverheadOnly(t *testing.T) {
	beacon := newTestBeacon(t)
	pk, err := ParsePublicKey(beacon.PublicKeyHex())
	require.NoError(t, err)

	id := RoundIdentity(1)
	ct, err := Encrypt(pk, id[:], newSecretKey(t), nil)
	require.NoError(t, err)
	require.Equal(t, wireOverhead, len(ct))

	sig, err := ParseSignature(beacon.SignatureHex(1))
	require.NoError(t, err)
	got, err := Decrypt(ct, sig)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEstimateCoversRealCiphertexts(t *testing.T) {
	beacon := newTestBeacon(t)
	pk, err := ParsePublicKey(beacon.PublicKeyHex())
	require.NoError(t, err)
	id := RoundIdentity(42)

	for _, size := range []int{0, 1, 4, 127, 128, 10000} {
		message := make([]byte, size)
		ct, err := Encrypt(pk, id[:], newSecretKey(t), message)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, EstimateCiphertextSize(size), len(ct),
			"estimate must upper-bound the real ciphertext for %d-byte messages", size)
	}
}

func TestDecryptWrongSignature(t *testing.T) {
	beacon := newTestBeacon(t)
	pk, err := ParsePublicKey(beacon.PublicKeyHex())
	require.NoError(t, err)

	id := RoundIdentity(7)
	ct, err := Encrypt(pk, id[:], newSecretKey(t), []byte("for round seven"))
	require.NoError(t, err)

	// Well-formed signature for a different round.
	sig, err := ParseSignature(beacon.SignatureHex(8))
	require.NoError(t, err)

	got, err := Decrypt(ct, sig)
	require.ErrorIs(t, err, ErrDecryptionFailed)
	require.Nil(t, got)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	beacon := newTestBeacon(t)
	pk, err := ParsePublicKey(beacon.PublicKeyHex())
	require.NoError(t, err)

	id := RoundIdentity(7)
	ct, err := Encrypt(pk, id[:], newSecretKey(t), []byte("payload"))
	require.NoError(t, err)

	sig, err := ParseSignature(beacon.SignatureHex(7))
	require.NoError(t, err)

	// Flip a bit in the sealed body.
	ct[len(ct)-1] ^= 0x01
	_, err = Decrypt(ct, sig)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptMalformedCiphertext(t *testing.T) {
	beacon := newTestBeacon(t)
	sig, err := ParseSignature(beacon.SignatureHex(1))
	require.NoError(t, err)

	_, err = Decrypt(make([]byte, wireOverhead-1), sig)
	require.ErrorIs(t, err, ErrMalformedCiphertext)

	// Right length, garbage commitment point.
	junk := make([]byte, wireOverhead)
	for i := range junk {
		junk[i] = 0xff
	}
	_, err = Decrypt(junk, sig)
	require.ErrorIs(t, err, ErrMalformedCiphertext)
}

func TestEncryptInputValidation(t *testing.T) {
	beacon := newTestBeacon(t)
	pk, err := ParsePublicKey(beacon.PublicKeyHex())
	require.NoError(t, err)
	id := RoundIdentity(1)
	sk := newSecretKey(t)

	_, err = Encrypt(nil, id[:], sk, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Encrypt(pk, id[:31], sk, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Encrypt(pk, id[:], sk[:16], nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Decrypt(make([]byte, wireOverhead), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestParsePublicKeyRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		hex  string
	}{
		{"odd length", "abc"},
		{"bad digit", "zz"},
		{"wrong size", "deadbeef"},
		{"not on curve", fmt.Sprintf("%0192x", 0xff)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePublicKey(tc.hex)
			require.ErrorIs(t, err, ErrInvalidPublicKey)
		})
	}
}

func TestParseSignatureRejectsBadInput(t *testing.T) {
	for _, hexSig := range []string{"abc", "zz", "deadbeef", fmt.Sprintf("%096x", 0xff)} {
		_, err := ParseSignature(hexSig)
		require.ErrorIs(t, err, ErrInvalidSignature)
	}
}
