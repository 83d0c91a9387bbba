package kyber

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKEMScenario1RoundTrip implements end-to-end scenario 1: with the RNG
// seeded so the first 32-byte draw is all zero bytes, kem keygen,
// encapsulate, and decapsulate agree on the same shared secret, and that
// secret equals KDF(Khat || H(ct), 32) recomputed independently from the
// transcript.
func TestKEMScenario1RoundTrip(t *testing.T) {
	require := require.New(t)

	p := Kyber512
	src := NewDeterministicSource(make([]byte, SymSize)) // first draw is 0x00..00

	ek, dk, err := KEMKeyGen(p, src)
	require.NoError(err)

	ct, ssEnc, err := KEMEncapsulate(p, ek, src)
	require.NoError(err)

	ssDec, err := KEMDecapsulate(p, dk, ct)
	require.NoError(err)
	require.Equal(ssEnc, ssDec)
	require.Len(ssEnc, SymSize)

	// Replay the source's draws to recover the encapsulation pre-image, then
	// recompute KDF(Khat || H(ct), 32) from the transcript.
	replay := NewDeterministicSource(make([]byte, SymSize))
	_, _, err = KEMKeyGen(p, replay)
	require.NoError(err)
	preImage, err := replay.RandomBytes(SymSize)
	require.NoError(err)
	m := H(preImage)
	hek := H(ek)
	gOut := G(append(m[:], hek[:]...))
	hct := H(ct)
	want := KDF(append(gOut[:SymSize:SymSize], hct[:]...), SymSize)
	require.Equal(want, ssEnc)
}

// TestKEMScenario2TamperedCipherText implements end-to-end scenario 2:
// under scenario-1-style inputs, flipping bit 0 of ct causes decapsulate to
// fall back to the z-derived implicit-rejection secret, which must differ
// from the encapsulator's K.
func TestKEMScenario2TamperedCipherText(t *testing.T) {
	require := require.New(t)

	p := Kyber512
	src := NewDeterministicSource(make([]byte, SymSize))

	ek, dk, err := KEMKeyGen(p, src)
	require.NoError(err)

	ct, ssEnc, err := KEMEncapsulate(p, ek, src)
	require.NoError(err)

	tampered := append([]byte(nil), ct...)
	tampered[0] ^= 0x01 // flip bit 0

	ssTampered, err := KEMDecapsulate(p, dk, tampered)
	require.NoError(err)
	require.NotEqual(ssEnc, ssTampered)

	// The rejection secret is deterministic in (ct', dk): decapsulating the
	// identical tampered ciphertext twice yields the identical secret.
	ssTampered2, err := KEMDecapsulate(p, dk, tampered)
	require.NoError(err)
	require.True(bytes.Equal(ssTampered, ssTampered2))
}

// TestKEMImplicitRejectionIsDeterministic checks invariant 3: decapsulating
// an invalid ciphertext depends only on (ct, dk), not on anything else.
func TestKEMImplicitRejectionIsDeterministic(t *testing.T) {
	require := require.New(t)

	p := Kyber768
	_, dk, err := KEMKeyGen(p, DefaultSource)
	require.NoError(err)

	garbage := make([]byte, p.CipherTextSize())
	for i := range garbage {
		garbage[i] = byte(i)
	}

	ss1, err := KEMDecapsulate(p, dk, garbage)
	require.NoError(err)
	ss2, err := KEMDecapsulate(p, dk, garbage)
	require.NoError(err)
	require.Equal(ss1, ss2)
}
