package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPKERoundTrip(t *testing.T) {
	require := require.New(t)

	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				pk, sk, err := PKEKeyGen(p, DefaultSource)
				require.NoError(err)

				msg := make([]byte, kyberN)
				for j := range msg {
					msg[j] = byte(j % 2)
				}
				rSeed, err := DefaultSource.RandomBytes(SymSize)
				require.NoError(err)

				ct, err := PKEEncrypt(p, pk, msg, rSeed)
				require.NoError(err)
				require.Len(ct, p.CipherTextSize())

				got, err := PKEDecrypt(p, sk, ct)
				require.NoError(err)
				require.Equal(msg, got)
			}
		})
	}
}

// TestPKEScenario3 implements end-to-end scenario 3 from the design
// document: a fixed r_seed and a pseudorandom 256-bit message round-trip
// through Kyber512 PKE.
func TestPKEScenario3(t *testing.T) {
	require := require.New(t)

	p := Kyber512
	seedSrc := NewDeterministicSource([]byte("pke-scenario-3-fixed-seed------"))
	pk, sk, err := PKEKeyGen(p, seedSrc)
	require.NoError(err)

	msgBytes, err := seedSrc.RandomBytes(SymSize)
	require.NoError(err)
	msg := bytesToBitList(msgBytes, kyberN)

	rSeed := make([]byte, SymSize)
	for i := range rSeed {
		rSeed[i] = 0x01
	}

	ct, err := PKEEncrypt(p, pk, msg, rSeed)
	require.NoError(err)

	got, err := PKEDecrypt(p, sk, ct)
	require.NoError(err)
	require.Equal(msg, got)
}

func TestPKEFailureRate(t *testing.T) {
	require := require.New(t)

	p := Kyber512
	pk, sk, err := PKEKeyGen(p, DefaultSource)
	require.NoError(err)

	const trials = 200
	var mismatches int
	for i := 0; i < trials; i++ {
		msg := make([]byte, kyberN)
		_, err := rand.Read(msg)
		require.NoError(err)
		for j := range msg {
			msg[j] &= 1
		}

		rSeed, err := DefaultSource.RandomBytes(SymSize)
		require.NoError(err)

		ct, err := PKEEncrypt(p, pk, msg, rSeed)
		require.NoError(err)

		got, err := PKEDecrypt(p, sk, ct)
		require.NoError(err)

		for j := range msg {
			if msg[j] != got[j] {
				mismatches++
			}
		}
	}

	require.Zero(mismatches, "decryption noise should not flip bits at these parameters over %d trials", trials)
}

func TestPKEWrongLengths(t *testing.T) {
	require := require.New(t)

	p := Kyber512
	pk, sk, err := PKEKeyGen(p, DefaultSource)
	require.NoError(err)

	_, err = PKEEncrypt(p, pk[:len(pk)-1], make([]byte, kyberN), make([]byte, SymSize))
	require.Error(err)

	_, err = PKEEncrypt(p, pk, make([]byte, kyberN-1), make([]byte, SymSize))
	require.Error(err)

	_, err = PKEEncrypt(p, pk, make([]byte, kyberN), make([]byte, SymSize-1))
	require.Error(err)

	ct, err := PKEEncrypt(p, pk, make([]byte, kyberN), make([]byte, SymSize))
	require.NoError(err)

	_, err = PKEDecrypt(p, sk[:len(sk)-1], ct)
	require.Error(err)

	_, err = PKEDecrypt(p, sk, ct[:len(ct)-1])
	require.Error(err)
}
