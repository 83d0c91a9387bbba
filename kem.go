package kyber

import (
	"crypto/subtle"

	"github.com/pkg/errors"
)

// KEMKeyGen generates an IND-CCA2 Kyber key pair under params, drawing
// randomness from src. It returns the serialized encapsulation key
// (identical bytes to a PKE public key) and the serialized decapsulation
// key (sk_pke || pk_pke || H(pk_pke) || z).
func KEMKeyGen(params *ParameterSet, src Source) (ek []byte, dk []byte, err error) {
	if params == nil {
		return nil, nil, invalidArgf("nil parameter set")
	}
	if src == nil {
		src = DefaultSource
	}

	pk, sk, err := PKEKeyGen(params, src)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kyber: kem keygen")
	}

	z, err := src.RandomBytes(SymSize)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kyber: kem keygen: draw z")
	}

	hpk := H(pk)

	dk = make([]byte, 0, params.DecapsulationKeySize())
	dk = append(dk, sk...)
	dk = append(dk, pk...)
	dk = append(dk, hpk[:]...)
	dk = append(dk, z...)

	return pk, dk, nil
}

// KEMEncapsulate generates a ciphertext and a 32-byte shared secret under
// the encapsulation key ek, drawing randomness from src.
func KEMEncapsulate(params *ParameterSet, ek []byte, src Source) (ct []byte, sharedSecret []byte, err error) {
	if params == nil {
		return nil, nil, invalidArgf("nil parameter set")
	}
	if len(ek) != params.PublicKeySize() {
		return nil, nil, invalidArgf("encapsulation key must be %d bytes, got %d", params.PublicKeySize(), len(ek))
	}
	if src == nil {
		src = DefaultSource
	}

	preImage, err := src.RandomBytes(SymSize)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kyber: kem encapsulate")
	}
	mArr := H(preImage)
	m := mArr[:]

	hpkArr := H(ek)
	hpk := hpkArr[:]

	gInput := make([]byte, 0, 2*SymSize)
	gInput = append(gInput, m...)
	gInput = append(gInput, hpk...)
	gOut := G(gInput)
	kHat, r := gOut[:SymSize], gOut[SymSize:]

	mBits := bytesToBitList(m, kyberN)

	ct, err = PKEEncrypt(params, ek, mBits, r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kyber: kem encapsulate")
	}

	hct := H(ct)
	kdfInput := make([]byte, 0, 2*SymSize)
	kdfInput = append(kdfInput, kHat...)
	kdfInput = append(kdfInput, hct[:]...)
	sharedSecret = KDF(kdfInput, SymSize)

	return ct, sharedSecret, nil
}

// KEMDecapsulate recovers the 32-byte shared secret that KEMEncapsulate
// produced for ct under the encapsulation key matching dk.
//
// Decapsulation never errors on a tampered or invalid ciphertext: per the
// Fujisaki-Okamoto implicit-rejection transform, it instead returns a
// value derived from the decapsulation key's secret rejection value z,
// which is indistinguishable from the honest shared secret to a caller
// without z. It DOES return an InvalidArgument error for malformed byte
// lengths, since those can never be produced by an honest encapsulation
// and are not part of the security model's ciphertext-equality branch.
func KEMDecapsulate(params *ParameterSet, dk []byte, ct []byte) (sharedSecret []byte, err error) {
	if params == nil {
		return nil, invalidArgf("nil parameter set")
	}
	if len(dk) != params.DecapsulationKeySize() {
		return nil, invalidArgf("decapsulation key must be %d bytes, got %d", params.DecapsulationKeySize(), len(dk))
	}
	if len(ct) != params.CipherTextSize() {
		return nil, invalidArgf("ciphertext must be %d bytes, got %d", params.CipherTextSize(), len(ct))
	}

	skLen := params.PrivateKeySize()
	pkLen := params.PublicKeySize()

	sk := dk[:skLen]
	pk := dk[skLen : skLen+pkLen]
	h := dk[skLen+pkLen : skLen+pkLen+SymSize]
	z := dk[skLen+pkLen+SymSize:]

	mPrime, err := PKEDecrypt(params, sk, ct)
	if err != nil {
		return nil, internalf("kem decapsulate: pke decrypt: %v", err)
	}

	gInput := make([]byte, 0, SymSize+len(h))
	gInput = append(gInput, bitListToBytes(mPrime)...)
	gInput = append(gInput, h...)
	gOut := G(gInput)
	kHatPrime, rPrime := gOut[:SymSize], gOut[SymSize:]

	ctPrime, err := PKEEncrypt(params, pk, mPrime, rPrime)
	if err != nil {
		return nil, internalf("kem decapsulate: re-encrypt: %v", err)
	}

	hct := H(ct)

	ok := subtle.ConstantTimeCompare(ct, ctPrime)
	kdfInput := make([]byte, SymSize)
	subtle.ConstantTimeCopy(ok, kdfInput, kHatPrime)
	subtle.ConstantTimeCopy(1-ok, kdfInput, z)

	kdfInput = append(kdfInput, hct[:]...)
	return KDF(kdfInput, SymSize), nil
}
