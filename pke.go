package kyber

import "github.com/pkg/errors"

// PKEKeyGen generates an IND-CPA public/private key pair under params,
// drawing randomness from src. It returns the serialized public key
// (rho || encode(t, 12)) and the serialized private key (encode(s, 12)).
func PKEKeyGen(params *ParameterSet, src Source) (pk []byte, sk []byte, err error) {
	if params == nil {
		return nil, nil, invalidArgf("nil parameter set")
	}
	if src == nil {
		src = DefaultSource
	}

	d, err := src.RandomBytes(SymSize)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kyber: pke keygen")
	}

	gOut := G(d)
	rho, sigma := gOut[:SymSize], gOut[SymSize:]

	q := int32(kyberQ)
	a := expand(rho, params.k, q)

	s, err := randomPolyVector(params.k, 0, q, params.eta1, sigma)
	if err != nil {
		return nil, nil, internalf("pke keygen: sample s: %v", err)
	}
	e, err := randomPolyVector(params.k, 0, q, params.eta2, sigma)
	if err != nil {
		return nil, nil, internalf("pke keygen: sample e: %v", err)
	}

	as, err := a.mulVec(s)
	if err != nil {
		return nil, nil, internalf("pke keygen: A*s: %v", err)
	}
	t, err := as.add(e)
	if err != nil {
		return nil, nil, internalf("pke keygen: A*s+e: %v", err)
	}

	pk = make([]byte, 0, params.PublicKeySize())
	pk = append(pk, rho...)
	pk = append(pk, encodeVec(t, 12)...)

	sk = encodeVec(s, 12)

	return pk, sk, nil
}

// qHalf is ceil(q/2), the scale factor used to embed a message bit into a
// ring coefficient.
var qHalf = roundUpTies(float64(kyberQ) / 2)

// PKEEncrypt encrypts the n-bit messageBits (one byte per bit, 0 or 1)
// under the public key pk, using rSeed as the PRF seed for the encryption
// randomness: r, e1, and e2 are each drawn from rSeed starting at nonce 0,
// rather than threading one running nonce across all three (see the
// package doc for the consequence of this when eta1 == eta2).
func PKEEncrypt(params *ParameterSet, pk []byte, messageBits []byte, rSeed []byte) ([]byte, error) {
	if params == nil {
		return nil, invalidArgf("nil parameter set")
	}
	if len(pk) != params.PublicKeySize() {
		return nil, invalidArgf("public key must be %d bytes, got %d", params.PublicKeySize(), len(pk))
	}
	if len(messageBits) != kyberN {
		return nil, invalidArgf("message must be %d bits, got %d", kyberN, len(messageBits))
	}
	if len(rSeed) != SymSize {
		return nil, invalidArgf("r seed must be %d bytes, got %d", SymSize, len(rSeed))
	}

	q := int32(kyberQ)
	rho := pk[:SymSize]
	t := decodeVec(pk[SymSize:], q, 12, params.k)

	a := expand(rho, params.k, q)

	r, err := randomPolyVector(params.k, 0, q, params.eta1, rSeed)
	if err != nil {
		return nil, internalf("pke encrypt: sample r: %v", err)
	}
	e1, err := randomPolyVector(params.k, 0, q, params.eta2, rSeed)
	if err != nil {
		return nil, internalf("pke encrypt: sample e1: %v", err)
	}
	e2, err := randomPoly(q, params.eta2, rSeed, 0)
	if err != nil {
		return nil, internalf("pke encrypt: sample e2: %v", err)
	}

	atr, err := a.mulVecTransposed(r)
	if err != nil {
		return nil, internalf("pke encrypt: A^T*r: %v", err)
	}
	u, err := atr.add(e1)
	if err != nil {
		return nil, internalf("pke encrypt: A^T*r+e1: %v", err)
	}

	tr, err := t.dot(r)
	if err != nil {
		return nil, internalf("pke encrypt: t^T*r: %v", err)
	}
	v, err := tr.add(e2)
	if err != nil {
		return nil, internalf("pke encrypt: t^T*r+e2: %v", err)
	}

	mCoeffs := make([]int32, kyberN)
	for i, bit := range messageBits {
		mCoeffs[i] = int32((int64(bit) * qHalf) % int64(kyberQ))
	}
	mPoly := newPolyFromCoeffs(mCoeffs, q)
	v, err = v.add(mPoly)
	if err != nil {
		return nil, internalf("pke encrypt: v+m: %v", err)
	}

	c1 := compressVec(u, params.du)
	c2 := compressPoly(v, params.dv)

	ct := make([]byte, 0, params.CipherTextSize())
	ct = append(ct, encodeVec(c1, params.du)...)
	ct = append(ct, encodePoly(c2, params.dv)...)

	return ct, nil
}

// PKEDecrypt decrypts ct under the private key sk, returning the recovered
// n-bit message. PKE decryption is noisy but never reports failure: it
// always returns a bit sequence, which matches the original plaintext with
// overwhelming probability at the specified parameters.
func PKEDecrypt(params *ParameterSet, sk []byte, ct []byte) ([]byte, error) {
	if params == nil {
		return nil, invalidArgf("nil parameter set")
	}
	if len(sk) != params.PrivateKeySize() {
		return nil, invalidArgf("private key must be %d bytes, got %d", params.PrivateKeySize(), len(sk))
	}
	if len(ct) != params.CipherTextSize() {
		return nil, invalidArgf("ciphertext must be %d bytes, got %d", params.CipherTextSize(), len(ct))
	}

	q := int32(kyberQ)

	uBytes := params.k * kyberN * params.du / 8
	c1 := decodeVec(ct[:uBytes], int32(int64(1)<<uint(params.du)), params.du, params.k)
	c2 := decodePoly(ct[uBytes:], int32(int64(1)<<uint(params.dv)), params.dv)

	u := decompressVec(c1, q, params.du)
	v := decompressPoly(c2, q, params.dv)

	s := decodeVec(sk, q, 12, params.k)

	su, err := s.dot(u)
	if err != nil {
		return nil, internalf("pke decrypt: s^T*u: %v", err)
	}
	mPoly, err := v.sub(su)
	if err != nil {
		return nil, internalf("pke decrypt: v-s^T*u: %v", err)
	}

	msg := make([]byte, kyberN)
	for i, c := range mPoly.coeffs {
		msg[i] = byte(roundQ(int64(c), kyberQ))
	}
	return msg, nil
}
