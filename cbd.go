package kyber

// unpackBitsMSB unpacks a byte slice into a bit slice, MSB-first within
// each byte: bit i of byte b is (b >> (7-i)) & 1.
func unpackBitsMSB(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 0; i < 8; i++ {
			bits = append(bits, (b>>(7-uint(i)))&1)
		}
	}
	return bits
}

// cbd samples a polynomial whose coefficients are concentrated near 0 (with
// magnitude up to eta) from a centered binomial distribution. input must be
// exactly 64*eta bytes.
func cbd(input []byte, eta int, q int32) (*poly, error) {
	if len(input) != 64*eta {
		return nil, invalidArgf("cbd: input must be %d bytes for eta=%d, got %d", 64*eta, eta, len(input))
	}

	bits := unpackBitsMSB(input)
	p := newPoly(q)
	for i := 0; i < kyberN; i++ {
		var a, b int32
		for j := 0; j < eta; j++ {
			a += int32(bits[2*i*eta+j])
		}
		for j := 0; j < eta; j++ {
			b += int32(bits[2*i*eta+eta+j])
		}
		p.coeffs[i] = normalize(int64(a-b), q)
	}
	return p, nil
}

// randomPolyVector produces a PolynomialVector of length k, sampling
// polynomial i from CBD(PRF(seed, N+i, 64*eta), eta). N is the starting
// nonce; every caller in this package starts it at 0, and a caller that
// samples several vectors passes each of them the same seed, rather than
// threading one running counter across calls.
func randomPolyVector(k int, nStart int, q int32, eta int, seed []byte) (*polyVec, error) {
	v := newPolyVec(k, q)
	for i := 0; i < k; i++ {
		buf := PRF(seed, byte(nStart+i), 64*eta)
		p, err := cbd(buf, eta, q)
		if err != nil {
			return nil, err
		}
		v.vec[i] = p
	}
	return v, nil
}

// randomPoly samples a single polynomial from CBD(PRF(seed, nonce, 64*eta), eta).
func randomPoly(q int32, eta int, seed []byte, nonce int) (*poly, error) {
	buf := PRF(seed, byte(nonce), 64*eta)
	return cbd(buf, eta, q)
}

// expand deterministically derives the k x k matrix A from a 32-byte seed
// rho. Entry (i,j) is built from XOF(rho||byte(i)||byte(j), 2n), read as n
// little-endian uint16 pairs reduced mod q.
//
// This toy uses modular reduction rather than FIPS 203's rejection
// sampling: q=3329 does not divide 2^16, so the distribution is very
// slightly non-uniform. Unlike rejection sampling, it reads a fixed 2n
// bytes per entry, so its running time does not depend on the seed.
// Implementations targeting standards-exact interoperability must use
// rejection sampling instead.
func expand(rho []byte, k int, q int32) *matrix {
	m := &matrix{rows: make([][]*poly, k), k: k, q: q}
	for i := 0; i < k; i++ {
		m.rows[i] = make([]*poly, k)
		for j := 0; j < k; j++ {
			seed := make([]byte, 0, len(rho)+2)
			seed = append(seed, rho...)
			seed = append(seed, byte(i), byte(j))

			out := XOF(seed, 2*kyberN)
			p := newPoly(q)
			for l := 0; l < kyberN; l++ {
				v := uint16(out[2*l]) | uint16(out[2*l+1])<<8
				p.coeffs[l] = int32(v) % q
			}
			m.rows[i][j] = p
		}
	}
	return m
}
