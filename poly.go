package kyber

// poly is an element of R_q = Z_q[X]/(X^n+1): coeffs[0] + X*coeffs[1] + ...
// + X^(n-1)*coeffs[n-1], each coefficient normalized to [0, q).
type poly struct {
	coeffs [kyberN]int32
	q      int32
}

// newPoly returns the zero polynomial mod q.
func newPoly(q int32) *poly {
	return &poly{q: q}
}

// normalize reduces x into [0, q).
func normalize(x int64, q int32) int32 {
	m := x % int64(q)
	if m < 0 {
		m += int64(q)
	}
	return int32(m)
}

func newPolyFromCoeffs(c []int32, q int32) *poly {
	p := newPoly(q)
	for i := 0; i < kyberN && i < len(c); i++ {
		p.coeffs[i] = normalize(int64(c[i]), q)
	}
	return p
}

// add returns a fresh polynomial equal to p+other, elementwise mod q.
func (p *poly) add(other *poly) (*poly, error) {
	if p.q != other.q {
		return nil, invalidArgf("mismatched polynomial moduli %d != %d", p.q, other.q)
	}
	out := newPoly(p.q)
	for i := range out.coeffs {
		out.coeffs[i] = normalize(int64(p.coeffs[i])+int64(other.coeffs[i]), p.q)
	}
	return out, nil
}

// sub returns a fresh polynomial equal to p-other, elementwise mod q.
func (p *poly) sub(other *poly) (*poly, error) {
	if p.q != other.q {
		return nil, invalidArgf("mismatched polynomial moduli %d != %d", p.q, other.q)
	}
	out := newPoly(p.q)
	for i := range out.coeffs {
		out.coeffs[i] = normalize(int64(p.coeffs[i])-int64(other.coeffs[i]), p.q)
	}
	return out, nil
}

// mulRq computes the schoolbook product of p and other in R_q =
// Z_q[X]/(X^n+1): the raw product has degree up to 2n-2, and is folded back
// into degree < n by negating coefficients at or above degree n (since
// X^n == -1 in this ring).
func (p *poly) mulRq(other *poly) (*poly, error) {
	if p.q != other.q {
		return nil, invalidArgf("mismatched polynomial moduli %d != %d", p.q, other.q)
	}

	n := kyberN
	var raw [2*kyberN - 1]int64
	for i := 0; i < n; i++ {
		if p.coeffs[i] == 0 {
			continue
		}
		ai := int64(p.coeffs[i])
		for j := 0; j < n; j++ {
			raw[i+j] += ai * int64(other.coeffs[j])
		}
	}

	out := newPoly(p.q)
	var acc [kyberN]int64
	for i, v := range raw {
		if i < n {
			acc[i] += v
		} else {
			acc[i-n] -= v
		}
	}
	for i, v := range acc {
		out.coeffs[i] = normalize(v, p.q)
	}
	return out, nil
}
