package kyber

// polyVec is an ordered sequence of exactly k polynomials sharing a modulus
// and degree n.
type polyVec struct {
	vec []*poly
	q   int32
}

func newPolyVec(k int, q int32) *polyVec {
	v := &polyVec{vec: make([]*poly, k), q: q}
	for i := range v.vec {
		v.vec[i] = newPoly(q)
	}
	return v
}

func (v *polyVec) add(other *polyVec) (*polyVec, error) {
	if len(v.vec) != len(other.vec) {
		return nil, invalidArgf("mismatched vector lengths %d != %d", len(v.vec), len(other.vec))
	}
	out := newPolyVec(len(v.vec), v.q)
	for i := range v.vec {
		sum, err := v.vec[i].add(other.vec[i])
		if err != nil {
			return nil, err
		}
		out.vec[i] = sum
	}
	return out, nil
}

// dot computes the inner product (sum of mulRq) of v and other, a single
// polynomial.
func (v *polyVec) dot(other *polyVec) (*poly, error) {
	if len(v.vec) != len(other.vec) {
		return nil, invalidArgf("mismatched vector lengths %d != %d", len(v.vec), len(other.vec))
	}
	acc := newPoly(v.q)
	for i := range v.vec {
		term, err := v.vec[i].mulRq(other.vec[i])
		if err != nil {
			return nil, err
		}
		acc, err = acc.add(term)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// matrix is a k x k array of polynomials, deterministically derived from a
// seed by expand (see cbd.go). It is never persisted: callers recompute it
// on each use from the 32-byte seed carried in a public key.
type matrix struct {
	rows [][]*poly
	k    int
	q    int32
}

// mulVec computes m*v (matrix-vector product in the ring): row i of the
// result is the dot product of row i of m with v.
func (m *matrix) mulVec(v *polyVec) (*polyVec, error) {
	out := newPolyVec(m.k, m.q)
	for i := 0; i < m.k; i++ {
		row := &polyVec{vec: m.rows[i], q: m.q}
		dot, err := row.dot(v)
		if err != nil {
			return nil, err
		}
		out.vec[i] = dot
	}
	return out, nil
}

// mulVecTransposed computes m^T*v without materializing the transpose:
// component i of the result is sum_j m[j][i] * v[j].
func (m *matrix) mulVecTransposed(v *polyVec) (*polyVec, error) {
	out := newPolyVec(m.k, m.q)
	for i := 0; i < m.k; i++ {
		col := make([]*poly, m.k)
		for j := 0; j < m.k; j++ {
			col[j] = m.rows[j][i]
		}
		colVec := &polyVec{vec: col, q: m.q}
		dot, err := colVec.dot(v)
		if err != nil {
			return nil, err
		}
		out.vec[i] = dot
	}
	return out, nil
}
