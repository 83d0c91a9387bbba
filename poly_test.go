package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func onePoly(q int32) *poly {
	c := make([]int32, kyberN)
	c[0] = 1
	return newPolyFromCoeffs(c, q)
}

func TestRingArithmetic(t *testing.T) {
	require := require.New(t)
	q := int32(kyberQ)

	a := onePoly(q)
	b := onePoly(q)

	// a + b is commutative.
	sum1, err := a.add(b)
	require.NoError(err)
	sum2, err := b.add(a)
	require.NoError(err)
	require.Equal(sum1.coeffs, sum2.coeffs)

	// a * 1 == a.
	prod, err := a.mulRq(b)
	require.NoError(err)
	require.Equal(a.coeffs, prod.coeffs)

	// a * 0 == 0.
	zero := newPoly(q)
	prodZero, err := a.mulRq(zero)
	require.NoError(err)
	require.Equal(zero.coeffs, prodZero.coeffs)

	// Associativity of addition: (a+b)+a == a+(b+a).
	c, err := a.add(b)
	require.NoError(err)
	lhs, err := c.add(a)
	require.NoError(err)
	d, err := b.add(a)
	require.NoError(err)
	rhs, err := a.add(d)
	require.NoError(err)
	require.Equal(lhs.coeffs, rhs.coeffs)
}

func TestMulRqWrapsNegacyclically(t *testing.T) {
	require := require.New(t)
	q := int32(kyberQ)

	// X^(n-1) * X == -1 (i.e. q-1, every other coefficient zero).
	xn1 := make([]int32, kyberN)
	xn1[kyberN-1] = 1
	x := make([]int32, kyberN)
	x[1] = 1

	p1 := newPolyFromCoeffs(xn1, q)
	p2 := newPolyFromCoeffs(x, q)

	prod, err := p1.mulRq(p2)
	require.NoError(err)
	for i, c := range prod.coeffs {
		if i == 0 {
			require.EqualValues(q-1, c)
		} else {
			require.EqualValues(0, c)
		}
	}
}

func TestMismatchedModuliError(t *testing.T) {
	require := require.New(t)
	a := newPoly(3329)
	b := newPoly(17)

	_, err := a.add(b)
	require.Error(err)
	_, err = a.sub(b)
	require.Error(err)
	_, err = a.mulRq(b)
	require.Error(err)
}

func TestPolyVecMismatchedLengths(t *testing.T) {
	require := require.New(t)
	v1 := newPolyVec(2, kyberQ)
	v2 := newPolyVec(3, kyberQ)

	_, err := v1.add(v2)
	require.Error(err)
	_, err = v1.dot(v2)
	require.Error(err)
}
