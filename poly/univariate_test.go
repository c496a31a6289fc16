package poly

import (
	"testing"

	"github.com/consensys/sumcheck/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
)

// Evaluations of p(x) = 3x^2 + 2x + 1 at the nodes 0, 1, 2, 3
func quadraticEvals() UnivariateEvals {
	evals := make([]fr.Element, 4)
	for x := range evals {
		evals[x].SetUint64(uint64(3*x*x + 2*x + 1))
	}
	return NewUnivariateEvals(evals)
}

func TestExactNodeReproduction(t *testing.T) {
	u := quadraticEvals()

	var zero, one fr.Element
	one.SetOne()

	atZero, err := u.EvaluateAt(zero)
	assert.NoError(t, err)
	assert.Equal(t, u.RawEvals()[0], atZero)

	atOne, err := u.EvaluateAt(one)
	assert.NoError(t, err)
	assert.Equal(t, u.RawEvals()[1], atOne)
}

func TestConstantPolynomial(t *testing.T) {
	u := NewUnivariateEvals(common.RandomFrArray(1))

	var x fr.Element
	x.SetUint64(12345)

	// Length 1: the sole value, whatever the point
	for _, point := range []fr.Element{{}, x} {
		v, err := u.EvaluateAt(point)
		assert.NoError(t, err)
		assert.Equal(t, u.RawEvals()[0], v)
	}

	var one fr.Element
	one.SetOne()
	v, err := u.EvaluateAt(one)
	assert.NoError(t, err)
	assert.Equal(t, u.RawEvals()[0], v)
}

func TestInterpolationOffNodes(t *testing.T) {
	u := quadraticEvals()

	// p(10) = 321
	var x, expected fr.Element
	x.SetUint64(10)
	expected.SetUint64(321)

	v, err := u.EvaluateAt(x)
	assert.NoError(t, err)
	assert.Equal(t, expected, v)
}

func TestDegreeOneLine(t *testing.T) {
	// p(x) = 4x + 5 from its values at 0 and 1
	var p0, p1 fr.Element
	p0.SetUint64(5)
	p1.SetUint64(9)
	u := NewUnivariateEvals([]fr.Element{p0, p1})

	assert.Equal(t, 1, u.Degree())

	var x, expected fr.Element
	x.SetUint64(100)
	expected.SetUint64(405)

	v, err := u.EvaluateAt(x)
	assert.NoError(t, err)
	assert.Equal(t, expected, v)
}

func TestEmptyEvalsPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewUnivariateEvals(nil)
	})
}
