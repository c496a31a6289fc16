package poly

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrInterpolation is returned when a barycentric denominator vanishes. It
// cannot happen for distinct integer nodes in a field of large
// characteristic, and signals a degree/field mismatch to the caller.
var ErrInterpolation = errors.New("zero denominator during barycentric interpolation")

// UnivariateEvals represents a degree-d univariate polynomial by its
// evaluations at the integer nodes 0, 1, ..., d. It is the round message
// format of the sumcheck protocol.
type UnivariateEvals struct {
	evals []fr.Element
}

// NewUnivariateEvals wraps the evaluations at 0..len(evals)-1
func NewUnivariateEvals(evals []fr.Element) UnivariateEvals {
	if len(evals) == 0 {
		panic("got an empty list of evaluations")
	}
	return UnivariateEvals{evals: evals}
}

// Degree returns the degree bound of the represented polynomial
func (u UnivariateEvals) Degree() int {
	return len(u.evals) - 1
}

// RawEvals returns the evaluations at the integer nodes, in node order
func (u UnivariateEvals) RawEvals() []fr.Element {
	return u.evals
}

// EvaluateAt computes the polynomial at an arbitrary point by barycentric
// Lagrange interpolation over the integer nodes
func (u UnivariateEvals) EvaluateAt(x fr.Element) (fr.Element, error) {
	// Constant polynomial
	if len(u.evals) == 1 {
		return u.evals[0], nil
	}

	// Exact nodes short-circuit, avoiding a degenerate division
	if x.IsZero() {
		return u.evals[0], nil
	}
	if x.IsOne() {
		return u.evals[1], nil
	}

	var res, num, den, node, tmp fr.Element
	for j := range u.evals {
		num.SetOne()
		den.SetOne()
		var nodeJ fr.Element
		nodeJ.SetUint64(uint64(j))

		for k := range u.evals {
			if k == j {
				continue
			}
			node.SetUint64(uint64(k))
			tmp.Sub(&x, &node)
			num.Mul(&num, &tmp)
			tmp.Sub(&nodeJ, &node)
			den.Mul(&den, &tmp)
		}

		if den.IsZero() {
			return fr.Element{}, ErrInterpolation
		}

		den.Inverse(&den)
		tmp.Mul(&u.evals[j], &num)
		tmp.Mul(&tmp, &den)
		res.Add(&res, &tmp)
	}

	return res, nil
}
