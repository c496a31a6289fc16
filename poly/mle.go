package poly

import (
	"errors"

	"github.com/consensys/sumcheck/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrIndexOutOfRange is returned by Get for indices at or beyond 2^numVars
var ErrIndexOutOfRange = errors.New("index is out of the hypercube range")

// MultilinearExtension represents a multilinear polynomial by the table of
// its evaluations over the boolean hypercube, most significant variable
// first. The table may have any positive length L: positions between L and
// 2^ceil(log2(L)) are implicitly zero.
type MultilinearExtension struct {
	table   MultiLin
	numVars int
}

// NewMultilinearExtension wraps a table of evaluations. The table is not
// copied: the caller should not mutate it afterwards. A length-1 table is a
// valid zero-variable (constant) polynomial.
func NewMultilinearExtension(table []fr.Element) MultilinearExtension {
	if len(table) == 0 {
		panic("got an empty evaluation table")
	}
	return MultilinearExtension{
		table:   table,
		numVars: common.Log2Ceil(len(table)),
	}
}

// NumVars returns the number of variables of the polynomial
func (m MultilinearExtension) NumVars() int {
	return m.numVars
}

// Table returns a read-only view of the evaluation table
func (m MultilinearExtension) Table() MultiLin {
	return m.table
}

// Get returns the evaluation at the idx-th point of the hypercube: the
// stored value below len(table), zero between len(table) and 2^numVars, and
// ErrIndexOutOfRange beyond.
func (m MultilinearExtension) Get(idx int) (fr.Element, error) {
	if idx < 0 || idx >= 1<<m.numVars {
		return fr.Element{}, ErrIndexOutOfRange
	}
	if idx >= len(m.table) {
		return fr.Element{}, nil
	}
	return m.table[idx], nil
}

// CloneTablePadded returns a mutable copy of the table, zero-padded up to
// 2^numVars so it can be folded
func (m MultilinearExtension) CloneTablePadded() MultiLin {
	res := make(MultiLin, 1<<m.numVars)
	copy(res, m.table)
	return res
}

// Evaluate computes the polynomial at an arbitrary point given by the
// coordinates of its numVars variables
func (m MultilinearExtension) Evaluate(coordinates []fr.Element) fr.Element {
	bkCopy := m.CloneTablePadded()
	for _, r := range coordinates {
		bkCopy.Fold(r)
	}
	return bkCopy[0]
}
