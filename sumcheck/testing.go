package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/poly"
)

// InitializeFactorsForTests builds one deterministic pseudo-random factor
// per requested table length
func InitializeFactorsForTests(tableLens ...int) []poly.MultilinearExtension {
	factors := make([]poly.MultilinearExtension, len(tableLens))
	for i, size := range tableLens {
		table := make([]fr.Element, size)
		for k := range table {
			x := uint64(k) + 37*uint64(i+1)
			table[k].SetUint64(x*x ^ 0xc324dd4f91)
		}
		factors[i] = poly.NewMultilinearExtension(table)
	}
	return factors
}
