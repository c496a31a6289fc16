package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/poly"
)

// Proof is the object produced by the prover
type Proof struct {
	// ClaimedSum is the prover-claimed sum of the product polynomial over
	// the boolean hypercube
	ClaimedSum fr.Element
	// RoundMessages contains one univariate polynomial per round, in round
	// order, each given by its evaluations at the integer nodes
	RoundMessages []poly.UnivariateEvals
}
