// Package sumcheck implements the sumcheck interactive proof for a product
// of multilinear extensions of possibly differing arities, made
// non-interactive by a Fiat-Shamir transcript sponge.
//
// The protocol reduces the claim
//
//	H = Σ_{b ∈ {0,1}^n} Π_k f_k(leading n_k bits of b)
//
// to n rounds, each sending the univariate polynomial obtained by summing
// the product over all but one variable. The verifier only performs n cheap
// univariate checks plus one final oracle query.
package sumcheck

import (
	"github.com/consensys/sumcheck/poly"
	"github.com/consensys/sumcheck/transcript"
)

// Prove runs the sumcheck prover on the product of the given factors. The
// sponge must be exclusively owned by this call and seeded exactly like the
// verifier's. The factors' tables are cloned: the caller's data is never
// mutated.
func Prove(s transcript.Sponge, factors []poly.MultilinearExtension) Proof {
	inst := makeInstance(factors)

	claimedSum := inst.initialClaim()
	s.Absorb(claimedSum)

	msgs := make([]poly.UnivariateEvals, inst.numVars)
	for round := 0; round < inst.numVars; round++ {
		evals := inst.roundEvals()
		s.AbsorbElements(evals)
		msgs[round] = poly.NewUnivariateEvals(evals)

		r := s.Squeeze()
		inst.fold(r)
	}

	return Proof{ClaimedSum: claimedSum, RoundMessages: msgs}
}
