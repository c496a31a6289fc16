package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/poly"
	"github.com/consensys/sumcheck/transcript"
)

// OracleEvaluation computes the product polynomial at the given point, each
// factor evaluated at the leading coordinates it depends on. Inside a larger
// proof system the verifier obtains this value from the surrounding
// protocol; here it is computed directly from the factors.
func OracleEvaluation(factors []poly.MultilinearExtension, point []fr.Element) fr.Element {
	var res fr.Element
	res.SetOne()
	for _, f := range factors {
		v := f.Evaluate(point[:f.NumVars()])
		res.Mul(&res, &v)
	}
	return res
}

// ProofChallenges replays the proof's absorbs on a sponge seeded identically
// to the prover's and returns the challenge squeezed at each round
func ProofChallenges(s transcript.Sponge, proof Proof) []fr.Element {
	s.Absorb(proof.ClaimedSum)
	challenges := make([]fr.Element, len(proof.RoundMessages))
	for i, msg := range proof.RoundMessages {
		s.AbsorbElements(msg.RawEvals())
		challenges[i] = s.Squeeze()
	}
	return challenges
}
