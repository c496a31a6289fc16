package sumcheck

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/transcript"
)

// Verify replays the Fiat-Shamir transcript of the proof and runs the
// per-round consistency checks plus the final oracle comparison. The sponge
// must be seeded exactly like the prover's; oracleQuery is the caller's own
// evaluation of the product polynomial at the challenge point. Returns true
// iff the proof is accepted.
func Verify(s transcript.Sponge, proof Proof, oracleQuery fr.Element) bool {
	return CheckProof(s, proof, oracleQuery) == nil
}

// CheckProof runs the same checks as Verify and returns a descriptive error
// on the first mismatch, for diagnostic purpose
func CheckProof(s transcript.Sponge, proof Proof, oracleQuery fr.Element) error {
	s.Absorb(proof.ClaimedSum)
	expectedValue := proof.ClaimedSum

	for i, msg := range proof.RoundMessages {
		evals := msg.RawEvals()

		// The evaluations enter the transcript in the exact order the prover
		// absorbed them, the challenge derivation depends on it
		s.AbsorbElements(evals)

		if len(evals) < 2 {
			return fmt.Errorf("at round %v got %v evaluations, a round polynomial has degree at least 1", i, len(evals))
		}

		var actualValue fr.Element
		actualValue.Add(&evals[0], &evals[1])
		if actualValue != expectedValue {
			return fmt.Errorf("at round %v verifier eval at 0 + 1 = %v || expected = %v", i, actualValue.String(), expectedValue.String())
		}

		r := s.Squeeze()

		var err error
		expectedValue, err = msg.EvaluateAt(r)
		if err != nil {
			return fmt.Errorf("at round %v: %w", i, err)
		}
	}

	if expectedValue != oracleQuery {
		return fmt.Errorf("the oracle query %v does not match the final claim %v", oracleQuery.String(), expectedValue.String())
	}

	return nil
}
