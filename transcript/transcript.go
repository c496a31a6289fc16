// Package transcript provides the Fiat-Shamir sponge binding the prover and
// verifier challenges of an interactive protocol.
//
// The contract is purely deterministic: two independently constructed
// sponges fed the same ordered sequence of absorbs return the same sequence
// of squeezed elements. This is what allows a verifier to re-derive the
// prover's challenges from the proof alone, without interaction.
package transcript

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Sponge is a stateful cryptographic absorber/squeezer. Implementations are
// exclusively owned by a single prove or verify call and are never shared
// across the prover/verifier boundary.
type Sponge interface {
	// AbsorbInitializationLabel binds a domain-separation string by decoding
	// its bytes into field elements and absorbing them in order
	AbsorbInitializationLabel(label string)

	// Absorb feeds one element into the sponge state
	Absorb(x fr.Element)

	// AbsorbElements feeds the elements into the sponge state, in order
	AbsorbElements(xs []fr.Element)

	// Squeeze extracts a pseudo-random element. The state is mutated so that
	// consecutive squeezes return different values
	Squeeze() fr.Element

	// SqueezeElements extracts n pseudo-random elements
	SqueezeElements(n int) []fr.Element
}
