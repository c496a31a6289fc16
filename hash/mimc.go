package hash

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// MimcRounds is the number of rounds for the Mimc function
const MimcRounds int = 91

// Seed of the round constants generation
const mimcSeed string = "mimc.bn254.arks"

// Arks contains the round constants, generated once at package loading
var Arks [MimcRounds]fr.Element

func init() {
	// The round constants are derived by an iterated Keccak over a seed
	// string, reduced into the field
	keccak := sha3.NewLegacyKeccak256()
	keccak.Write([]byte(mimcSeed))
	digest := keccak.Sum(nil)

	for i := 0; i < MimcRounds; i++ {
		keccak.Reset()
		keccak.Write(digest)
		digest = keccak.Sum(nil)
		Arks[i].SetBytes(digest)
	}
}

// MimcHash returns the hash of a slice of field element
func MimcHash(input []fr.Element) fr.Element {
	// The state is initialized to zero
	var state fr.Element
	for _, x := range input {
		MimcUpdateInplace(&state, x)
	}
	return state
}

// MimcUpdateInplace performs a state update using the Mimc permutation
// in Miyaguchi-Preneel mode
func MimcUpdateInplace(state *fr.Element, block fr.Element) {
	oldState := *state
	MimcPermutationInPlace(state, block)
	state.Add(state, &oldState)
	state.Add(state, &block)
}

// MimcPermutationInPlace applies the mimc permutation in place
func MimcPermutationInPlace(state *fr.Element, block fr.Element) {
	for i := 0; i < MimcRounds; i++ {
		keys := Arks[i]
		keys.Add(&keys, &block)
		state.Add(state, &keys)
		SBoxInplace(state)
	}
}

// SBoxInplace computes x^7 in place
func SBoxInplace(x *fr.Element) {
	var base fr.Element
	base.Set(x)
	x.Square(x)     // x^2
	x.Mul(x, &base) // x^3
	x.Square(x)     // x^6
	x.Mul(x, &base) // x^7
}
