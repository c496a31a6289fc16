package hash

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
)

func TestMimcIsDeterministic(t *testing.T) {
	inputs := make([]fr.Element, 100)
	for i := range inputs {
		inputs[i].SetUint64(uint64(i))
	}

	a := MimcHash(inputs)
	b := MimcHash(inputs)
	assert.Equal(t, a, b, "the hash should not depend on anything but its input")
}

func TestMimcIsOrderSensitive(t *testing.T) {
	var x, y fr.Element
	x.SetUint64(12)
	y.SetUint64(13)

	a := MimcHash([]fr.Element{x, y})
	b := MimcHash([]fr.Element{y, x})
	assert.NotEqual(t, a, b, "swapping the inputs should change the hash")
}

func TestMimcStateUpdates(t *testing.T) {
	var state, stateBis, block fr.Element
	block.SetUint64(42)

	MimcUpdateInplace(&state, block)
	assert.False(t, state.IsZero())

	// A second update with the same block must move the state again
	stateBis = state
	MimcUpdateInplace(&state, block)
	assert.NotEqual(t, stateBis, state)
}

func TestArksAreDistinct(t *testing.T) {
	seen := make(map[[4]uint64]struct{})
	for _, ark := range Arks {
		key := [4]uint64(ark)
		_, collision := seen[key]
		assert.False(t, collision, "duplicate round constant")
		seen[key] = struct{}{}
	}
}
