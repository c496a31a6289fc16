package poly

import (
	"testing"

	"github.com/consensys/sumcheck/common"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	// [0, 1, 2, 3]
	bkt := make(MultiLin, 4)
	for i := 0; i < 4; i++ {
		bkt[i].SetUint64(uint64(i))
	}

	var r fr.Element
	r.SetUint64(uint64(5))

	// Folding on 5 should yield [10, 11]
	bkt.Fold(r)

	var ten, eleven fr.Element
	ten.SetUint64(uint64(10))
	eleven.SetUint64(uint64(11))

	assert.Equal(t, ten, bkt[0], "Mismatch on 0")
	assert.Equal(t, eleven, bkt[1], "Mismatch on 1")
}

func TestFoldChunk(t *testing.T) {
	// [0, 1, 2, 3]
	bkt := make(MultiLin, 4)
	for i := 0; i < 4; i++ {
		bkt[i].SetUint64(uint64(i))
	}

	var r fr.Element
	r.SetUint64(uint64(5))

	bktBis := append(MultiLin{}, bkt...)

	// Folding on 5 should yield [10, 11]
	bkt.Fold(r)
	// It should yield the same result
	bktBis.FoldChunk(r, 0, 1)
	bktBis.FoldChunk(r, 1, 2)
	bktBis = bktBis[:2]

	assert.Equal(t, bkt, bktBis)
}

func TestFoldOnLengthOneIsANoOp(t *testing.T) {
	var r fr.Element
	r.SetUint64(42)

	bkt := MultiLin(common.RandomFrArray(1))
	expected := bkt.DeepCopy()
	bkt.Fold(r)

	assert.Equal(t, expected, bkt)
}

// Cross-checks the full restriction of a table against the identity
// f(r) = Σ_b Eq(r, b) f(b), with the Eq table computed independently
func TestFullRestriction(t *testing.T) {
	for bn := 1; bn < 10; bn++ {
		table := MultiLin(common.RandomFrArray(1 << bn))
		rs := make([]fr.Element, bn)
		for i := range rs {
			rs[i].SetUint64(uint64(3*i + 7))
		}

		folded := table.DeepCopy()
		for _, r := range rs {
			folded.Fold(r)
		}
		assert.Len(t, folded, 1, "bn %v", bn)

		eq := FoldedEqTable(make(MultiLin, 1<<bn), rs)
		var direct, tmp fr.Element
		for b := range table {
			tmp.Mul(&eq[b], &table[b])
			direct.Add(&direct, &tmp)
		}

		assert.Equal(t, direct, folded[0], "bn %v", bn)
	}
}

func BenchmarkFolding(b *testing.B) {

	size := 1 << 22

	bkt := make(MultiLin, size)
	for i := 0; i < size; i++ {
		bkt[i].SetUint64(uint64(i))
	}

	var r fr.Element
	r.SetUint64(uint64(5))

	b.ResetTimer()
	for k := 0; k < b.N; k++ {

		bkt2 := bkt.DeepCopy()
		common.ProfileTrace(b, false, false, func() {
			bkt2.Fold(r)
		})
	}
}
