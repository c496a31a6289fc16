package transcript

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/common"
	"github.com/consensys/sumcheck/hash"
)

// Domain separator distinguishing squeezes from absorbs, so that
// absorb(x); squeeze() and absorb(x); absorb(squeezeBlock) diverge
var squeezeBlock fr.Element

func init() {
	squeezeBlock = common.FrFromBytesLE([]byte("mimc.sponge.squeeze"))
}

// Mimc is the reference Sponge, a duplex construction over the Mimc
// permutation in Miyaguchi-Preneel mode
type Mimc struct {
	state fr.Element
}

// NewMimc returns an empty sponge
func NewMimc() *Mimc {
	return &Mimc{}
}

func (s *Mimc) AbsorbInitializationLabel(label string) {
	s.AbsorbElements(common.FrSliceFromBytesLE([]byte(label)))
}

func (s *Mimc) Absorb(x fr.Element) {
	hash.MimcUpdateInplace(&s.state, x)
}

func (s *Mimc) AbsorbElements(xs []fr.Element) {
	for _, x := range xs {
		s.Absorb(x)
	}
}

func (s *Mimc) Squeeze() fr.Element {
	hash.MimcUpdateInplace(&s.state, squeezeBlock)
	return s.state
}

func (s *Mimc) SqueezeElements(n int) []fr.Element {
	res := make([]fr.Element, n)
	for i := range res {
		res[i] = s.Squeeze()
	}
	return res
}
