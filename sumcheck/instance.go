package sumcheck

import (
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/sumcheck/common"
	"github.com/consensys/sumcheck/poly"
)

// instance holds the prover's working state: one private bookkeeping table
// per factor with the count of its unbound variables, and the running
// product of the factors that are already fully bound.
//
// Factors of differing arities share the leading variables: in round i the
// factors with more than i variables are folded, the others already live in
// constProd. Tracking the per-factor counts keeps the round loop uniform
// whatever the arity mix and folds each factor into the constant exactly
// once.
type instance struct {
	tables    []poly.MultiLin
	remaining []int
	constProd fr.Element
	numVars   int
}

func makeInstance(factors []poly.MultilinearExtension) *instance {
	if len(factors) == 0 {
		panic("got an empty list of factors")
	}

	inst := &instance{
		tables:    make([]poly.MultiLin, len(factors)),
		remaining: make([]int, len(factors)),
	}
	inst.constProd.SetOne()

	for j, f := range factors {
		inst.tables[j] = f.CloneTablePadded()
		inst.remaining[j] = f.NumVars()
		inst.numVars = common.Max(inst.numVars, f.NumVars())

		// A zero-variable factor starts fully bound
		if f.NumVars() == 0 {
			inst.constProd.Mul(&inst.constProd, &inst.tables[j][0])
		}
	}

	return inst
}

// initialClaim sums the product of the factors over the whole hypercube,
// each factor addressed by the leading bits it depends on
func (inst *instance) initialClaim() fr.Element {
	n := inst.numVars
	chunks := common.IntoChunkRanges(runtime.NumCPU(), 1<<n)
	resChan := make(chan fr.Element, len(chunks))

	for _, chunk := range chunks {
		go func(chunk common.ChunkRange) {
			var res, tmp fr.Element
			for b := chunk.Begin; b < chunk.End; b++ {
				tmp = inst.constProd
				for j, table := range inst.tables {
					if inst.remaining[j] > 0 {
						tmp.Mul(&tmp, &table[b>>(n-inst.remaining[j])])
					}
				}
				res.Add(&res, &tmp)
			}
			resChan <- res
		}(chunk)
	}

	var res fr.Element
	for range chunks {
		tmp := <-resChan
		res.Add(&res, &tmp)
	}
	return res
}

// roundEvals returns the evaluations at the nodes 0..d of the current round
// polynomial, d being the number of factors still carrying the current
// variable
func (inst *instance) roundEvals() []fr.Element {
	active := make([]int, 0, len(inst.tables))
	rem := 0
	for j, c := range inst.remaining {
		if c > 0 {
			active = append(active, j)
		}
		rem = common.Max(rem, c)
	}

	nEvals := len(active) + 1
	// Variables left once the current one is substituted
	m := rem - 1

	chunks := common.IntoChunkRanges(runtime.NumCPU(), 1<<m)
	evalsChan := make(chan []fr.Element, len(chunks))

	for _, chunk := range chunks {
		go func(chunk common.ChunkRange) {
			evalsChan <- inst.roundEvalsChunk(active, nEvals, m, chunk.Begin, chunk.End)
		}(chunk)
	}

	// Reduce the partial evaluations of each chunk
	evals := <-evalsChan
	for i := 1; i < len(chunks); i++ {
		other := <-evalsChan
		for t := range evals {
			evals[t].Add(&evals[t], &other[t])
		}
	}

	return evals
}

// roundEvalsChunk accumulates the round polynomial over the hypercube points
// start..stop of the m trailing variables. For each point, every active
// factor contributes the line (1-t)*low + t*high between the two halves of
// its table, stepped from node to node by its constant increment.
func (inst *instance) roundEvalsChunk(active []int, nEvals, m, start, stop int) []fr.Element {
	evals := make([]fr.Element, nEvals)
	vals := make([]fr.Element, len(active))
	deltas := make([]fr.Element, len(active))

	var v fr.Element
	for x := start; x < stop; x++ {

		for i, j := range active {
			table := inst.tables[j]
			mid := len(table) / 2
			// Aligns the shared point on the trailing variables the factor
			// actually depends on
			idx := x >> (m - inst.remaining[j] + 1)
			vals[i] = table[idx]
			deltas[i].Sub(&table[idx+mid], &table[idx])
		}

		for t := 0; t < nEvals; t++ {
			if t > 0 {
				for i := range vals {
					vals[i].Add(&vals[i], &deltas[i])
				}
			}
			v = inst.constProd
			for i := range vals {
				v.Mul(&v, &vals[i])
			}
			evals[t].Add(&evals[t], &v)
		}
	}

	return evals
}

// fold substitutes the challenge r for the current variable of every active
// table, halving it. A factor whose last variable was just bound graduates
// into the running constant, exactly once.
func (inst *instance) fold(r fr.Element) {
	for j := range inst.tables {
		if inst.remaining[j] == 0 {
			continue
		}

		table := &inst.tables[j]
		if mid := len(*table) / 2; mid >= common.MinChunkSize {
			common.Parallelize(mid, func(start, stop int) {
				table.FoldChunk(r, start, stop)
			})
			*table = (*table)[:mid]
		} else {
			table.Fold(r)
		}

		inst.remaining[j]--
		if inst.remaining[j] == 0 {
			inst.constProd.Mul(&inst.constProd, &inst.tables[j][0])
		}
	}
}
