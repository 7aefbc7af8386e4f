package factor

import (
	"sort"

	"github.com/lsynth/gofactor/sop"
)

// A KernelPair associates a kernel of an expression with the co-kernel cube
// that produces it: dividing the expression by Co yields the cube-free
// quotient Kernel.
type KernelPair struct {
	Co     sop.Cube
	Kernel sop.Expr
}

// Kernels returns all (co-kernel, kernel) pairs of f. The enumeration is a
// recursive literal elimination starting from the empty co-kernel: at each
// step, every literal occurring in at least two cubes is divided out in turn.
// Literals occurring once cannot lead to a kernel with more than one cube and
// are pruned, which also bounds the recursion.
//
// Pairs are deduplicated by canonical (co-kernel, kernel) form. A cube-free
// input is always recorded with the empty co-kernel; the empty expression
// has no kernels.
func Kernels(f sop.Expr) []KernelPair {
	seen := make(map[string]bool)
	var out []KernelPair

	var recurse func(e sop.Expr, co sop.Cube)
	recurse = func(e sop.Expr, co sop.Cube) {
		if len(e) == 0 {
			return
		}
		if e.IsCubeFree() {
			key := co.Key() + "|" + e.Key()
			if !seen[key] {
				seen[key] = true
				out = append(out, KernelPair{Co: co, Kernel: e})
			}
			// A cube-free expression can still hide deeper kernels.
		}
		counts := make(map[string]int)
		for _, c := range e {
			for _, lit := range c {
				counts[lit]++
			}
		}
		lits := make([]string, 0, len(counts))
		for lit, n := range counts {
			if n >= 2 {
				lits = append(lits, lit)
			}
		}
		sort.Strings(lits)
		for _, lit := range lits {
			single := sop.NewCube(lit)
			sub := make([]sop.Cube, 0, counts[lit])
			for _, c := range e {
				if c.Contains(lit) {
					sub = append(sub, c.Minus(single))
				}
			}
			recurse(sop.NewExpr(sub...), co.Union(single))
		}
	}

	recurse(f, sop.Cube{})
	return out
}
