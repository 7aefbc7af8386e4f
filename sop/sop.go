package sop

import (
	"sort"
	"strings"
)

// A Cube is a product term: a set of distinct literals, ANDed together.
// Literals are kept sorted by name. The empty cube is the constant 1.
type Cube []string

// NewCube builds a cube from the given literals, sorting them and dropping
// duplicates.
func NewCube(lits ...string) Cube {
	c := make(Cube, 0, len(lits))
	c = append(c, lits...)
	sort.Strings(c)
	return dedupSorted(c)
}

func dedupSorted(c Cube) Cube {
	j := 0
	for i, lit := range c {
		if i > 0 && lit == c[j-1] {
			continue
		}
		c[j] = lit
		j++
	}
	return c[:j]
}

// Contains returns true iff the literal appears in c.
func (c Cube) Contains(lit string) bool {
	i := sort.SearchStrings(c, lit)
	return i < len(c) && c[i] == lit
}

// ContainsAll returns true iff every literal of d appears in c, i.e. d ⊆ c.
// Every cube contains the empty cube.
func (c Cube) ContainsAll(d Cube) bool {
	for _, lit := range d {
		if !c.Contains(lit) {
			return false
		}
	}
	return true
}

// Minus returns a new cube holding the literals of c that are not in d.
func (c Cube) Minus(d Cube) Cube {
	out := make(Cube, 0, len(c))
	for _, lit := range c {
		if !d.Contains(lit) {
			out = append(out, lit)
		}
	}
	return out
}

// Union returns a new cube holding the literals of both c and d.
func (c Cube) Union(d Cube) Cube {
	out := make(Cube, 0, len(c)+len(d))
	out = append(out, c...)
	out = append(out, d...)
	sort.Strings(out)
	return dedupSorted(out)
}

// Intersect returns a new cube holding the literals common to c and d.
func (c Cube) Intersect(d Cube) Cube {
	out := make(Cube, 0, len(c))
	for _, lit := range c {
		if d.Contains(lit) {
			out = append(out, lit)
		}
	}
	return out
}

// Equal returns true iff c and d hold the same literals.
func (c Cube) Equal(d Cube) bool {
	if len(c) != len(d) {
		return false
	}
	for i, lit := range c {
		if d[i] != lit {
			return false
		}
	}
	return true
}

// Key returns a canonical representation of c, usable as a map key.
// Unlike String, it is unambiguous for multi-character literal names.
func (c Cube) Key() string {
	return strings.Join(c, ",")
}

// Less orders cubes by size first, then by the lexicographic order of their
// literal sequences. This is the canonical cube order used everywhere a
// reproducible ordering is needed.
func (c Cube) Less(d Cube) bool {
	if len(c) != len(d) {
		return len(c) < len(d)
	}
	for i, lit := range c {
		if lit != d[i] {
			return lit < d[i]
		}
	}
	return false
}

func (c Cube) String() string {
	if len(c) == 0 {
		return "1"
	}
	return strings.Join(c, "")
}

// An Expr is a sum of distinct cubes, kept in canonical cube order.
// The empty expression is the constant 0.
type Expr []Cube

// NewExpr builds an expression from the given cubes, sorting them and
// dropping duplicates. The cubes themselves must already be canonical
// (as produced by NewCube or any Cube operation).
func NewExpr(cubes ...Cube) Expr {
	e := make(Expr, 0, len(cubes))
	e = append(e, cubes...)
	sort.Slice(e, func(i, j int) bool { return e[i].Less(e[j]) })
	j := 0
	for i, c := range e {
		if i > 0 && c.Equal(e[j-1]) {
			continue
		}
		e[j] = c
		j++
	}
	return e[:j]
}

// Contains returns true iff the cube appears in e.
func (e Expr) Contains(c Cube) bool {
	i := sort.Search(len(e), func(i int) bool { return !e[i].Less(c) })
	return i < len(e) && e[i].Equal(c)
}

// Minus returns a new expression holding the cubes of e that are not in f.
func (e Expr) Minus(f Expr) Expr {
	out := make(Expr, 0, len(e))
	for _, c := range e {
		if !f.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Equal returns true iff e and f hold the same cubes.
func (e Expr) Equal(f Expr) bool {
	if len(e) != len(f) {
		return false
	}
	for i, c := range e {
		if !c.Equal(f[i]) {
			return false
		}
	}
	return true
}

// Key returns a canonical representation of e, usable as a map key.
func (e Expr) Key() string {
	keys := make([]string, len(e))
	for i, c := range e {
		keys[i] = c.Key()
	}
	return strings.Join(keys, "+")
}

// Less orders expressions by cube count first, then by canonical key.
func (e Expr) Less(f Expr) bool {
	if len(e) != len(f) {
		return len(e) < len(f)
	}
	return e.Key() < f.Key()
}

// NumLiterals returns the total number of literals over all cubes of e.
// This is the cost metric the factoring engine minimizes.
func (e Expr) NumLiterals() int {
	n := 0
	for _, c := range e {
		n += len(c)
	}
	return n
}

// CommonCube returns the cube of literals shared by every cube of e.
// The common cube of the empty expression is the empty cube.
func (e Expr) CommonCube() Cube {
	if len(e) == 0 {
		return Cube{}
	}
	common := e[0]
	for _, c := range e[1:] {
		common = common.Intersect(c)
		if len(common) == 0 {
			break
		}
	}
	return common
}

// IsCubeFree returns true iff no literal is shared by every cube of e.
// Kernels are cube-free by definition.
func (e Expr) IsCubeFree() bool {
	return len(e.CommonCube()) == 0
}

func (e Expr) String() string {
	if len(e) == 0 {
		return "0"
	}
	terms := make([]string, len(e))
	for i, c := range e {
		terms[i] = c.String()
	}
	return strings.Join(terms, " + ")
}
