package factor

import (
	"fmt"

	"github.com/lsynth/gofactor/sop"
)

// commonGroup finds the first group of at least two cubes of f sharing a
// nonempty common cube. Groups are tried in canonical order: for each base
// cube, the group is every cube sharing at least one literal with it, and
// the common cube is the intersection over the group. First fit wins; the
// search is cheap, not optimal.
func commonGroup(f sop.Expr) (common sop.Cube, members sop.Expr, ok bool) {
	for _, base := range f {
		var group []sop.Cube
		for _, c := range f {
			if len(base.Intersect(c)) > 0 {
				group = append(group, c)
			}
		}
		if len(group) < 2 {
			continue
		}
		members = sop.NewExpr(group...)
		common = members.CommonCube()
		if len(common) > 0 {
			return common, members, true
		}
	}
	return nil, nil, false
}

// ExtractCommon reports whether f holds a group of cubes with a nonempty
// common cube, i.e. whether it can be rewritten as common·Σ(cube−common).
// In flat sum-of-products form that rewriting redistributes to the very same
// cubes, so the expression is returned unchanged; the boolean signals that
// the node-creating variant would find work here.
func ExtractCommon(f sop.Expr) (sop.Expr, bool) {
	_, _, ok := commonGroup(f)
	return f, ok
}

// ExtractCommonNode pulls the first qualifying common cube of f out into a
// new node: the group's cubes are replaced by common ∪ {node}, and the node
// is defined as the sum of the group's remainders. At least two distinct
// remainder cubes are required, otherwise nothing changes. The node name is
// prefix followed by nextID; the returned id is advanced iff a node was
// created.
//
// ExtractCommonNode is the fallback of the synthesis driver for expressions
// where the rectangle pipeline is unproductive.
func ExtractCommonNode(f sop.Expr, prefix string, nextID int) (newF sop.Expr, defs map[string]sop.Expr, changed bool, id int) {
	common, members, ok := commonGroup(f)
	if !ok {
		return f, nil, false, nextID
	}
	remainders := make([]sop.Cube, 0, len(members))
	for _, c := range members {
		remainders = append(remainders, c.Minus(common))
	}
	def := sop.NewExpr(remainders...)
	if len(def) < 2 {
		return f, nil, false, nextID
	}
	node := fmt.Sprintf("%s%d", prefix, nextID)
	newF = sop.AddExpr(f.Minus(members), sop.Expr{common.Union(sop.NewCube(node))})
	return newF, map[string]sop.Expr{node: def}, true, nextID + 1
}
