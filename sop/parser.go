package sop

import "strings"

// Parse reads a sum-of-products expression from its textual form, such as
// "adf + aef + bdf + h". Whitespace is ignored, '+' separates product terms
// and every character of a term is one literal. Empty terms are skipped, so
// an input made only of separators parses to the constant 0. Literal names
// are not validated: any non-separator character is accepted.
func Parse(text string) Expr {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, "\t", "")
	cubes := make([]Cube, 0, strings.Count(text, "+")+1)
	for _, term := range strings.Split(text, "+") {
		if term == "" {
			continue
		}
		lits := make([]string, 0, len(term))
		for _, r := range term {
			lits = append(lits, string(r))
		}
		cubes = append(cubes, NewCube(lits...))
	}
	return NewExpr(cubes...)
}
