package sop

// Divide performs the algebraic division of f by the cube d, returning the
// quotient q and remainder r such that f = d*q + r. Each cube of f that
// contains d contributes its remainder (cube minus d) to q; every other cube
// goes to r untouched. Dividing by the empty cube (the constant 1) yields
// q = f, r = 0.
func Divide(f Expr, d Cube) (q, r Expr) {
	if len(d) == 0 {
		return NewExpr(f...), Expr{}
	}
	qc := make([]Cube, 0, len(f))
	rc := make([]Cube, 0, len(f))
	for _, c := range f {
		if c.ContainsAll(d) {
			qc = append(qc, c.Minus(d))
		} else {
			rc = append(rc, c)
		}
	}
	return NewExpr(qc...), NewExpr(rc...)
}

// MultiplyCube distributes the cube d into q: d * (c1 + c2 + ...) is the sum
// of the cubes d ∪ ci.
func MultiplyCube(d Cube, q Expr) Expr {
	out := make([]Cube, 0, len(q))
	for _, c := range q {
		out = append(out, d.Union(c))
	}
	return NewExpr(out...)
}

// AddExpr returns the sum of a and b. Addition is idempotent: duplicate
// cubes collapse.
func AddExpr(a, b Expr) Expr {
	out := make([]Cube, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return NewExpr(out...)
}
