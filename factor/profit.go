package factor

import "github.com/lsynth/gofactor/sop"

// Profit predicts the literal savings of extracting rect as a shared node.
// With R the selected co-kernels and T the union of the selected kernels,
// the cost before extraction is the literal count of the distinct covered
// cubes {r ∪ t}. After extraction, the co-kernels define the node (costing
// their own literals) and the node literal joins each product of T (costing
// 1+|t| per cube). The result may be negative. The formula charges every use
// of the node in full; reuse of the same node by later extractions is not
// discounted.
func Profit(m *Matrix, rect Rectangle) int {
	t := unionCols(m, rect)
	before := 0
	seen := make(map[string]bool)
	for _, i := range rect.Rows {
		for _, tc := range t {
			covered := m.Rows[i].Union(tc)
			if key := covered.Key(); !seen[key] {
				seen[key] = true
				before += len(covered)
			}
		}
	}
	after := 0
	for _, i := range rect.Rows {
		after += len(m.Rows[i])
	}
	for _, tc := range t {
		after += 1 + len(tc)
	}
	return before - after
}

// Best returns the rectangle maximizing (profit, area, rows, cols) in
// lexicographic order. Ties keep the earliest candidate, so selection is
// deterministic for a deterministic enumeration order. The second return
// value is false iff rects is empty.
func Best(m *Matrix, rects []Rectangle) (Rectangle, bool) {
	if len(rects) == 0 {
		return Rectangle{}, false
	}
	best := rects[0]
	bestKey := [4]int{Profit(m, best), best.Area(), best.NumRows(), best.NumCols()}
	for _, r := range rects[1:] {
		key := [4]int{Profit(m, r), r.Area(), r.NumRows(), r.NumCols()}
		if keyGreater(key, bestKey) {
			best, bestKey = r, key
		}
	}
	return best, true
}

func keyGreater(a, b [4]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

// unionCols returns the union of the kernel expressions selected by rect's
// columns: the definition of the extracted node.
func unionCols(m *Matrix, rect Rectangle) sop.Expr {
	var t sop.Expr
	for _, j := range rect.Cols {
		t = sop.AddExpr(t, m.Cols[j])
	}
	return t
}
