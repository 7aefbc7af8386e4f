package factor

import (
	"fmt"
	"sort"
)

// A Rectangle selects a block of the kernel matrix: a set of rows and a set
// of columns such that every selected row is related to every selected
// column. Columns are always the exact closure of the row set: every column
// whose related rows include all selected rows is part of the rectangle.
// Rows need not be closed. Index slices are kept sorted.
type Rectangle struct {
	Rows []int
	Cols []int
}

// NumRows returns the number of selected rows.
func (r Rectangle) NumRows() int { return len(r.Rows) }

// NumCols returns the number of selected columns.
func (r Rectangle) NumCols() int { return len(r.Cols) }

// Area returns rows × columns.
func (r Rectangle) Area() int { return len(r.Rows) * len(r.Cols) }

func (r Rectangle) key() string {
	return fmt.Sprint(r.Rows, r.Cols)
}

// Rectangles enumerates the column-closed rectangles of m with at least
// minRows rows and minCols columns, deduplicated by exact (rows, cols)
// content. The search is a DFS seeded at each column: the row set starts as
// the column's rows and is narrowed by intersecting further columns; at each
// step the column closure of the current row set is recorded. Columns
// already in the closure are skipped (adding them changes nothing), and
// branching only considers columns past the current start index, so no
// permutation of the same column set is ever re-derived.
//
// The search space is worst-case exponential; enumeration stops once max
// rectangles have been recorded (max <= 0 means no cap).
func Rectangles(m *Matrix, minRows, minCols, max int) []Rectangle {
	colRows := m.colRows()
	var out []Rectangle
	seen := make(map[string]bool)

	record := func(rows map[int]bool, cols []int) {
		if len(rows) < minRows || len(cols) < minCols {
			return
		}
		r := Rectangle{Rows: sortedKeys(rows), Cols: cols}
		if key := r.key(); !seen[key] {
			seen[key] = true
			out = append(out, r)
		}
	}

	var dfs func(start int, rows map[int]bool)
	dfs = func(start int, rows map[int]bool) {
		if max > 0 && len(out) >= max {
			return
		}
		closure := closureCols(colRows, rows)
		record(rows, closure)
		inClosure := make(map[int]bool, len(closure))
		for _, j := range closure {
			inClosure[j] = true
		}
		for j := start; j < len(m.Cols); j++ {
			if inClosure[j] {
				continue
			}
			narrowed := intersect(rows, colRows[j])
			if len(narrowed) == 0 {
				continue
			}
			dfs(j+1, narrowed)
		}
	}

	for j := range m.Cols {
		if len(colRows[j]) == 0 {
			continue
		}
		seed := make(map[int]bool, len(colRows[j]))
		for i := range colRows[j] {
			seed[i] = true
		}
		dfs(j+1, seed)
	}
	return out
}

// closureCols returns, sorted, every column whose row set is a superset of
// rows. The closure of the empty row set is empty.
func closureCols(colRows []map[int]bool, rows map[int]bool) []int {
	if len(rows) == 0 {
		return nil
	}
	var cols []int
	for j, related := range colRows {
		if containsAllRows(related, rows) {
			cols = append(cols, j)
		}
	}
	return cols
}

func containsAllRows(set, rows map[int]bool) bool {
	for i := range rows {
		if !set[i] {
			return false
		}
	}
	return true
}

func intersect(a, b map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for i := range a {
		if b[i] {
			out[i] = true
		}
	}
	return out
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for i := range set {
		keys = append(keys, i)
	}
	sort.Ints(keys)
	return keys
}
