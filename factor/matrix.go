package factor

import (
	"sort"

	"github.com/lsynth/gofactor/sop"
)

// A Matrix is the boolean relation between the co-kernels and kernels of an
// expression. Rows are the distinct co-kernel cubes and columns the distinct
// kernels (deduplicated by canonical form, one representative retained),
// both in canonical order. Ones is the sparse relation and is authoritative;
// Dense derives a 0/1 view for diagnostics.
type Matrix struct {
	Rows []sop.Cube
	Cols []sop.Expr
	Ones map[Cell]bool

	rowIndex map[string]int
	colIndex map[string]int
}

// A Cell addresses one entry of the relation.
type Cell struct {
	Row, Col int
}

// BuildMatrix arranges the given kernel pairs into a Matrix. Every fed pair
// lands in Ones at the indices of its co-kernel row and canonical-kernel
// column.
func BuildMatrix(pairs []KernelPair) *Matrix {
	m := &Matrix{
		Ones:     make(map[Cell]bool),
		rowIndex: make(map[string]int),
		colIndex: make(map[string]int),
	}
	for _, p := range pairs {
		if _, ok := m.rowIndex[p.Co.Key()]; !ok {
			m.rowIndex[p.Co.Key()] = 0 // final index assigned after sorting
			m.Rows = append(m.Rows, p.Co)
		}
		if _, ok := m.colIndex[p.Kernel.Key()]; !ok {
			m.colIndex[p.Kernel.Key()] = 0
			m.Cols = append(m.Cols, p.Kernel)
		}
	}
	sort.Slice(m.Rows, func(i, j int) bool { return m.Rows[i].Less(m.Rows[j]) })
	sort.Slice(m.Cols, func(i, j int) bool { return m.Cols[i].Less(m.Cols[j]) })
	for i, co := range m.Rows {
		m.rowIndex[co.Key()] = i
	}
	for j, k := range m.Cols {
		m.colIndex[k.Key()] = j
	}
	for _, p := range pairs {
		m.Ones[Cell{m.rowIndex[p.Co.Key()], m.colIndex[p.Kernel.Key()]}] = true
	}
	return m
}

// RowIndex returns the row of the given co-kernel, or false if it is not a
// row of the matrix.
func (m *Matrix) RowIndex(co sop.Cube) (int, bool) {
	i, ok := m.rowIndex[co.Key()]
	return i, ok
}

// ColIndex returns the column of the given kernel, deduplicated by canonical
// form, or false if it is not a column of the matrix.
func (m *Matrix) ColIndex(k sop.Expr) (int, bool) {
	j, ok := m.colIndex[k.Key()]
	return j, ok
}

// Dense returns the relation as a 0/1 matrix. Diagnostic only: the sparse
// Ones set is the source of truth.
func (m *Matrix) Dense() [][]int {
	d := make([][]int, len(m.Rows))
	for i := range d {
		d[i] = make([]int, len(m.Cols))
	}
	for cell := range m.Ones {
		d[cell.Row][cell.Col] = 1
	}
	return d
}

// colRows returns, per column, the set of rows related to it.
func (m *Matrix) colRows() []map[int]bool {
	rows := make([]map[int]bool, len(m.Cols))
	for j := range rows {
		rows[j] = make(map[int]bool)
	}
	for cell := range m.Ones {
		rows[cell.Col][cell.Row] = true
	}
	return rows
}
