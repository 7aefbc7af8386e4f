package factor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsynth/gofactor/sop"
)

func TestProfit(t *testing.T) {
	m := fourSquareMatrix(t)
	rects := Rectangles(m, 2, 1, 0)
	require.Len(t, rects, 2)

	// Rows c, d with kernel a+b: covered cubes ac, ad, bc, bd cost 8
	// literals; after extraction the co-kernels cost 2 and the node literal
	// joins each of a, b for 4 more. Profit 8 - 6 = 2.
	assert.Equal(t, 2, Profit(m, rects[0]))
	assert.Equal(t, 2, Profit(m, rects[1]))
}

func TestProfitNegative(t *testing.T) {
	m := fourSquareMatrix(t)
	// The whole-expression column alone: extracting it only adds a node.
	rects := Rectangles(m, 1, 1, 0)
	var whole Rectangle
	found := false
	for _, r := range rects {
		if r.NumCols() == 1 && r.Cols[0] == 2 {
			whole, found = r, true
		}
	}
	require.True(t, found)
	assert.Equal(t, -4, Profit(m, whole))
}

func TestProfitMultiColumn(t *testing.T) {
	pairs := []KernelPair{
		{Co: sop.NewCube("a"), Kernel: sop.Parse("c+d")},
		{Co: sop.NewCube("b"), Kernel: sop.Parse("c+d")},
		{Co: sop.NewCube("a"), Kernel: sop.Parse("e+f")},
		{Co: sop.NewCube("b"), Kernel: sop.Parse("e+f")},
	}
	m := BuildMatrix(pairs)
	rects := Rectangles(m, 1, 1, 0)
	require.Len(t, rects, 1)
	// T = c+d+e+f: 8 covered cubes of 2 literals each, against
	// 2 co-kernel literals + 4*(1+1) for the node uses.
	assert.Equal(t, 6, Profit(m, rects[0]))
}

func TestBest(t *testing.T) {
	m := fourSquareMatrix(t)
	rects := Rectangles(m, 2, 1, 0)
	best, ok := Best(m, rects)
	require.True(t, ok)
	// Both rectangles score (2, 2, 2, 1); ties keep the first enumerated.
	assert.Equal(t, []int{3, 4}, best.Rows)
	assert.Equal(t, []int{0}, best.Cols)
}

func TestBestPrefersProfit(t *testing.T) {
	m := fourSquareMatrix(t)
	rects := Rectangles(m, 1, 1, 0)
	best, ok := Best(m, rects)
	require.True(t, ok)
	assert.Equal(t, 2, Profit(m, best), "best rectangle must not be the unprofitable whole-expression one")
}

func TestBestEmpty(t *testing.T) {
	_, ok := Best(fourSquareMatrix(t), nil)
	assert.False(t, ok)
}
