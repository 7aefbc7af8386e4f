package factor

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsynth/gofactor/sop"
)

// bestFourSquare returns the four-square expression, its matrix and the best
// rectangle (rows c, d × kernel a+b).
func bestFourSquare(t *testing.T) (sop.Expr, *Matrix, Rectangle) {
	t.Helper()
	f := sop.Parse("ac+ad+bc+bd")
	m := BuildMatrix(Kernels(f))
	best, ok := Best(m, Rectangles(m, 2, 1, 0))
	require.True(t, ok)
	return f, m, best
}

func TestApply(t *testing.T) {
	f, m, best := bestFourSquare(t)
	newF, def, removed, err := Apply(f, m, best, "t1", CoverTolerant, nil)
	require.NoError(t, err)
	assert.Equal(t, "ct1 + dt1", newF.String())
	assert.Equal(t, "a + b", def.String())
	assert.True(t, removed.Equal(f), "all four cubes are covered")
}

func TestApplyReconstructs(t *testing.T) {
	f, m, best := bestFourSquare(t)
	newF, def, removed, err := Apply(f, m, best, "t1", CoverTolerant, nil)
	require.NoError(t, err)

	// Substituting the definition back for the node rebuilds exactly the
	// removed coverage.
	var rebuilt sop.Expr
	for _, i := range best.Rows {
		rebuilt = sop.AddExpr(rebuilt, sop.MultiplyCube(m.Rows[i], def))
	}
	assert.True(t, rebuilt.Equal(removed))

	// And the rewritten expression references the node once per row.
	node := sop.NewCube("t1")
	count := 0
	for _, c := range newF {
		if c.ContainsAll(node) {
			count++
		}
	}
	assert.Equal(t, best.NumRows(), count)
}

func TestApplyTolerantPartial(t *testing.T) {
	f, m, best := bestFourSquare(t)
	stale := f.Minus(sop.Parse("bd"))
	newF, _, removed, err := Apply(stale, m, best, "t1", CoverTolerant, nil)
	require.NoError(t, err)
	assert.Equal(t, "ct1 + dt1", newF.String())
	require.Len(t, removed, 3)
	assert.False(t, removed.Contains(sop.NewCube("b", "d")))
}

func TestApplyStrict(t *testing.T) {
	f, m, best := bestFourSquare(t)
	stale := f.Minus(sop.Parse("bd"))
	_, _, _, err := Apply(stale, m, best, "t1", CoverStrict, nil)
	require.Error(t, err)
	var cerr *CoverageError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 1, cerr.Missing)
	assert.Equal(t, []string{"bd"}, cerr.Sample)
}

func TestApplyWarn(t *testing.T) {
	f, m, best := bestFourSquare(t)
	stale := f.Minus(sop.Parse("bd"))
	logger, hook := test.NewNullLogger()
	_, _, removed, err := Apply(stale, m, best, "t1", CoverWarn, logger)
	require.NoError(t, err)
	assert.Len(t, removed, 3)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, 1, hook.LastEntry().Data["missing"])
}

func TestApplyWarnExactCoverageSilent(t *testing.T) {
	f, m, best := bestFourSquare(t)
	logger, hook := test.NewNullLogger()
	_, _, _, err := Apply(f, m, best, "t1", CoverWarn, logger)
	require.NoError(t, err)
	assert.Empty(t, hook.Entries)
}

func TestApplyInvalidRectangle(t *testing.T) {
	f, m, _ := bestFourSquare(t)
	_, _, _, err := Apply(f, m, Rectangle{}, "t1", CoverTolerant, nil)
	require.ErrorIs(t, err, ErrInvalidRectangle)
	_, _, _, err = Apply(f, m, Rectangle{Rows: []int{0}}, "t1", CoverTolerant, nil)
	require.ErrorIs(t, err, ErrInvalidRectangle)
	_, _, _, err = Apply(f, m, Rectangle{Cols: []int{0}}, "t1", CoverTolerant, nil)
	require.ErrorIs(t, err, ErrInvalidRectangle)
}
