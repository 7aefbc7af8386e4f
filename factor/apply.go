package factor

import (
	"github.com/sirupsen/logrus"

	"github.com/lsynth/gofactor/sop"
)

// A CoveragePolicy selects how Apply reacts when a rectangle's theoretical
// coverage includes cubes that are no longer present in the expression.
// Partial application is usually still net-beneficial, so the default is
// tolerant.
type CoveragePolicy byte

const (
	// CoverTolerant removes only the covered cubes actually present.
	CoverTolerant = CoveragePolicy(iota)
	// CoverWarn behaves like CoverTolerant but logs a diagnostic.
	CoverWarn
	// CoverStrict fails with a *CoverageError instead of applying.
	CoverStrict
)

const coverageSampleSize = 10

// Apply extracts rect from f under a fresh node name. The node's definition
// is the union T of the selected kernel columns; every covered cube
// (co ∪ t for a selected co-kernel co and cube t of T) present in f is
// removed, and one cube co ∪ {node} is added per selected co-kernel.
//
// It returns the rewritten expression, the node definition and the cubes
// actually removed. A rectangle with no rows or no columns fails with
// ErrInvalidRectangle; covered cubes missing from f are handled according
// to policy.
func Apply(f sop.Expr, m *Matrix, rect Rectangle, node string, policy CoveragePolicy, logger logrus.FieldLogger) (newF, def, removed sop.Expr, err error) {
	if rect.NumRows() == 0 || rect.NumCols() == 0 {
		return nil, nil, nil, ErrInvalidRectangle
	}
	if logger == nil {
		logger = Options{}.logger()
	}
	def = unionCols(m, rect)

	var covered sop.Expr
	for _, i := range rect.Rows {
		covered = sop.AddExpr(covered, sop.MultiplyCube(m.Rows[i], def))
	}

	missing := covered.Minus(f)
	if len(missing) > 0 {
		switch policy {
		case CoverStrict:
			sample := make([]string, 0, coverageSampleSize)
			for _, c := range missing {
				if len(sample) == coverageSampleSize {
					break
				}
				sample = append(sample, c.String())
			}
			return nil, nil, nil, &CoverageError{Missing: len(missing), Sample: sample}
		case CoverWarn:
			logger.WithFields(logrus.Fields{
				"missing": len(missing),
				"sample":  missing[0].String(),
				"node":    node,
			}).Warn("rectangle coverage not fully present; removing present cubes only")
		}
	}

	removed = covered.Minus(missing)
	newF = f.Minus(removed)
	nodeCube := sop.NewCube(node)
	for _, i := range rect.Rows {
		newF = sop.AddExpr(newF, sop.Expr{m.Rows[i].Union(nodeCube)})
	}
	return newF, def, removed, nil
}
