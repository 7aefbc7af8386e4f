package factor

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lsynth/gofactor/sop"
)

// Options control a Synthesize run.
type Options struct {
	// Prefix is prepended to node ids to form node names ("t" gives t1, t2...).
	Prefix string
	// StartID is the first node id; ids below 1 are raised to 1.
	StartID int
	// MaxIters caps the main rewriting loop.
	MaxIters int
	// MinRows and MinCols filter enumerated rectangles.
	MinRows int
	MinCols int
	// MaxRectangles caps rectangle enumeration per iteration (<= 0: no cap).
	MaxRectangles int
	// RequirePositiveProfit rejects rectangles with profit <= 0.
	RequirePositiveProfit bool
	// FactorDefs re-factors every generated node definition recursively.
	FactorDefs bool
	// MaxDefDepth bounds the re-factoring worklist depth.
	MaxDefDepth int
	// Coverage selects the Apply policy for stale coverage.
	Coverage CoveragePolicy
	// Logger receives per-iteration diagnostics; nil discards them.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the options used by the command-line tool:
// nodes t1, t2, ... , 50 iterations, rectangles of at least 2 rows and
// 1 column capped at 5000 per iteration, positive profit required, and
// recursive definition factoring up to depth 10.
func DefaultOptions() Options {
	return Options{
		Prefix:                "t",
		StartID:               1,
		MaxIters:              50,
		MinRows:               2,
		MinCols:               1,
		MaxRectangles:         5000,
		RequirePositiveProfit: true,
		FactorDefs:            true,
		MaxDefDepth:           10,
		Coverage:              CoverTolerant,
	}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// A Step records one successful rectangle extraction of the main loop.
type Step struct {
	Iter     int    // iteration number within its loop
	Node     string // name of the node created
	Profit   int    // predicted literal savings
	Rows     int    // rectangle row count
	Cols     int    // rectangle column count
	Removed  int    // cubes actually removed from the expression
	DefCubes int    // cubes in the node definition
}

// StopReason tells why the rewriting loop stopped.
type StopReason byte

const (
	// StopMaxIters means the iteration cap was reached.
	StopMaxIters = StopReason(iota)
	// StopNoKernels means the expression had no kernels left.
	StopNoKernels
	// StopNoRectangles means no rectangle was found and the fallback did not fire.
	StopNoRectangles
	// StopUnprofitable means the best rectangle had non-positive profit and the fallback did not fire.
	StopUnprofitable
	// StopEmpty means the expression became the constant 0.
	StopEmpty
)

func (s StopReason) String() string {
	switch s {
	case StopMaxIters:
		return "iteration cap reached"
	case StopNoKernels:
		return "no kernels"
	case StopNoRectangles:
		return "no rectangles"
	case StopUnprofitable:
		return "no profitable rectangle"
	case StopEmpty:
		return "expression became 0"
	default:
		panic("invalid stop reason")
	}
}

// A Result is the outcome of a Synthesize run. It is not modified once
// returned.
type Result struct {
	// Expr is the rewritten expression; it may contain node literals.
	Expr sop.Expr
	// Defs maps every generated node name to its definition.
	Defs map[string]sop.Expr
	// History records the rectangle extractions in order, including those
	// performed while re-factoring definitions.
	History []Step
	// NextID is the first unused node id after the run.
	NextID int
	// Stop is the reason the main loop ended.
	Stop StopReason
}

// TotalLiterals returns the literal count of the final expression plus all
// node definitions. Comparing it with the input's literal count gives the
// savings achieved by the run.
func (r *Result) TotalLiterals() int {
	n := r.Expr.NumLiterals()
	for _, def := range r.Defs {
		n += def.NumLiterals()
	}
	return n
}
