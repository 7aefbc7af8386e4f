package factor

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lsynth/gofactor/sop"
)

// Synthesize rewrites f as a multi-level network: a final expression plus a
// table of node definitions, each node standing for a shared sub-expression
// extracted by the rectangle pipeline (or, when that pipeline is
// unproductive, by the common-cube fallback). With FactorDefs set, every
// generated definition is then itself factored through the same pipeline,
// with node ids threaded through all calls so names never collide.
//
// Synthesize never modifies f. The only possible errors are a strict-mode
// *CoverageError and the never-expected *NodeNameCollisionError.
func Synthesize(f sop.Expr, opts Options) (*Result, error) {
	if opts.StartID < 1 {
		opts.StartID = 1
	}
	logger := opts.logger()
	st := &state{
		opts:   opts,
		logger: logger,
		defs:   make(map[string]sop.Expr),
	}

	final, nextID, stop, err := st.run(f, opts.StartID)
	if err != nil {
		return nil, err
	}

	if opts.FactorDefs {
		type item struct {
			node  string
			depth int
		}
		queue := make([]item, 0, len(st.created))
		for _, node := range st.created {
			queue = append(queue, item{node, 1})
		}
		for len(queue) > 0 {
			it := queue[0]
			queue = queue[1:]
			if it.depth > opts.MaxDefDepth {
				continue
			}
			before := len(st.created)
			refactored, id, _, err := st.run(st.defs[it.node], nextID)
			if err != nil {
				return nil, errors.Wrapf(err, "re-factoring %s", it.node)
			}
			nextID = id
			st.defs[it.node] = refactored
			for _, node := range st.created[before:] {
				queue = append(queue, item{node, it.depth + 1})
			}
		}
	}

	return &Result{
		Expr:    final,
		Defs:    st.defs,
		History: st.history,
		NextID:  nextID,
		Stop:    stop,
	}, nil
}

// state accumulates the definition table, history and created-node list of
// one top-level Synthesize call across all nested runs.
type state struct {
	opts    Options
	logger  logrus.FieldLogger
	defs    map[string]sop.Expr
	history []Step
	created []string
}

// run executes the main rewriting loop on one expression, threading the node
// id counter in and out. It does not recurse into definitions; the caller's
// worklist does.
func (st *state) run(f sop.Expr, nextID int) (sop.Expr, int, StopReason, error) {
	cur := f
	stop := StopMaxIters
	for iter := 0; iter < st.opts.MaxIters; iter++ {
		pairs := Kernels(cur)
		if len(pairs) == 0 {
			stop = StopNoKernels
			break
		}
		m := BuildMatrix(pairs)
		rects := Rectangles(m, st.opts.MinRows, st.opts.MinCols, st.opts.MaxRectangles)
		st.logger.WithFields(logrus.Fields{
			"iter":  iter,
			"rows":  len(m.Rows),
			"cols":  len(m.Cols),
			"ones":  len(m.Ones),
			"rects": len(rects),
		}).Debug("kernel matrix built")

		if len(rects) == 0 {
			next, id, fired, err := st.fallback(cur, nextID)
			if err != nil {
				return cur, nextID, stop, err
			}
			if !fired {
				stop = StopNoRectangles
				break
			}
			cur, nextID = next, id
			continue
		}

		best, _ := Best(m, rects)
		profit := Profit(m, best)
		if st.opts.RequirePositiveProfit && profit <= 0 {
			next, id, fired, err := st.fallback(cur, nextID)
			if err != nil {
				return cur, nextID, stop, err
			}
			if !fired {
				stop = StopUnprofitable
				break
			}
			cur, nextID = next, id
			continue
		}

		node := fmt.Sprintf("%s%d", st.opts.Prefix, nextID)
		nextID++
		if _, dup := st.defs[node]; dup {
			return cur, nextID, stop, &NodeNameCollisionError{Node: node}
		}
		newF, def, removed, err := Apply(cur, m, best, node, st.opts.Coverage, st.logger)
		if err != nil {
			return cur, nextID, stop, errors.Wrapf(err, "iteration %d", iter)
		}
		st.defs[node] = def
		st.created = append(st.created, node)
		st.history = append(st.history, Step{
			Iter:     iter,
			Node:     node,
			Profit:   profit,
			Rows:     best.NumRows(),
			Cols:     best.NumCols(),
			Removed:  len(removed),
			DefCubes: len(def),
		})
		st.logger.WithFields(logrus.Fields{
			"iter":   iter,
			"node":   node,
			"profit": profit,
		}).Debug("rectangle applied")
		cur = newF
		if len(cur) == 0 {
			stop = StopEmpty
			break
		}
	}
	return cur, nextID, stop, nil
}

// fallback attempts one common-cube node extraction and merges its
// definition. fired is false when no qualifying group exists.
func (st *state) fallback(cur sop.Expr, nextID int) (newF sop.Expr, id int, fired bool, err error) {
	newF, defs, fired, id := ExtractCommonNode(cur, st.opts.Prefix, nextID)
	if !fired {
		return cur, nextID, false, nil
	}
	for node, def := range defs {
		if _, dup := st.defs[node]; dup {
			return cur, nextID, false, &NodeNameCollisionError{Node: node}
		}
		st.defs[node] = def
		st.created = append(st.created, node)
		st.logger.WithFields(logrus.Fields{
			"node":  node,
			"cubes": len(def),
		}).Debug("common cube extracted")
	}
	return newF, id, true, nil
}
