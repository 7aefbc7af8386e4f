package factor

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRectangle reports a rectangle with an empty row or column set
// passed to Apply. This is a programmer error: the enumerator never produces
// such rectangles.
var ErrInvalidRectangle = errors.New("rectangle has no rows or no columns")

// A CoverageError reports that a rectangle's theoretical coverage includes
// cubes absent from the live expression. It is only returned under
// CoverStrict; the tolerant policies remove the present cubes and go on.
type CoverageError struct {
	Missing int      // number of covered cubes absent from the expression
	Sample  []string // up to a few of the missing cubes, rendered
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("rectangle covers %d cube(s) not present in the expression (e.g. %s)",
		e.Missing, strings.Join(e.Sample, ", "))
}

// A NodeNameCollisionError reports that a freshly generated node name was
// already present in the definition table. It indicates a bug in node-id
// threading and is always fatal.
type NodeNameCollisionError struct {
	Node string
}

func (e *NodeNameCollisionError) Error() string {
	return fmt.Sprintf("node name collision: %s already defined", e.Node)
}
