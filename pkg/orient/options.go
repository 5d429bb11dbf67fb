// Package orient implements Core B: seed selection, Riemannian graph
// construction, minimum spanning tree, breadth-first orientation
// propagation and stable partition (spec.md sections 2 and 4.4-4.8),
// grounded directly on CGAL::mst_orient_normals.
package orient

import (
	"fmt"
	"math"

	"github.com/chazu/meshkernel/internal/diag"
)

// Options configures OrientNormals. The zero value is not valid; use
// NewOptions.
type Options struct {
	// MaxPropagationAngle is theta_max: the angular threshold below
	// which propagated confidence survives (spec.md section 4.7).
	MaxPropagationAngle float64
	// Logger receives the residual-unoriented-points warning and the
	// debug-level MST predecessor sanity check, spec.md section 7. The
	// zero value discards everything.
	Logger diag.Logger
}

// NewOptions returns the spec.md section 6 default: max propagation
// angle pi/2.
func NewOptions() Options {
	return Options{MaxPropagationAngle: math.Pi / 2}
}

// Validate rejects out-of-range fields at the boundary.
func (o Options) Validate() error {
	if o.MaxPropagationAngle <= 0 || o.MaxPropagationAngle > math.Pi/2 {
		return &PreconditionError{Field: "MaxPropagationAngle", Msg: "must be in (0, pi/2]"}
	}
	return nil
}

// PreconditionError marks a spec.md section 7 precondition violation
// (invalid k, invalid angle, empty input).
type PreconditionError struct {
	Field string
	Msg   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("orient: precondition violated on %s: %s", e.Field, e.Msg)
}
