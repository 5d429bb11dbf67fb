// Package repair implements Core A: iterative elimination of needle and
// cap triangles from a half-edge mesh by edge collapse and edge flip
// (spec.md sections 2 and 4.1-4.3), grounded directly on
// CGAL::Polygon_mesh_processing::remove_degeneracies.
package repair

import (
	"fmt"
	"math"

	"github.com/chazu/meshkernel/internal/diag"
)

// Options configures Repair. The zero value is not valid; use
// NewOptions, which fills in the defaults from spec.md section 6.
type Options struct {
	// NeedleRatio is ρ: a face is a needle if longest/shortest edge > ρ.
	NeedleRatio float64
	// CapAngleCosine is γ: a face is a cap if some interior angle's
	// cosine is below γ.
	CapAngleCosine float64
	// CollapseLengthMax is L: a needle edge is collapse-eligible only if
	// its length is <= L.
	CollapseLengthMax float64
	// Logger receives internal warnings and per-iteration progress,
	// spec.md section 7 ("logged behind a debug flag"). The zero value
	// (diag.Logger{}) discards everything.
	Logger diag.Logger
}

// NewOptions returns the spec.md section 6 defaults: needle ratio 4.0,
// cap angle cosine cos(160 degrees), collapse length max 0.2.
func NewOptions() Options {
	return Options{
		NeedleRatio:       4.0,
		CapAngleCosine:    math.Cos(160 * math.Pi / 180),
		CollapseLengthMax: 0.2,
	}
}

// Validate rejects out-of-range fields at the boundary, per spec.md
// section 7's precondition-violation taxonomy.
func (o Options) Validate() error {
	if o.NeedleRatio <= 0 {
		return &PreconditionError{Field: "NeedleRatio", Msg: "must be positive"}
	}
	if o.CapAngleCosine < -1 || o.CapAngleCosine > 1 {
		return &PreconditionError{Field: "CapAngleCosine", Msg: "must be in [-1, 1]"}
	}
	if o.CollapseLengthMax <= 0 {
		return &PreconditionError{Field: "CollapseLengthMax", Msg: "must be positive"}
	}
	return nil
}

// PreconditionError marks a spec.md section 7 precondition violation —
// a programming error the caller should fail fast on, distinguishable
// from ordinary failures via errors.As, the same way the teacher's
// graph.ValidationError is a typed, inspectable error.
type PreconditionError struct {
	Field string
	Msg   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("repair: precondition violated on %s: %s", e.Field, e.Msg)
}
