package orient

import (
	"go.uber.org/zap"

	"github.com/chazu/meshkernel/pkg/pointcloud"
)

// OrientNormals is the surface operation of spec.md section 6
// (orient_normals_via_mst): build the Riemannian graph, root an MST at
// an unambiguous seed, propagate orientation breadth-first, and
// stably partition the result. Returns the partition boundary.
func OrientNormals(ps *pointcloud.PointSet, k int, opts Options) (int, error) {
	if k < 2 {
		return 0, &PreconditionError{Field: "k", Msg: "must be >= 2"}
	}
	if ps.Len() == 0 {
		return 0, &PreconditionError{Field: "points", Msg: "must be non-empty"}
	}
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	seed := FindSeed(ps)
	graph := BuildRiemannianGraph(ps, k)
	pred := BuildMST(graph, seed, opts.Logger)
	Propagate(ps, pred, seed, opts)
	boundary := Partition(ps)
	if boundary < ps.Len() {
		opts.Logger.Warn("residual unoriented points", zap.Int("unoriented", ps.Len()-boundary))
	}
	return boundary, nil
}
