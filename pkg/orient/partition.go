package orient

import (
	"github.com/samber/lo"

	"github.com/chazu/meshkernel/pkg/pointcloud"
)

// Partition implements spec.md section 4.8: stably reorder ps so every
// oriented point comes first in original relative order, followed by
// every unoriented point in original relative order. lo.Filter is
// defined to preserve relative order, which is exactly this
// postcondition. Returns the partition boundary.
func Partition(ps *pointcloud.PointSet) int {
	pts := ps.Points()
	oriented := lo.Filter(pts, func(p pointcloud.Point, _ int) bool { return p.IsOriented })
	unoriented := lo.Filter(pts, func(p pointcloud.Point, _ int) bool { return !p.IsOriented })
	ps.SetPoints(append(oriented, unoriented...))
	return len(oriented)
}
