package orient

import (
	"math"

	"github.com/chazu/meshkernel/pkg/pointcloud"
)

// Propagate implements spec.md section 4.7: breadth-first walk of the
// directed MST from root, flipping each target normal to align with its
// already-oriented source and decaying confidence by the angular
// threshold. Every tree edge is visited exactly once, decided once
// (spec.md section 4 supplement, grounded on the original's
// on_examine_edge BFS visitor) — there is no fixed point to iterate
// toward, unlike Core A.
func Propagate(ps *pointcloud.PointSet, pred []int, root int, opts Options) {
	n := len(pred)
	children := make([][]int, n)
	for i, p := range pred {
		if i != root && p >= 0 {
			children[p] = append(children[p], i)
		}
	}

	ps.SetOriented(root, true)
	queue := []int{root}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range children[s] {
			ns := ps.Normal(s)
			nt := ps.Normal(t)
			dot := ns.Dot(nt)
			if dot < 0 {
				nt = nt.Negate()
				ps.SetNormal(t, nt)
				dot = -dot
			}
			oriented := ps.IsOriented(s) && dot >= math.Cos(opts.MaxPropagationAngle)
			ps.SetOriented(t, oriented)
			queue = append(queue, t)
		}
	}
}
