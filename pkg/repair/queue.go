package repair

import (
	"github.com/chazu/meshkernel/pkg/meshmodel"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// edgeSet is the candidate queue manager's working set: an ordered,
// removable-at-arbitrary-position set of edges (spec.md section 9,
// "working sets with removable entries"). gods' treeset backs this with
// a red-black tree, giving O(log n) Add/Remove/Contains.
type edgeSet struct {
	s *treeset.Set
}

func newEdgeSet() edgeSet {
	cmp := func(a, b interface{}) int {
		return utils.Int32Comparator(int32(a.(meshmodel.EdgeID)), int32(b.(meshmodel.EdgeID)))
	}
	return edgeSet{s: treeset.NewWith(cmp)}
}

func (s edgeSet) add(e meshmodel.EdgeID)     { s.s.Add(e) }
func (s edgeSet) remove(e meshmodel.EdgeID)  { s.s.Remove(e) }
func (s edgeSet) empty() bool                { return s.s.Empty() }

// popAny removes and returns some element of s. Which one is returned
// is unspecified beyond being deterministic for a given set content
// (spec.md section 5): this implementation always takes the
// lowest-handle edge.
func (s edgeSet) popAny() meshmodel.EdgeID {
	v := s.s.Values()[0]
	s.s.Remove(v)
	return v.(meshmodel.EdgeID)
}

func removeFromAll(e meshmodel.EdgeID, sets ...edgeSet) {
	for _, s := range sets {
		s.remove(e)
	}
}

// routeReclassification implements the "stale candidate" routing shared
// by §4.3 step 2 and step 3: a re-classification result that no longer
// matches the candidate popped from the current set is rerouted into
// the next-iteration sets instead of being acted on or discarded.
func routeReclassification(mesh meshmodel.Mesh, needle, cap meshmodel.HalfedgeID, opts Options, nextCollapse, nextFlip edgeSet) {
	switch {
	case needle.Valid():
		e := mesh.Edge(needle)
		if edgeLength(mesh, e) <= opts.CollapseLengthMax {
			nextCollapse.add(e)
		}
	case cap.Valid():
		nextFlip.add(mesh.Edge(cap))
	}
}

func edgeLength(mesh meshmodel.Mesh, e meshmodel.EdgeID) float64 {
	h := mesh.HalfedgeOfEdge(e)
	return mesh.Point(mesh.Target(h)).Sub(mesh.Point(mesh.Source(h))).Length()
}
