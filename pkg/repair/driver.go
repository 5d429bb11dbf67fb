package repair

import (
	"go.uber.org/zap"

	"github.com/chazu/meshkernel/pkg/meshmodel"
)

// Repair is the fixed-point driver of spec.md section 4.3
// (repair_almost_degenerate_faces in spec.md section 6). It alternates
// edge collapse and edge flip over faces, re-validating affected
// neighborhoods after each operation, until no bad face remains (true)
// or a full iteration makes no progress while bad faces remain (false).
func Repair(faces []meshmodel.FaceID, mesh meshmodel.Operator, opts Options) (bool, error) {
	if err := opts.Validate(); err != nil {
		return false, err
	}

	currentCollapse, currentFlip := newEdgeSet(), newEdgeSet()
	for _, f := range faces {
		needle, cap := Classify(mesh, f, opts)
		routeReclassification(mesh, needle, cap, opts, currentCollapse, currentFlip)
	}

	for iteration := 0; ; iteration++ {
		if currentCollapse.empty() && currentFlip.empty() {
			return true, nil
		}

		nextCollapse, nextFlip := newEdgeSet(), newEdgeSet()
		progress := false

		for !currentCollapse.empty() {
			e := currentCollapse.popAny()
			if processCollapse(mesh, e, opts, currentCollapse, currentFlip, nextCollapse, nextFlip) {
				progress = true
			}
		}

		for !currentFlip.empty() {
			e := currentFlip.popAny()
			if processFlip(mesh, e, opts, currentCollapse, currentFlip, nextCollapse, nextFlip) {
				progress = true
			}
		}

		opts.Logger.Debug("repair iteration",
			zap.Int("iteration", iteration),
			zap.Bool("progress", progress),
			zap.Int("next_collapse", nextCollapse.s.Size()),
			zap.Int("next_flip", nextFlip.s.Size()),
		)

		if !progress {
			return false, nil
		}
		currentCollapse, currentFlip = nextCollapse, nextFlip
	}
}

// faceOfEdge resolves a face incident to e, preferring whichever side
// has one (an edge can have zero, one, or two incident faces).
func faceOfEdge(mesh meshmodel.Mesh, e meshmodel.EdgeID) meshmodel.FaceID {
	h := mesh.HalfedgeOfEdge(e)
	if f := mesh.Face(h); f.Valid() {
		return f
	}
	return mesh.Face(mesh.Opposite(h))
}

func processCollapse(mesh meshmodel.Operator, e meshmodel.EdgeID, opts Options, currentCollapse, currentFlip, nextCollapse, nextFlip edgeSet) bool {
	f := faceOfEdge(mesh, e)
	needle, cap := Classify(mesh, f, opts)
	if !needle.Valid() || mesh.Edge(needle) != e {
		routeReclassification(mesh, needle, cap, opts, nextCollapse, nextFlip)
		return false
	}

	h := mesh.HalfedgeOfEdge(e)
	h2 := mesh.Opposite(h)
	if mesh.IsBorder(h) || mesh.IsBorder(h2) {
		// The collapse operator's precondition forbids border edges
		// (spec.md section 4.2). Defer indefinitely, same as a failing
		// link condition: bounded by the next-set swap, never acted on.
		nextCollapse.add(e)
		return false
	}

	if !mesh.SatisfiesLinkCondition(e) {
		opts.Logger.Warn("link condition failed", zap.Int32("edge", int32(e)))
		nextCollapse.add(e)
		return false
	}

	hp := mesh.Prev(h)
	h2p := mesh.Prev(h2)
	removeFromAll(mesh.Edge(hp), currentCollapse, currentFlip, nextCollapse, nextFlip)
	removeFromAll(mesh.Edge(h2p), currentCollapse, currentFlip, nextCollapse, nextFlip)
	currentFlip.remove(e)

	mesh.CollapseEdge(e)
	return true
}

func processFlip(mesh meshmodel.Operator, e meshmodel.EdgeID, opts Options, currentCollapse, currentFlip, nextCollapse, nextFlip edgeSet) bool {
	f := faceOfEdge(mesh, e)
	needle, cap := Classify(mesh, f, opts)
	if !cap.Valid() || mesh.Edge(cap) != e {
		routeReclassification(mesh, needle, cap, opts, nextCollapse, nextFlip)
		return false
	}

	h := mesh.HalfedgeOfEdge(e)
	h2 := mesh.Opposite(h)

	if mesh.IsBorder(h) || mesh.IsBorder(h2) {
		nonBorder := h
		if mesh.IsBorder(h) {
			nonBorder = h2
		}
		hn, hp := mesh.Next(nonBorder), mesh.Prev(nonBorder)
		e1, e2 := mesh.Edge(hn), mesh.Edge(hp)
		mesh.RemoveFace(nonBorder)
		removeFromAll(e1, currentFlip, nextFlip)
		removeFromAll(e2, currentFlip, nextFlip)
		return true
	}

	w := mesh.Target(mesh.Next(h))
	x := mesh.Target(mesh.Next(h2))
	if mesh.HalfedgeBetween(w, x).Valid() || mesh.HalfedgeBetween(x, w).Valid() {
		opts.Logger.Warn("unflippable cap", zap.Int32("edge", int32(e)))
		return false
	}

	hn, hp := mesh.Next(h), mesh.Prev(h)
	h2n, h2p := mesh.Next(h2), mesh.Prev(h2)
	for _, nh := range [...]meshmodel.HalfedgeID{hn, hp, h2n, h2p} {
		currentFlip.remove(mesh.Edge(nh))
	}

	newEdge := mesh.FlipEdge(e)

	f1 := mesh.Face(mesh.HalfedgeOfEdge(newEdge))
	f2 := mesh.Face(mesh.Opposite(mesh.HalfedgeOfEdge(newEdge)))
	for _, nf := range [...]meshmodel.FaceID{f1, f2} {
		nneedle, ncap := Classify(mesh, nf, opts)
		switch {
		case ncap.Valid() && mesh.Edge(ncap) != newEdge:
			nextFlip.add(mesh.Edge(ncap))
		case nneedle.Valid() && mesh.Edge(nneedle) == newEdge:
			nextCollapse.add(newEdge)
		}
	}
	return true
}
