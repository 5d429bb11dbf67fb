package repair

import (
	"github.com/chazu/meshkernel/pkg/meshmodel"
	"github.com/chazu/meshkernel/pkg/vec3"
)

// Classify implements the shape classifier of spec.md section 4.1. It is
// pure: the result depends only on f's current geometry, never on
// previously-seen faces. At most one of the two returned halfedges is
// valid; needle is checked first (classification is mutually exclusive
// by policy, spec.md section 9).
func Classify(mesh meshmodel.Mesh, f meshmodel.FaceID, opts Options) (needle, cap meshmodel.HalfedgeID) {
	hs := mesh.HalfedgesAroundFace(f)
	h0, h1, h2 := hs[0], hs[1], hs[2]

	a := mesh.Point(mesh.Source(h0))
	b := mesh.Point(mesh.Target(h0))
	c := mesh.Point(mesh.Target(h1))

	lenH0 := b.Sub(a).Length() // edge a-b, opposite vertex c
	lenH1 := c.Sub(b).Length() // edge b-c, opposite vertex a
	lenH2 := a.Sub(c).Length() // edge c-a, opposite vertex b

	lengths := [3]float64{lenH0, lenH1, lenH2}
	halfedges := [3]meshmodel.HalfedgeID{h0, h1, h2}

	shortest, longest := 0, 0
	for i := 1; i < 3; i++ {
		if lengths[i] < lengths[shortest] || (lengths[i] == lengths[shortest] && halfedges[i] < halfedges[shortest]) {
			shortest = i
		}
		if lengths[i] > lengths[longest] || (lengths[i] == lengths[longest] && halfedges[i] < halfedges[longest]) {
			longest = i
		}
	}

	// A zero-length shortest edge makes the ratio +Inf (Go's float
	// division, not a special case), which is > NeedleRatio for any
	// positive ratio: spec.md section 7 requires exactly this, treating
	// a degenerate zero-length edge as the ideal collapse target rather
	// than excluding it. Only a fully degenerate triangle (every edge
	// zero) skips needle classification, since 0/0 is NaN and never
	// compares greater than anything.
	if lengths[longest] > 0 && lengths[longest]/lengths[shortest] > opts.NeedleRatio {
		return halfedges[shortest], meshmodel.NullHalfedge
	}

	// angle at a is opposite h1, at b opposite h2, at c opposite h0.
	cosA := cosineAngle(b.Sub(a), c.Sub(a))
	cosB := cosineAngle(a.Sub(b), c.Sub(b))
	cosC := cosineAngle(a.Sub(c), b.Sub(c))

	cosines := [3]float64{cosA, cosB, cosC}
	opposite := [3]meshmodel.HalfedgeID{h1, h2, h0}

	worst := 0
	for i := 1; i < 3; i++ {
		if cosines[i] < cosines[worst] || (cosines[i] == cosines[worst] && opposite[i] < opposite[worst]) {
			worst = i
		}
	}
	if cosines[worst] < opts.CapAngleCosine {
		return meshmodel.NullHalfedge, opposite[worst]
	}
	return meshmodel.NullHalfedge, meshmodel.NullHalfedge
}

func cosineAngle(u, v vec3.Vec3) float64 {
	denom := u.Length() * v.Length()
	if denom < 1e-15 {
		return 1 // degenerate triangle: treat as flat, not a cap
	}
	return u.Dot(v) / denom
}
