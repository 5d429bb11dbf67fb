// Package meshmodel defines the half-edge mesh collaborator contract
// consumed by pkg/repair (spec.md section 6, "mesh abstraction") plus
// one concrete array-backed implementation, ArenaMesh. The split mirrors
// the teacher's pkg/kernel: an interface describing what a caller needs,
// and a committed implementation behind it.
package meshmodel

import "github.com/chazu/meshkernel/pkg/vec3"

// Mesh is the read-only half-edge navigation contract: enumerate faces,
// walk next/prev/opposite, resolve endpoints, test borders, and read
// vertex positions. Every method is assumed O(1) amortized (spec.md
// section 6).
type Mesh interface {
	// Faces returns the live (non-removed) face handles.
	Faces() []FaceID
	// FaceCount returns len(Faces()) without allocating.
	FaceCount() int

	// HalfedgeOf returns one halfedge incident to f.
	HalfedgeOf(f FaceID) HalfedgeID
	// Face returns the face incident to h, or NullFace if h is a border
	// halfedge.
	Face(h HalfedgeID) FaceID
	// IsBorder reports whether h has no incident face.
	IsBorder(h HalfedgeID) bool

	// Next returns the next halfedge around h's face (or border loop).
	Next(h HalfedgeID) HalfedgeID
	// Prev returns the previous halfedge around h's face (or border loop).
	Prev(h HalfedgeID) HalfedgeID
	// Opposite returns h's twin halfedge.
	Opposite(h HalfedgeID) HalfedgeID

	// Source returns h's source (tail) vertex.
	Source(h HalfedgeID) VertexID
	// Target returns h's target (head) vertex.
	Target(h HalfedgeID) VertexID

	// Point returns the 3D position of v.
	Point(v VertexID) vec3.Vec3

	// HalfedgeBetween returns the halfedge from u to v if one exists,
	// NullHalfedge otherwise (spec.md section 3).
	HalfedgeBetween(u, v VertexID) HalfedgeID

	// HalfedgesAroundFace returns the (up to three) halfedges of f, in
	// face-cycle order.
	HalfedgesAroundFace(f FaceID) []HalfedgeID
	// HalfedgesAroundVertex returns the halfedges incoming to v, in
	// rotational order.
	HalfedgesAroundVertex(v VertexID) []HalfedgeID

	// Edge returns the canonical edge identifier for h's underlying edge.
	Edge(h HalfedgeID) EdgeID
	// HalfedgeOfEdge returns a concrete halfedge for e.
	HalfedgeOfEdge(e EdgeID) HalfedgeID
}

// Operator is Mesh plus the three topology mutators spec.md section 4.2
// requires of the mesh abstraction, along with the link-condition query
// that gates edge collapse.
type Operator interface {
	Mesh

	// SatisfiesLinkCondition reports whether collapsing e preserves the
	// manifold property (spec.md section 4.2 / GLOSSARY).
	SatisfiesLinkCondition(e EdgeID) bool

	// CollapseEdge collapses e = (u,v), keeping v's position (never the
	// midpoint — see spec.md section 9, "midpoint policy"). Precondition:
	// SatisfiesLinkCondition(e) and e is not a border edge. Returns the
	// surviving vertex.
	CollapseEdge(e EdgeID) VertexID

	// FlipEdge replaces the interior edge e, separating faces (u,v,w) and
	// (v,u,x), with the edge (w,x). Precondition: (w,x) does not already
	// exist. Returns the new edge (numerically the same handle as e).
	FlipEdge(e EdgeID) EdgeID

	// RemoveFace deletes the face incident to h. h's own edge and its two
	// neighboring edges become border. Precondition: h's edge has at
	// least one border halfedge (i.e. h's opposite is already a border).
	RemoveFace(h HalfedgeID)
}
