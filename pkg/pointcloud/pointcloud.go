// Package pointcloud is Core B's data model: an ordered sequence of
// points with position and read-writable unit normal (spec.md section
// 3), plus the property-map-style accessors spec.md section 6 lists as
// externally supplied collaborators. The named-parameter/property-map
// dispatch layer itself is out of scope (spec.md section 1), so these
// are concrete methods rather than a generic abstraction.
package pointcloud

import "github.com/chazu/meshkernel/pkg/vec3"

// Point is one record of the point set: a position, a normal of
// ambiguous sign, and the orientation-propagation bookkeeping fields
// pkg/orient needs (spec.md section 3's "MST ... each vertex carries an
// is_oriented flag").
type Point struct {
	Position vec3.Vec3
	Normal   vec3.Vec3

	// IsOriented is true once this point's normal has been propagated
	// from the MST root with sufficient confidence (spec.md section
	// 4.7). It starts false for every point except the seed.
	IsOriented bool
}

// PointSet is an externally supplied ordered sequence of Points (spec.md
// section 3). Index i is the dense integer index the Riemannian graph
// builder and MST use as vertex identity.
type PointSet struct {
	points []Point
}

// NewPointSet wraps positions and unit normals (one normal per
// position) into a PointSet.
func NewPointSet(positions, normals []vec3.Vec3) *PointSet {
	pts := make([]Point, len(positions))
	for i := range positions {
		pts[i] = Point{Position: positions[i], Normal: normals[i]}
	}
	return &PointSet{points: pts}
}

// Len is the property-map-style index accessor's domain size.
func (ps *PointSet) Len() int { return len(ps.points) }

// Point is the read-only point accessor (spec.md section 6).
func (ps *PointSet) Point(i int) vec3.Vec3 { return ps.points[i].Position }

// Normal is the read half of the read/write normal accessor.
func (ps *PointSet) Normal(i int) vec3.Vec3 { return ps.points[i].Normal }

// SetNormal is the write half of the read/write normal accessor.
func (ps *PointSet) SetNormal(i int, n vec3.Vec3) { ps.points[i].Normal = n }

// IsOriented reports whether point i has been confidently oriented.
func (ps *PointSet) IsOriented(i int) bool { return ps.points[i].IsOriented }

// SetOriented sets point i's orientation-confidence flag.
func (ps *PointSet) SetOriented(i int, oriented bool) { ps.points[i].IsOriented = oriented }

// Points returns the underlying records in current order. Callers must
// not retain the slice across a Partition call, which reorders it.
func (ps *PointSet) Points() []Point { return ps.points }

// SetPoints replaces the underlying records, e.g. after Partition
// reorders them.
func (ps *PointSet) SetPoints(pts []Point) { ps.points = pts }
