package meshmodel

import (
	"testing"

	"github.com/chazu/meshkernel/pkg/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadMesh() *ArenaMesh {
	// p0,p1,p2,p3 around a unit square, triangulated along the p0-p2
	// diagonal: (p0,p1,p2) and (p0,p2,p3).
	verts := []vec3.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	tris := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
	}
	return NewArenaMesh(verts, tris)
}

func TestNewArenaMeshBorders(t *testing.T) {
	m := quadMesh()

	diag := m.HalfedgeBetween(0, 2)
	require.True(t, diag.Valid(), "diagonal halfedge should exist")
	assert.False(t, m.IsBorder(diag), "diagonal is interior")
	assert.False(t, m.IsBorder(m.Opposite(diag)), "diagonal's twin is interior")

	for _, pair := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		h := m.HalfedgeBetween(VertexID(pair[0]), VertexID(pair[1]))
		require.True(t, h.Valid())
		assert.True(t, m.IsBorder(h) != m.IsBorder(m.Opposite(h)),
			"perimeter edge %v should be a border on exactly one side", pair)
	}
	assert.Equal(t, 2, m.FaceCount())
}

func TestFlipEdge(t *testing.T) {
	m := quadMesh()
	diag := m.Edge(m.HalfedgeBetween(0, 2))

	m.FlipEdge(diag)

	assert.False(t, m.HalfedgeBetween(0, 2).Valid(), "old diagonal is gone")
	assert.True(t, m.HalfedgeBetween(1, 3).Valid(), "new diagonal connects the apexes")
	assert.Equal(t, 2, m.FaceCount(), "flip preserves face count")
}

// hexFan builds a closed disk: a hub vertex c connected to a ring of six
// vertices v0..v5, six triangles (c,vi,vi+1), border on the outer ring.
func hexFan() (*ArenaMesh, VertexID, VertexID) {
	verts := make([]vec3.Vec3, 0, 7)
	verts = append(verts, vec3.Vec3{}) // hub, index 0
	for i := 0; i < 6; i++ {
		verts = append(verts, vec3.Vec3{X: float64(i), Y: 1, Z: 0})
	}
	tris := make([][3]int, 0, 6)
	for i := 0; i < 6; i++ {
		tris = append(tris, [3]int{0, 1 + i, 1 + (i+1)%6})
	}
	return NewArenaMesh(verts, tris), 0, 1
}

func TestSatisfiesLinkConditionOnFanSpoke(t *testing.T) {
	m, hub, v0 := hexFan()
	h := m.HalfedgeBetween(hub, v0)
	require.True(t, h.Valid())
	assert.True(t, m.SatisfiesLinkCondition(m.Edge(h)))
}

func TestCollapseEdgeRetargetsFan(t *testing.T) {
	m, hub, v0 := hexFan()
	h := m.HalfedgeBetween(hub, v0)
	e := m.Edge(h)
	require.True(t, m.SatisfiesLinkCondition(e))

	survivor := m.CollapseEdge(e)
	assert.Equal(t, v0, survivor)
	assert.Equal(t, 4, m.FaceCount(), "collapsing a spoke removes its two incident faces")

	for _, f := range m.Faces() {
		for _, h := range m.HalfedgesAroundFace(f) {
			assert.NotEqual(t, hub, m.Target(h), "no remaining face should reference the removed hub")
		}
	}
}

func TestRemoveFaceOnLoneTriangle(t *testing.T) {
	verts := []vec3.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0.0001},
	}
	m := NewArenaMesh(verts, [][3]int{{0, 1, 2}})
	h := m.HalfedgeOf(0)
	require.True(t, m.IsBorder(m.Opposite(h)))

	m.RemoveFace(h)

	assert.Equal(t, 0, m.FaceCount())
	assert.True(t, m.IsBorder(h))
	assert.True(t, m.IsBorder(m.Next(h)))
	assert.True(t, m.IsBorder(m.Prev(h)))
}
