package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/meshkernel/pkg/meshmodel"
	"github.com/chazu/meshkernel/pkg/vec3"
)

func singleTriangle(a, b, c vec3.Vec3) *meshmodel.ArenaMesh {
	return meshmodel.NewArenaMesh([]vec3.Vec3{a, b, c}, [][3]int{{0, 1, 2}})
}

func TestClassifyNeedle(t *testing.T) {
	m := singleTriangle(
		vec3.Vec3{X: 0, Y: 0, Z: 0},
		vec3.Vec3{X: 1, Y: 0, Z: 0},
		vec3.Vec3{X: 0.05, Y: 0.01, Z: 0},
	)
	needle, cap := Classify(m, 0, NewOptions())
	assert.True(t, needle.Valid())
	assert.False(t, cap.Valid())
	assert.Equal(t, meshmodel.VertexID(2), m.Source(needle))
	assert.Equal(t, meshmodel.VertexID(0), m.Target(needle))
}

func TestClassifyCap(t *testing.T) {
	m := singleTriangle(
		vec3.Vec3{X: 0, Y: 0, Z: 0},
		vec3.Vec3{X: 1, Y: 0, Z: 0},
		vec3.Vec3{X: 2, Y: 0.02, Z: 0},
	)
	needle, cap := Classify(m, 0, NewOptions())
	assert.False(t, needle.Valid())
	require.True(t, cap.Valid())
	// the offending halfedge is opposite the ~180 degree vertex (p1),
	// i.e. the edge p2-p0.
	assert.Equal(t, meshmodel.VertexID(2), m.Source(cap))
	assert.Equal(t, meshmodel.VertexID(0), m.Target(cap))
}

// TestClassifyZeroLengthEdgeIsNeedle mirrors spec.md section 7: a
// degenerate zero-length edge is the ideal collapse target, not an
// excluded special case.
func TestClassifyZeroLengthEdgeIsNeedle(t *testing.T) {
	m := singleTriangle(
		vec3.Vec3{X: 0, Y: 0, Z: 0},
		vec3.Vec3{X: 0, Y: 0, Z: 0},
		vec3.Vec3{X: 1, Y: 0, Z: 0},
	)
	needle, cap := Classify(m, 0, NewOptions())
	require.True(t, needle.Valid())
	assert.False(t, cap.Valid())
	assert.Equal(t, 0.0, edgeLength(m, m.Edge(needle)))
}

func TestClassifyWellShaped(t *testing.T) {
	m := singleTriangle(
		vec3.Vec3{X: 0, Y: 0, Z: 0},
		vec3.Vec3{X: 1, Y: 0, Z: 0},
		vec3.Vec3{X: 0.5, Y: 0.87, Z: 0},
	)
	needle, cap := Classify(m, 0, NewOptions())
	assert.False(t, needle.Valid())
	assert.False(t, cap.Valid())
}
