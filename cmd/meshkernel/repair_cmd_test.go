package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/meshkernel/pkg/meshmodel"
	"github.com/chazu/meshkernel/pkg/repair"
)

// TestFixtureMeshBuildsValidArenaMesh checks the hand-authored demo
// fixture is structurally sound and actually carries the needle/cap
// slivers the repair command's help text advertises.
func TestFixtureMeshBuildsValidArenaMesh(t *testing.T) {
	verts, tris := fixtureMesh()
	require.Len(t, tris, 4)

	mesh := meshmodel.NewArenaMesh(verts, tris)
	assert.Equal(t, len(tris), mesh.FaceCount())

	for _, f := range mesh.Faces() {
		hs := mesh.HalfedgesAroundFace(f)
		require.Len(t, hs, 3)
		seen := map[meshmodel.HalfedgeID]bool{}
		for _, h := range hs {
			assert.Equal(t, f, mesh.Face(h), "every halfedge around f must report f as its face")
			assert.False(t, seen[h], "face's three halfedges must be distinct")
			seen[h] = true
			assert.Equal(t, h, mesh.Opposite(mesh.Opposite(h)), "opposite must be its own inverse")
		}
	}

	var foundNeedle, foundCap bool
	opts := repair.NewOptions()
	for _, f := range mesh.Faces() {
		needle, cap := repair.Classify(mesh, f, opts)
		foundNeedle = foundNeedle || needle.Valid()
		foundCap = foundCap || cap.Valid()
	}
	assert.True(t, foundNeedle, "fixture should contain at least one needle")
	assert.True(t, foundCap, "fixture should contain at least one cap")
}
