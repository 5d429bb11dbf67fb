package orient

import "github.com/chazu/meshkernel/pkg/pointcloud"

// FindSeed implements spec.md section 4.4: pick the point with maximum
// z-coordinate (ties broken by first-encountered), then force its
// normal to have non-negative dot product with +z, flipping if
// necessary. Returns the seed's index.
func FindSeed(ps *pointcloud.PointSet) int {
	seed := 0
	maxZ := ps.Point(0).Z
	for i := 1; i < ps.Len(); i++ {
		if z := ps.Point(i).Z; z > maxZ {
			maxZ = z
			seed = i
		}
	}
	if n := ps.Normal(seed); n.Z < 0 {
		ps.SetNormal(seed, n.Negate())
	}
	return seed
}
