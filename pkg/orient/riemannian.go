package orient

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/chazu/meshkernel/pkg/pointcloud"
)

// rtreeEps is the half-width rtreego needs for a "point" bounding box;
// rtreego rejects zero-volume rectangles.
const rtreeEps = 1e-9

// spatialPoint adapts a point-set index to rtreego.Spatial so the
// Riemannian graph builder can run k-nearest-neighbor queries through a
// real spatial index (spec.md section 6, "spatial index factory")
// instead of a brute-force scan.
type spatialPoint struct {
	index  int
	coords rtreego.Point
}

func (p *spatialPoint) Bounds() rtreego.Rect {
	r, err := rtreego.NewRect(p.coords, []float64{rtreeEps, rtreeEps, rtreeEps})
	if err != nil {
		panic(err) // lengths are a fixed positive constant; cannot fail
	}
	return r
}

// Edge is one weighted adjacency of the Riemannian graph.
type Edge struct {
	To     int
	Weight float64
}

// Graph is the undirected Riemannian graph of spec.md section 3: N
// vertices, one per point-set index, with edges as described there.
type Graph struct {
	Adjacency [][]Edge
}

func newGraph(n int) *Graph {
	return &Graph{Adjacency: make([][]Edge, n)}
}

func (g *Graph) addEdge(i, j int, w float64) {
	g.Adjacency[i] = append(g.Adjacency[i], Edge{To: j, Weight: w})
	g.Adjacency[j] = append(g.Adjacency[j], Edge{To: i, Weight: w})
}

// BuildRiemannianGraph implements spec.md section 4.5: a k-NN graph
// weighted by normal-alignment defect, built via a 3D spatial index.
// Each pair is keyed lower index first, so an edge is added once whether
// j is among i's neighbors, i among j's, or both: the result is the
// symmetric closure of the k-NN relation.
func BuildRiemannianGraph(ps *pointcloud.PointSet, k int) *Graph {
	n := ps.Len()
	tree := rtreego.NewTree(3, 2, 8)
	for i := 0; i < n; i++ {
		p := ps.Point(i)
		tree.Insert(&spatialPoint{index: i, coords: rtreego.Point{p.X, p.Y, p.Z}})
	}

	g := newGraph(n)
	added := make(map[[2]int]bool)
	for i := 0; i < n; i++ {
		p := ps.Point(i)
		neighbors := tree.NearestNeighbors(k+1, rtreego.Point{p.X, p.Y, p.Z})
		for _, obj := range neighbors {
			sp := obj.(*spatialPoint)
			j := sp.index
			if j == i {
				continue
			}
			key := [2]int{i, j}
			if j < i {
				key = [2]int{j, i}
			}
			if added[key] {
				continue
			}
			added[key] = true
			w := math.Max(0, 1-math.Abs(ps.Normal(i).Dot(ps.Normal(j))))
			g.addEdge(i, j, w)
		}
	}
	return g
}
