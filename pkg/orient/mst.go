package orient

import (
	"math"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"

	"github.com/chazu/meshkernel/internal/diag"
)

type heapItem struct {
	vertex int
	weight float64
}

// BuildMST implements spec.md section 4.6: Prim's algorithm rooted at
// root, using gods' binaryheap as the priority structure (spec.md
// section 9's "working sets" guidance extends naturally to MST
// selection). Returns the predecessor array with pred[root] = root.
func BuildMST(g *Graph, root int, logger diag.Logger) []int {
	n := len(g.Adjacency)
	key := make([]float64, n)
	pred := make([]int, n)
	inTree := make([]bool, n)
	for i := range key {
		key[i] = math.Inf(1)
		pred[i] = -1
	}
	key[root] = 0
	pred[root] = root

	cmp := func(a, b interface{}) int {
		return utils.Float64Comparator(a.(heapItem).weight, b.(heapItem).weight)
	}
	h := binaryheap.NewWith(cmp)
	h.Push(heapItem{vertex: root, weight: 0})

	for !h.Empty() {
		raw, _ := h.Pop()
		cur := raw.(heapItem)
		if inTree[cur.vertex] {
			continue
		}
		inTree[cur.vertex] = true
		for _, e := range g.Adjacency[cur.vertex] {
			if !inTree[e.To] && e.Weight < key[e.To] {
				key[e.To] = e.Weight
				pred[e.To] = cur.vertex
				h.Push(heapItem{vertex: e.To, weight: e.Weight})
			}
		}
	}

	for i, p := range pred {
		if p >= 0 && p != i && pred[p] == i {
			logger.Debug("mst predecessor 2-cycle detected")
		}
	}
	return pred
}
