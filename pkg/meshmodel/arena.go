package meshmodel

import "github.com/chazu/meshkernel/pkg/vec3"

var _ Operator = (*ArenaMesh)(nil)

type vertexRec struct {
	point    vec3.Vec3
	halfedge HalfedgeID // one incoming halfedge
	removed  bool
}

type halfedgeRec struct {
	next, prev, opposite HalfedgeID
	vertex               VertexID // target (head) vertex
	face                 FaceID
	removed              bool
}

type faceRec struct {
	halfedge HalfedgeID
	removed  bool
}

// ArenaMesh is the one committed Operator implementation: parallel
// arrays of vertex, halfedge and face records keyed by integer handles,
// per spec.md section 9's design note. Removed elements are tombstoned
// in place, never compacted, so handles obtained before a mutation stay
// meaningful afterward except for the elements the mutation explicitly
// destroys.
type ArenaMesh struct {
	vertices  []vertexRec
	halfedges []halfedgeRec
	faces     []faceRec
}

// NewArenaMesh builds a mesh from a flat vertex/triangle-index list, the
// same shape as the teacher's kernel.Mesh: verts has 3 floats per vertex,
// tris has 3 indices per triangle. The input must describe a connected,
// oriented, manifold triangle complex (spec.md section 3); unmatched
// triangle edges become border halfedges.
func NewArenaMesh(verts []vec3.Vec3, tris [][3]int) *ArenaMesh {
	m := &ArenaMesh{
		vertices: make([]vertexRec, len(verts)),
	}
	for i, p := range verts {
		m.vertices[i] = vertexRec{point: p, halfedge: NullHalfedge}
	}

	type key struct{ u, v VertexID }
	byEndpoints := make(map[key]HalfedgeID, len(tris)*3)

	for _, tri := range tris {
		u, v, w := VertexID(tri[0]), VertexID(tri[1]), VertexID(tri[2])
		f := FaceID(len(m.faces))
		m.faces = append(m.faces, faceRec{})

		h0 := m.newHalfedge(v, NullFace) // u->v, target v
		h1 := m.newHalfedge(w, NullFace) // v->w, target w
		h2 := m.newHalfedge(u, NullFace) // w->u, target u
		m.halfedges[h0].next, m.halfedges[h0].prev = h1, h2
		m.halfedges[h1].next, m.halfedges[h1].prev = h2, h0
		m.halfedges[h2].next, m.halfedges[h2].prev = h0, h1
		m.halfedges[h0].face = f
		m.halfedges[h1].face = f
		m.halfedges[h2].face = f
		m.faces[f].halfedge = h0

		byEndpoints[key{u, v}] = h0
		byEndpoints[key{v, w}] = h1
		byEndpoints[key{w, u}] = h2

		m.vertices[u].halfedge = h2
		m.vertices[v].halfedge = h0
		m.vertices[w].halfedge = h1
	}

	// Pair interior halfedges with their twin; any halfedge whose
	// reverse edge was never created is a border edge and gets a
	// synthetic border twin.
	paired := make(map[HalfedgeID]bool, len(m.halfedges))
	for k, h := range byEndpoints {
		if paired[h] {
			continue
		}
		rev, ok := byEndpoints[key{k.v, k.u}]
		if ok {
			m.halfedges[h].opposite = rev
			m.halfedges[rev].opposite = h
			paired[h] = true
			paired[rev] = true
			continue
		}
		b := m.newHalfedge(k.u, NullFace) // twin of h: k.v->k.u, target k.u
		m.halfedges[h].opposite = b
		m.halfedges[b].opposite = h
		paired[h] = true
	}

	m.linkBorderLoops()
	return m
}

func (m *ArenaMesh) newHalfedge(target VertexID, face FaceID) HalfedgeID {
	id := HalfedgeID(len(m.halfedges))
	m.halfedges = append(m.halfedges, halfedgeRec{
		vertex:   target,
		face:     face,
		next:     NullHalfedge,
		prev:     NullHalfedge,
		opposite: NullHalfedge,
	})
	return id
}

// linkBorderLoops sets next/prev among the synthetic border halfedges
// created by NewArenaMesh, by rotating outgoing halfedges around each
// border vertex until the next border halfedge is found.
func (m *ArenaMesh) linkBorderLoops() {
	for b := range m.halfedges {
		if m.halfedges[b].face != NullFace || m.halfedges[b].next != NullHalfedge {
			continue
		}
		cur := m.halfedges[b].opposite
		for m.halfedges[cur].face != NullFace {
			cur = m.Opposite(m.Prev(cur))
		}
		m.halfedges[b].next = cur
		m.halfedges[cur].prev = HalfedgeID(b)
	}
}

// --- Mesh ---

func (m *ArenaMesh) Faces() []FaceID {
	out := make([]FaceID, 0, len(m.faces))
	for i, f := range m.faces {
		if !f.removed {
			out = append(out, FaceID(i))
		}
	}
	return out
}

func (m *ArenaMesh) FaceCount() int {
	n := 0
	for _, f := range m.faces {
		if !f.removed {
			n++
		}
	}
	return n
}

func (m *ArenaMesh) HalfedgeOf(f FaceID) HalfedgeID { return m.faces[f].halfedge }
func (m *ArenaMesh) Face(h HalfedgeID) FaceID       { return m.halfedges[h].face }
func (m *ArenaMesh) IsBorder(h HalfedgeID) bool      { return m.halfedges[h].face == NullFace }

func (m *ArenaMesh) Next(h HalfedgeID) HalfedgeID     { return m.halfedges[h].next }
func (m *ArenaMesh) Prev(h HalfedgeID) HalfedgeID     { return m.halfedges[h].prev }
func (m *ArenaMesh) Opposite(h HalfedgeID) HalfedgeID { return m.halfedges[h].opposite }

func (m *ArenaMesh) Target(h HalfedgeID) VertexID { return m.halfedges[h].vertex }
func (m *ArenaMesh) Source(h HalfedgeID) VertexID { return m.Target(m.Opposite(h)) }

func (m *ArenaMesh) Point(v VertexID) vec3.Vec3 { return m.vertices[v].point }

func (m *ArenaMesh) HalfedgeBetween(u, v VertexID) HalfedgeID {
	start := m.vertices[v].halfedge
	if start == NullHalfedge {
		return NullHalfedge
	}
	cur := start
	for {
		if m.Source(cur) == u {
			return cur
		}
		cur = m.Opposite(m.Next(cur))
		if cur == start {
			return NullHalfedge
		}
	}
}

func (m *ArenaMesh) HalfedgesAroundFace(f FaceID) []HalfedgeID {
	h0 := m.faces[f].halfedge
	out := []HalfedgeID{h0, m.Next(h0), m.Prev(h0)}
	return out
}

func (m *ArenaMesh) HalfedgesAroundVertex(v VertexID) []HalfedgeID {
	start := m.vertices[v].halfedge
	if start == NullHalfedge {
		return nil
	}
	out := []HalfedgeID{start}
	for cur := m.Opposite(m.Next(start)); cur != start; cur = m.Opposite(m.Next(cur)) {
		out = append(out, cur)
	}
	return out
}

func (m *ArenaMesh) Edge(h HalfedgeID) EdgeID {
	o := m.Opposite(h)
	if o < h {
		return EdgeID(o)
	}
	return EdgeID(h)
}

func (m *ArenaMesh) HalfedgeOfEdge(e EdgeID) HalfedgeID { return HalfedgeID(e) }

// --- Operator ---

// SatisfiesLinkCondition implements the standard definition from spec.md
// section 4.2 / GLOSSARY: the intersection of the vertex-links of e's
// two endpoints must equal e's edge-link (the apex vertex of each
// incident face, one or two of them).
func (m *ArenaMesh) SatisfiesLinkCondition(e EdgeID) bool {
	h := m.HalfedgeOfEdge(e)
	u, v := m.Source(h), m.Target(h)

	allowed := map[VertexID]bool{}
	if f1 := m.Face(h); f1.Valid() {
		allowed[m.Target(m.Next(h))] = true
	}
	h2 := m.Opposite(h)
	if f2 := m.Face(h2); f2.Valid() {
		allowed[m.Target(m.Next(h2))] = true
	}

	neighborsV := map[VertexID]bool{}
	for _, nh := range m.HalfedgesAroundVertex(v) {
		n := m.Source(nh)
		if n != u {
			neighborsV[n] = true
		}
	}

	common := map[VertexID]bool{}
	for _, nh := range m.HalfedgesAroundVertex(u) {
		n := m.Source(nh)
		if n != v && neighborsV[n] {
			common[n] = true
		}
	}

	if len(common) != len(allowed) {
		return false
	}
	for n := range common {
		if !allowed[n] {
			return false
		}
	}
	return true
}

// CollapseEdge merges u into v (v's position survives), removing the
// edge's two incident faces. Precondition: SatisfiesLinkCondition(e) and
// e is interior (not a border edge) — see Operator.CollapseEdge.
func (m *ArenaMesh) CollapseEdge(e EdgeID) VertexID {
	h := m.HalfedgeOfEdge(e)
	h2 := m.Opposite(h)
	u, v := m.Source(h), m.Target(h)

	hn, hp := m.Next(h), m.Prev(h)
	h2n, h2p := m.Next(h2), m.Prev(h2)

	a := m.Opposite(hp)
	b := m.Opposite(hn)
	c := m.Opposite(h2p)
	d := m.Opposite(h2n)

	for cur := d; cur != hp; cur = m.Opposite(m.Next(cur)) {
		m.halfedges[cur].vertex = v
	}

	m.setOpposite(a, b)
	m.setOpposite(c, d)

	w, x := m.Target(a), m.Target(c)
	m.vertices[v].halfedge = b
	m.vertices[w].halfedge = a
	m.vertices[x].halfedge = c

	f1, f2 := m.Face(h), m.Face(h2)
	for _, hh := range [...]HalfedgeID{h, hn, hp, h2, h2n, h2p} {
		m.halfedges[hh].removed = true
	}
	m.faces[f1].removed = true
	m.faces[f2].removed = true
	m.vertices[u].removed = true

	return v
}

func (m *ArenaMesh) setOpposite(x, y HalfedgeID) {
	m.halfedges[x].opposite = y
	m.halfedges[y].opposite = x
}

// FlipEdge replaces the diagonal of the quad formed by e's two incident
// faces, reusing e's and its opposite's halfedge IDs as the new diagonal
// (w,x) — see Operator.FlipEdge.
func (m *ArenaMesh) FlipEdge(e EdgeID) EdgeID {
	h := m.HalfedgeOfEdge(e)
	h2 := m.Opposite(h)
	u, v := m.Source(h), m.Target(h)

	hn, hp := m.Next(h), m.Prev(h)
	h2n, h2p := m.Next(h2), m.Prev(h2)
	f1, f2 := m.Face(h), m.Face(h2)

	w := m.Target(hn)
	x := m.Target(h2n)

	// New face A = (w,u,x): hp -> h2n -> h (x->w)
	m.halfedges[h].vertex = w
	m.halfedges[h].next = hp
	m.halfedges[h].prev = h2n
	m.halfedges[h].face = f1

	m.halfedges[hp].next = h2n
	m.halfedges[hp].prev = h
	m.halfedges[hp].face = f1

	m.halfedges[h2n].next = h
	m.halfedges[h2n].prev = hp
	m.halfedges[h2n].face = f1

	// New face B = (x,v,w): h2p -> hn -> h2 (w->x)
	m.halfedges[h2].vertex = x
	m.halfedges[h2].next = h2p
	m.halfedges[h2].prev = hn
	m.halfedges[h2].face = f2

	m.halfedges[h2p].next = hn
	m.halfedges[h2p].prev = h2
	m.halfedges[h2p].face = f2

	m.halfedges[hn].next = h2
	m.halfedges[hn].prev = h2p
	m.halfedges[hn].face = f2

	m.faces[f1].halfedge = hp
	m.faces[f2].halfedge = h2p

	m.vertices[u].halfedge = hp
	m.vertices[v].halfedge = h2p

	return EdgeID(h)
}

// RemoveFace deletes the face incident to h, leaving h, Next(h) and
// Prev(h) as border halfedges — see Operator.RemoveFace. It does not
// re-splice the wider border loop: callers that remove a face with a
// mix of border and interior edges are responsible for the fact that
// the newly-bordered halfedges keep the old face's cyclic next/prev
// rather than the surrounding loop's. pkg/repair only calls this on an
// unflippable border cap, where the removed face's own edges are the
// only ones that matter to the driver afterward.
func (m *ArenaMesh) RemoveFace(h HalfedgeID) {
	f := m.Face(h)
	hn, hp := m.Next(h), m.Prev(h)
	m.halfedges[h].face = NullFace
	m.halfedges[hn].face = NullFace
	m.halfedges[hp].face = NullFace
	m.faces[f].removed = true
}
