package meshmodel

// VertexID, HalfedgeID, FaceID and EdgeID are opaque handles into an
// index-arena mesh (spec.md section 9, "half-edge graph as index arena").
// They stay valid for the lifetime of the mesh even as other elements
// are tombstoned by topology operators.
type VertexID int32

// HalfedgeID identifies one directed half of an edge.
type HalfedgeID int32

// FaceID identifies a triangular face.
type FaceID int32

// EdgeID identifies an undirected edge. It is numerically identical to
// the lower-numbered of the edge's two halfedge IDs; HalfedgeOfEdge
// recovers a concrete halfedge to operate on.
type EdgeID int32

// Sentinels. A null halfedge/face marks "no such element" the way
// spec.md section 3 requires ("a null-halfedge sentinel exists").
const (
	NullVertex   VertexID   = -1
	NullHalfedge HalfedgeID = -1
	NullFace     FaceID     = -1
	NullEdge     EdgeID     = -1
)

// Valid reports whether v is not the null sentinel.
func (v VertexID) Valid() bool { return v != NullVertex }

// Valid reports whether h is not the null sentinel.
func (h HalfedgeID) Valid() bool { return h != NullHalfedge }

// Valid reports whether f is not the null sentinel.
func (f FaceID) Valid() bool { return f != NullFace }

// Valid reports whether e is not the null sentinel.
func (e EdgeID) Valid() bool { return e != NullEdge }
