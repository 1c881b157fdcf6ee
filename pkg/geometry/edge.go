package geometry

// OrderedEdge is a directed pair of point indices
type OrderedEdge struct {
	From, To int
}

// Reversed returns the edge pointing the other way
func (e OrderedEdge) Reversed() OrderedEdge {
	return OrderedEdge{From: e.To, To: e.From}
}

// Unordered drops the direction of the edge
func (e OrderedEdge) Unordered() UnorderedEdge {
	return NewUnorderedEdge(e.From, e.To)
}

// Contains reports whether v is one of the endpoints
func (e OrderedEdge) Contains(v int) bool {
	return e.From == v || e.To == v
}

// UnorderedEdge is a pair of point indices where {a,b} equals {b,a}.
// The smaller index is always stored in A so that == and map keys ignore order.
type UnorderedEdge struct {
	A, B int
}

// NewUnorderedEdge normalizes the endpoint order
func NewUnorderedEdge(a, b int) UnorderedEdge {
	if a > b {
		a, b = b, a
	}
	return UnorderedEdge{A: a, B: b}
}

// IndexTriangle is an ordered triple of point indices. The winding defines the
// outward normal; two triangles are equal only when their vertex order matches.
type IndexTriangle [3]int

// Reversed flips the winding by swapping the first and last vertex
func (t IndexTriangle) Reversed() IndexTriangle {
	return IndexTriangle{t[2], t[1], t[0]}
}

// Edges returns the directed boundary edges starting with (t[2], t[0])
func (t IndexTriangle) Edges() [3]OrderedEdge {
	return [3]OrderedEdge{
		{From: t[2], To: t[0]},
		{From: t[0], To: t[1]},
		{From: t[1], To: t[2]},
	}
}

// Resolve builds the geometric triangle from a point cloud
func (t IndexTriangle) Resolve(cloud []Vector3) Triangle {
	return NewTriangle(cloud[t[0]], cloud[t[1]], cloud[t[2]])
}
