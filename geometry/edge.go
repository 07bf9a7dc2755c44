package geometry

// An Edge is an unordered pair of node indices. The pair is normalized
// at construction so that the direction of the edge is immaterial:
// NewEdge(a, b) == NewEdge(b, a).
type Edge struct {
	idx1 int64
	idx2 int64
}

func NewEdge(idx1, idx2 int64) Edge {
	if idx1 > idx2 {
		idx1, idx2 = idx2, idx1
	}
	return Edge{idx1: idx1, idx2: idx2}
}

// Index1 returns the smaller of the two indices.
func (e Edge) Index1() int64 { return e.idx1 }

// Index2 returns the larger of the two indices.
func (e Edge) Index2() int64 { return e.idx2 }

// Less orders edges lexicographically on the normalized pair.
func (e Edge) Less(other Edge) bool {
	if e.idx1 != other.idx1 {
		return e.idx1 < other.idx1
	}
	return e.idx2 < other.idx2
}

// Edges is a set of unique edges.
type Edges struct {
	data map[Edge]struct{}
}

func NewEdges() *Edges {
	return &Edges{data: make(map[Edge]struct{})}
}

// Add inserts an edge into the set, returning true if the edge was
// not present yet.
func (e *Edges) Add(edge Edge) bool {
	if _, ok := e.data[edge]; ok {
		return false
	}
	e.data[edge] = struct{}{}
	return true
}

// Contains tests whether the given edge is in the set.
func (e *Edges) Contains(edge Edge) bool {
	_, ok := e.data[edge]
	return ok
}

// Len returns the number of unique edges in the set.
func (e *Edges) Len() int {
	return len(e.data)
}
