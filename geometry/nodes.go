package geometry

type nodeInfo struct {
	number int64
	id     int64
}

// Nodes is a collection of uniquely numbered points. Each distinct
// point is assigned an ordinal from 1 to N in insertion order, plus a
// caller-supplied id (typically the ordinal of the polygon the point
// came from). Re-adding a known point returns the existing ordinal and
// leaves the id untouched.
type Nodes struct {
	data    map[Point]nodeInfo
	ordered []Point
}

func NewNodes() *Nodes {
	return &Nodes{data: make(map[Point]nodeInfo)}
}

// Add inserts a point, returning its ordinal. The id is only stored
// the first time the point is seen.
func (n *Nodes) Add(pt Point, id int64) int64 {
	if info, ok := n.data[pt]; ok {
		return info.number
	}
	info := nodeInfo{number: int64(len(n.data)) + 1, id: id}
	n.data[pt] = info
	n.ordered = append(n.ordered, pt)
	return info.number
}

// Number returns the ordinal assigned to the given point, or 0 if the
// point has not been added.
func (n *Nodes) Number(pt Point) int64 {
	return n.data[pt].number
}

// ID returns the id assigned to the given point, or 0 if the point
// has not been added.
func (n *Nodes) ID(pt Point) int64 {
	return n.data[pt].id
}

// Point returns the point with the given ordinal, or the zero point
// if the ordinal is out of range.
func (n *Nodes) Point(ordinal int64) Point {
	if ordinal <= 0 || ordinal > int64(len(n.ordered)) {
		return Point{}
	}
	return n.ordered[ordinal-1]
}

// Len returns the number of distinct points added.
func (n *Nodes) Len() int {
	return len(n.ordered)
}
