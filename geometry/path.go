package geometry

// PathOp is a path movement operation.
type PathOp int

const (
	MoveTo PathOp = iota
	LineTo
)

// A PathElement is one step of a flat rendering path.
type PathElement struct {
	Op    PathOp
	Point Point
}

// A Path is a flat sequence of movement commands, the interchange form
// between shapefile ring data, the edge tree and the pipeline.
type Path []PathElement
