// Package edgetree reconstructs boundary paths from an unordered soup
// of straight segments. Adding the same segment twice cancels it, so
// feeding in the sides of a set of triangles leaves exactly the outer
// boundary of their union, which Path then chains into closed rings.
package edgetree

import (
	"sort"

	"github.com/fmidev/smartmet-shapetools/geometry"
)

type segment struct {
	a geometry.Point
	b geometry.Point
}

func newSegment(p1, p2 geometry.Point) segment {
	if p2.Less(p1) {
		p1, p2 = p2, p1
	}
	return segment{a: p1, b: p2}
}

// A Tree is a set of unique undirected segments with exact-duplicate
// cancellation.
type Tree struct {
	segments map[segment]struct{}
}

func New() *Tree {
	return &Tree{segments: make(map[segment]struct{})}
}

// Add inserts the segment between the two points. If the segment is
// already present it is removed instead: a segment shared by two
// adjacent triangles is interior to their union and must not appear in
// the boundary. Zero-length segments are ignored.
func (t *Tree) Add(p1, p2 geometry.Point) {
	if p1 == p2 {
		return
	}
	s := newSegment(p1, p2)
	if _, ok := t.segments[s]; ok {
		delete(t.segments, s)
	} else {
		t.segments[s] = struct{}{}
	}
}

// Len returns the number of surviving segments.
func (t *Tree) Len() int {
	return len(t.segments)
}

// Path chains the surviving segments into a flat path. Each connected
// chain begins with a MoveTo; a chain that returns to its starting
// point ends there, forming a closed ring. The walk always starts at
// the smallest unvisited point and prefers the smallest reachable
// neighbour, so the output is deterministic.
func (t *Tree) Path() geometry.Path {
	remaining := make(map[segment]struct{}, len(t.segments))
	adjacent := make(map[geometry.Point][]geometry.Point)
	for s := range t.segments {
		remaining[s] = struct{}{}
		adjacent[s.a] = append(adjacent[s.a], s.b)
		adjacent[s.b] = append(adjacent[s.b], s.a)
	}

	points := make([]geometry.Point, 0, len(adjacent))
	for pt := range adjacent {
		points = append(points, pt)
		neighbours := adjacent[pt]
		sort.Slice(neighbours, func(i, j int) bool {
			return neighbours[i].Less(neighbours[j])
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})

	next := func(from geometry.Point) (geometry.Point, bool) {
		for _, to := range adjacent[from] {
			if _, ok := remaining[newSegment(from, to)]; ok {
				return to, true
			}
		}
		return geometry.Point{}, false
	}

	var path geometry.Path
	for _, start := range points {
		for {
			to, ok := next(start)
			if !ok {
				break
			}
			path = append(path, geometry.PathElement{Op: geometry.MoveTo, Point: start})
			cur := start
			for ok {
				delete(remaining, newSegment(cur, to))
				path = append(path, geometry.PathElement{Op: geometry.LineTo, Point: to})
				cur = to
				to, ok = next(cur)
			}
		}
	}
	return path
}
