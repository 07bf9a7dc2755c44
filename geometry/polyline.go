package geometry

import (
	"strconv"
	"strings"
)

// A Polyline is a sequence of points forming an open path or, when the
// first and last points are equal, a closed ring. The distinction is
// inferred where it matters.
type Polyline struct {
	points []Point
}

func (p *Polyline) Add(pt Point) {
	p.points = append(p.points, pt)
}

func (p *Polyline) Empty() bool {
	return len(p.points) == 0
}

func (p *Polyline) Len() int {
	return len(p.points)
}

func (p *Polyline) Clear() {
	p.points = p.points[:0]
}

// Points returns the underlying point sequence.
func (p *Polyline) Points() []Point {
	return p.points
}

const centralQuadrant = 4

// quadrant classifies a point against the margin-expanded rectangle
// into one of 9 zones on a 3x3 grid, centralQuadrant meaning inside.
func quadrant(x, y, x1, y1, x2, y2, margin float64) int {
	value := centralQuadrant
	if x < x1-margin {
		value--
	} else if x > x2+margin {
		value++
	}
	if y < y1-margin {
		value -= 3
	} else if y > y2+margin {
		value += 3
	}
	return value
}

func rectsIntersect(x1, y1, x2, y2, bx1, by1, bx2, by2 float64) bool {
	xoutside := x1 > bx2 || x2 < bx1
	youtside := y1 > by2 || y2 < by1
	return !xoutside && !youtside
}

// Clip reduces the polyline in place to the points needed to represent
// its intersection with the given rectangle, expanded by margin on all
// sides. Only original points are ever kept, no intersections are
// calculated: a point survives if it is the first point, lies inside
// the rectangle, or sits in a different quadrant than its predecessor.
// If at most one point survives, or the survivors' bounding box does
// not touch the rectangle, the polyline becomes empty.
func (p *Polyline) Clip(x1, y1, x2, y2, margin float64) {
	if len(p.points) == 0 {
		return
	}

	var newpts []Point

	lastQuadrant := 0

	minx := p.points[0].X
	miny := p.points[0].Y
	maxx := p.points[0].X
	maxy := p.points[0].Y

	for i, pt := range p.points {
		pushed := true
		if i == 0 {
			newpts = append(newpts, pt)
		} else {
			thisQuadrant := quadrant(pt.X, pt.Y, x1, y1, x2, y2, margin)
			if thisQuadrant == centralQuadrant || thisQuadrant != lastQuadrant {
				newpts = append(newpts, pt)
			} else {
				pushed = false
			}
			lastQuadrant = thisQuadrant
		}

		if pushed {
			minx = min(minx, pt.X)
			miny = min(miny, pt.Y)
			maxx = max(maxx, pt.X)
			maxy = max(maxy, pt.Y)
		}
	}

	if len(newpts) <= 1 ||
		!rectsIntersect(minx, miny, maxx, maxy, x1-margin, y1-margin, x2+margin, y2+margin) {
		p.points = nil
	} else {
		p.points = newpts
	}
}

// Path returns a movement-command representation of the polyline, one
// "x y op" line per point. The final point of a closed polyline is
// rendered as the bare closepath token when one is given.
func (p *Polyline) Path(moveto, lineto, closepath string) string {
	if len(p.points) == 0 {
		return ""
	}

	var out strings.Builder
	n := len(p.points) - 1
	closed := len(p.points) > 1 && p.points[0] == p.points[n]

	for i, pt := range p.points {
		if closed && i == n && closepath != "" {
			out.WriteString(closepath)
		} else {
			out.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
			out.WriteByte(' ')
			out.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
			out.WriteByte(' ')
			if i == 0 {
				out.WriteString(moveto)
			} else {
				out.WriteString(lineto)
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}
