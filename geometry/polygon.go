package geometry

import (
	"errors"
	"math"
	"math/rand"
)

// ErrNoInsidePoint is returned by SomeInsidePoint when the randomized
// search gives up. Callers cannot proceed without an interior point,
// so this is treated as fatal everywhere.
var ErrNoInsidePoint = errors.New("could not find a point inside polygon")

// A Polygon is an append-built sequence of points representing ring
// data. The ring is closed on demand: every query forces the last
// point to equal the first one.
type Polygon struct {
	points []Point
}

func (p *Polygon) Add(pt Point) {
	p.points = append(p.points, pt)
}

func (p *Polygon) Empty() bool {
	return len(p.points) == 0
}

func (p *Polygon) Len() int {
	return len(p.points)
}

func (p *Polygon) Clear() {
	p.points = p.points[:0]
}

// Points returns the underlying point sequence.
func (p *Polygon) Points() []Point {
	return p.points
}

// Close appends a copy of the first point as the last point unless
// the polygon is empty or already closed. Idempotent.
func (p *Polygon) Close() {
	if len(p.points) > 0 && p.points[0] != p.points[len(p.points)-1] {
		p.points = append(p.points, p.points[0])
	}
}

// Area returns the planar shoelace area of the closed polygon.
// Polygons with two or fewer points have zero area.
func (p *Polygon) Area() float64 {
	p.Close()
	if len(p.points) <= 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(p.points)-1; i++ {
		sum += p.points[i].X*p.points[i+1].Y - p.points[i+1].X*p.points[i].Y
	}
	return math.Abs(0.5 * sum)
}

// GeoArea returns the cartographic area of the polygon in square
// kilometers. The vertices are taken as (longitude, latitude) degree
// pairs and projected onto the Lambert cylindrical equal-area
// representation before applying the shoelace formula. Longitudes are
// kept continuous across the 180 degree meridian by tracking an offset
// that jumps by a full circle whenever consecutive points straddle the
// seam; a nonzero offset at the end means the ring wound around a
// pole, in which case a synthetic closing path through the nearest
// pole is added before closing the sum.
func (p *Polygon) GeoArea() float64 {
	p.Close()
	if len(p.points) <= 2 {
		return 0
	}

	const rad = math.Pi / 180
	const r90 = rad * 90
	const r360 = rad * 360

	sum := 0.0

	// Longitude offsets are multiples of 360 degrees in radians
	dx1 := 0.0
	dx2 := 0.0

	x1 := 0.0
	y1 := 0.0

	for i, pt := range p.points {
		x2 := rad * pt.X
		y2 := math.Sin(rad * pt.Y)

		if i > 0 {
			if x1 < -r90 && x2 > r90 {
				dx2 -= r360
			} else if x1 > r90 && x2 < -r90 {
				dx2 += r360
			}

			sum += (x1+dx1)*y2 - (x2+dx2)*y1
		}

		dx1 = dx2
		x1 = x2
		y1 = y2
	}

	// The ring went around a pole: close it with the path
	// xn,yn -> xn,pole -> x0,pole -> x0,y0
	if dx2 != 0 {
		x2 := x1
		pole := r90
		if y1 < 0 {
			pole = -r90
		}
		y2 := math.Sin(pole)
		sum += (x1+dx1)*y2 - (x2+dx2)*y1
		x1, y1, dx1 = x2, y2, dx2
		x2 = rad * p.points[0].X
		sum += (x1+dx1)*y2 - x2*y1
		x1, y1 = x2, y2
		y2 = math.Sin(rad * p.points[0].Y)
		sum += x1*y2 - x2*y1
	}

	return EarthRadius * EarthRadius * math.Abs(0.5*sum)
}

// IsInside tests whether the given point is inside the closed polygon
// using horizontal ray crossing parity. Points exactly on a horizontal
// edge are outside.
func (p *Polygon) IsInside(pt Point) bool {
	p.Close()
	if len(p.points) <= 2 {
		return false
	}

	x := pt.X
	y := pt.Y

	var x1, y1 float64
	inside := false

	for i, cur := range p.points {
		x2 := cur.X
		y2 := cur.Y
		if i > 0 {
			if y > math.Min(y1, y2) &&
				y <= math.Max(y1, y2) &&
				x <= math.Max(x1, x2) &&
				y1 != y2 &&
				(x1 == x2 || x < (y-y1)*(x2-x1)/(y2-y1)+x1) {
				inside = !inside
			}
		}
		x1 = x2
		y1 = y2
	}
	return inside
}

// SomeInsidePoint finds a point inside the polygon by sampling random
// points from the fan triangles formed by consecutive vertex triples.
// Long thin triangles are skipped based on the dimensionless shape
// index L/sqrt(A), whose limit starts at 10 and is relaxed by 1% per
// examined triangle so that a degenerate polygon can still succeed
// eventually. The sample coefficients are confined to [0.2, 0.8] to
// stay clear of the numerically unstable triangle boundary. After
// 10000 examined triangles the search gives up with ErrNoInsidePoint.
// A polygon with fewer than 3 points yields the origin.
func (p *Polygon) SomeInsidePoint() (Point, error) {
	p.Close()
	if len(p.points) < 3 {
		return Point{}, nil
	}

	const maxIterations = 10000
	iterations := 0
	shapeLimit := 10.0

	for {
		for i := 0; i+2 < len(p.points); i++ {
			iterations++
			if iterations > maxIterations {
				return Point{}, ErrNoInsidePoint
			}

			x1, y1 := p.points[i].X, p.points[i].Y
			x2, y2 := p.points[i+1].X, p.points[i+1].Y
			x3, y3 := p.points[i+2].X, p.points[i+2].Y

			a := math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
			b := math.Sqrt((x2-x3)*(x2-x3) + (y2-y3)*(y2-y3))
			c := math.Sqrt((x1-x3)*(x1-x3) + (y1-y3)*(y1-y3))
			perimeter := a + b + c
			s := 0.5 * perimeter
			area := math.Sqrt(s * (s - a) * (s - b) * (s - c))
			shape := perimeter / math.Sqrt(area)

			shapeLimit *= 1.01
			if shape > shapeLimit {
				continue
			}

			a1 := 0.2 + 0.6*rand.Float64()
			a2 := 0.2 + 0.6*rand.Float64()

			pt := Point{
				X: x1 + a1*(x2-x1) + (1-a1)*a2*(x3-x1),
				Y: y1 + a1*(y2-y1) + (1-a1)*a2*(y3-y1),
			}

			if p.IsInside(pt) {
				return pt, nil
			}
		}
	}
}
