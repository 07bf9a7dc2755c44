package geometry

import "math"

// EarthRadius is the mean Earth radius in kilometers used for all
// geodetic calculations.
const EarthRadius = 6371.220

// A Point is a 2D coordinate, interpreted either as planar (x, y) or
// as geodetic (longitude, latitude) in degrees depending on context.
// Equality is exact, which makes Point usable as a map key for
// deduplication.
type Point struct {
	X float64
	Y float64
}

// Less orders points lexicographically, x first.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// Distance returns the Euclidean distance to the other point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// GeoDistance returns the great-circle distance in kilometers to the
// other point using the haversine formula. Both points are taken as
// (longitude, latitude) in degrees.
func (p Point) GeoDistance(other Point) float64 {
	const rad = math.Pi / 180

	x1 := rad * p.X
	y1 := rad * p.Y
	x2 := rad * other.X
	y2 := rad * other.Y

	sindx := math.Sin((x2 - x1) / 2)
	sindy := math.Sin((y2 - y1) / 2)
	a := sindy*sindy + math.Cos(y1)*math.Cos(y2)*sindx*sindx
	c := 2 * math.Asin(math.Min(1, math.Sqrt(a)))
	return EarthRadius * c
}
