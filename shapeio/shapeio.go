// Package shapeio adapts ESRI shapefile geometry to the flat movement
// path model used by the pipeline.
package shapeio

import (
	"fmt"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"github.com/fmidev/smartmet-shapetools/geometry"
)

func shapeFileName(name string) string {
	if strings.HasSuffix(name, ".shp") {
		return name
	}
	return name + ".shp"
}

func appendParts(path geometry.Path, parts []int32, points []shp.Point) geometry.Path {
	for i, first := range parts {
		last := len(points)
		if i < len(parts)-1 {
			last = int(parts[i+1])
		}

		for j, pt := range points[first:last] {
			op := geometry.LineTo
			if j == 0 {
				op = geometry.MoveTo
			}
			path = append(path, geometry.PathElement{
				Op:    op,
				Point: geometry.Point{X: pt.X, Y: pt.Y},
			})
		}
	}
	return path
}

// ReadPath reads every polygon or polyline element of the named
// shapefile into one flat path, each part starting with a MoveTo.
func ReadPath(name string) (geometry.Path, error) {
	filename := shapeFileName(name)
	reader, err := shp.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Could not open %s for reading: %s", filename, err)
	}
	defer reader.Close()

	var path geometry.Path
	for reader.Next() {
		_, shape := reader.Shape()
		switch s := shape.(type) {
		case *shp.Polygon:
			path = appendParts(path, s.Parts, s.Points)
		case *shp.PolyLine:
			path = appendParts(path, s.Parts, s.Points)
		default:
			return nil, fmt.Errorf("Unsupported shape type %T in %s", shape, filename)
		}
	}
	return path, nil
}

func shpPoints(points []geometry.Point) []shp.Point {
	out := make([]shp.Point, len(points))
	for i, pt := range points {
		out[i] = shp.Point{X: pt.X, Y: pt.Y}
	}
	return out
}

// WritePolygons writes each polygon as a single-ring polygon element
// of a new shapefile with an empty attribute table.
func WritePolygons(name string, polygons []*geometry.Polygon) error {
	filename := shapeFileName(name)
	writer, err := shp.Create(filename, shp.POLYGON)
	if err != nil {
		return fmt.Errorf("Could not open %s for writing: %s", filename, err)
	}
	writer.SetFields([]shp.Field{})

	for _, poly := range polygons {
		line := shp.NewPolyLine([][]shp.Point{shpPoints(poly.Points())})
		writer.Write((*shp.Polygon)(line))
	}

	writer.Close()
	return nil
}

// WritePolylines writes each polyline as a single-part polyline
// element of a new shapefile with an empty attribute table.
func WritePolylines(name string, lines []*geometry.Polyline) error {
	filename := shapeFileName(name)
	writer, err := shp.Create(filename, shp.POLYLINE)
	if err != nil {
		return fmt.Errorf("Could not open %s for writing: %s", filename, err)
	}
	writer.SetFields([]shp.Field{})

	for _, line := range lines {
		writer.Write(shp.NewPolyLine([][]shp.Point{shpPoints(line.Points())}))
	}

	writer.Close()
	return nil
}
