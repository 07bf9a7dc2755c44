package shapetools

import (
	"testing"

	"github.com/cheekybits/is"

	"github.com/fmidev/smartmet-shapetools/geometry"
)

func ringPath(coords ...[2]float64) geometry.Path {
	var path geometry.Path
	for i, c := range coords {
		op := geometry.LineTo
		if i == 0 {
			op = geometry.MoveTo
		}
		path = append(path, geometry.PathElement{
			Op:    op,
			Point: geometry.Point{X: c[0], Y: c[1]},
		})
	}
	return path
}

func TestCollectPolygonsSplitsAtMoveTo(t *testing.T) {
	is := is.New(t)

	path := append(
		ringPath([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 0}),
		ringPath([2]float64{5, 5}, [2]float64{6, 5}, [2]float64{6, 6}, [2]float64{5, 5})...)

	polygons := CollectPolygons(path, 0)
	is.Equal(len(polygons), 2)
	is.Equal(polygons[0].Len(), 4)
	is.Equal(polygons[1].Len(), 4)
	is.Equal(polygons[0].Points()[0], geometry.Point{X: 0, Y: 0})
	is.Equal(polygons[1].Points()[0], geometry.Point{X: 5, Y: 5})
}

func TestCollectPolygonsAreaFilter(t *testing.T) {
	is := is.New(t)

	// A one degree ring and a much smaller one
	big := ringPath(
		[2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1},
		[2]float64{0, 1}, [2]float64{0, 0})
	small := ringPath(
		[2]float64{10, 10}, [2]float64{10.001, 10}, [2]float64{10.001, 10.001},
		[2]float64{10, 10.001}, [2]float64{10, 10})

	polygons := CollectPolygons(append(big, small...), 1.0)
	is.Equal(len(polygons), 1)
	is.Equal(polygons[0].Points()[0], geometry.Point{X: 0, Y: 0})

	// A non-positive limit keeps everything
	polygons = CollectPolygons(append(big, small...), 0)
	is.Equal(len(polygons), 2)
}

func TestCollectPolylines(t *testing.T) {
	is := is.New(t)

	path := append(
		ringPath([2]float64{0, 0}, [2]float64{1, 0}),
		ringPath([2]float64{5, 5}, [2]float64{6, 5}, [2]float64{7, 5})...)

	lines := CollectPolylines(path)
	is.Equal(len(lines), 2)
	is.Equal(lines[0].Len(), 2)
	is.Equal(lines[1].Len(), 3)
}

func TestRegisterNodes(t *testing.T) {
	is := is.New(t)

	polygons := CollectPolygons(append(
		ringPath([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 0}),
		ringPath([2]float64{1, 1}, [2]float64{6, 5}, [2]float64{6, 6}, [2]float64{1, 1})...), 0)

	nodes := registerNodes(polygons)

	// The closure duplicate and the shared vertex are deduplicated
	is.Equal(nodes.Len(), 5)

	// A shared vertex keeps the tag of the first ring that used it
	is.Equal(nodes.ID(geometry.Point{X: 1, Y: 1}), 1)
	is.Equal(nodes.ID(geometry.Point{X: 6, Y: 6}), 2)
}
