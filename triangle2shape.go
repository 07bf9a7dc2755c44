package shapetools

import (
	"fmt"
	"log"

	"github.com/fmidev/smartmet-shapetools/edgetree"
	"github.com/fmidev/smartmet-shapetools/pslg"
	"github.com/fmidev/smartmet-shapetools/shapeio"
)

// TriangleToShape rebuilds closed polygons from a PSLG pair and writes
// them as an ESRI shapefile with an empty attribute table. Every edge
// of inName.poly is chained into rings, and rings smaller than
// areaLimit square kilometers are dropped.
func TriangleToShape(areaLimit float64, inName, outName string) error {
	nodeFile := inName + ".node"
	points, err := pslg.ReadNodePoints(nodeFile)
	if err != nil {
		return err
	}
	log.Printf("Read %d nodes from %s", len(points)-1, nodeFile)

	polyFile := inName + ".poly"
	edges, err := pslg.ReadPolyFile(polyFile)
	if err != nil {
		return err
	}
	log.Printf("Read %d edges from %s", len(edges), polyFile)

	tree := edgetree.New()
	for _, e := range edges {
		if e.Index1() <= 0 || e.Index2() >= int64(len(points)) {
			return fmt.Errorf("Edge %d-%d refers to an unknown node in %s",
				e.Index1(), e.Index2(), polyFile)
		}
		tree.Add(points[e.Index1()], points[e.Index2()])
	}

	log.Println("Building a path")
	path := tree.Path()

	log.Println("Collecting polygons large enough")
	polygons := CollectPolygons(path, areaLimit)
	log.Printf("Found %d large enough polygons", len(polygons))

	log.Printf("Writing shapefile %s", outName)
	if err := shapeio.WritePolygons(outName, polygons); err != nil {
		return err
	}

	log.Println("Done")
	return nil
}
