package shapetools

import (
	"log"

	"github.com/cheggaaa/pb"

	"github.com/fmidev/smartmet-shapetools/geometry"
	"github.com/fmidev/smartmet-shapetools/pslg"
	"github.com/fmidev/smartmet-shapetools/shapeio"
)

// ShapeToTriangle converts the rings of a shapefile into a PSLG pair
// for the external Delaunay triangulizer. Rings smaller than areaLimit
// square kilometers are dropped. The output outName.node lists the
// deduplicated vertices tagged by ring ordinal; outName.poly lists the
// sequential ring edges followed by one interior region point per
// ring, so that every triangle of the subsequent triangulation can be
// attributed to the ring it fills, provided no ring encloses another.
func ShapeToTriangle(areaLimit float64, shapeName, outName string) error {
	log.Printf("Reading shapefile %s", shapeName)
	path, err := shapeio.ReadPath(shapeName)
	if err != nil {
		return err
	}

	log.Println("Collecting polygons large enough")
	polygons := CollectPolygons(path, areaLimit)
	log.Printf("Found %d large enough polygons", len(polygons))

	nodes := registerNodes(polygons)
	log.Printf("Counted %d unique nodes", nodes.Len())

	nodeFile := outName + ".node"
	log.Printf("Writing %s", nodeFile)
	if err := pslg.WriteNodeFile(nodeFile, nodes); err != nil {
		return err
	}

	log.Printf("Finding an inside point for %d polygons", len(polygons))
	regionPoints := make([]geometry.Point, 0, len(polygons))
	bar := pb.New(len(polygons)).Start()
	for _, poly := range polygons {
		pt, err := poly.SomeInsidePoint()
		if err != nil {
			return err
		}
		regionPoints = append(regionPoints, pt)
		bar.Increment()
	}
	bar.Finish()

	polyFile := outName + ".poly"
	log.Printf("Writing %s", polyFile)
	if err := pslg.WritePolyFile(polyFile, polygons, nodes, regionPoints); err != nil {
		return err
	}

	log.Println("Done")
	return nil
}
