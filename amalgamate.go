package shapetools

import (
	"log"

	"github.com/cheggaaa/pb"

	"github.com/fmidev/smartmet-shapetools/edgetree"
	"github.com/fmidev/smartmet-shapetools/geometry"
	"github.com/fmidev/smartmet-shapetools/pslg"
)

// DebugOutput is the sentinel output name that makes Amalgamate
// rewrite the input .ele file with the accepted triangles instead of
// producing new .node and .poly files. Useful for visualizing the
// acceptance decisions with the triangulation viewer.
const DebugOutput = "-debug"

// Amalgamate merges the regions of a triangulated PSLG. It reads
// inName.node, inName.poly and inName.ele, accepts every triangle that
// lies inside an original polygon, and accepts a connecting triangle
// only when all three of its sides are at most lengthLimit kilometers
// long. The outer boundary of the accepted triangles is rebuilt into
// rings, rings smaller than areaLimit square kilometers are dropped,
// and the result is written as outName.node and outName.poly.
func Amalgamate(lengthLimit, areaLimit float64, inName, outName string) error {
	debug := outName == DebugOutput

	nodeFile := inName + ".node"
	nodes, err := pslg.ReadNodeFile(nodeFile)
	if err != nil {
		return err
	}
	log.Printf("Read %d nodes from %s", nodes.Len(), nodeFile)

	polyFile := inName + ".poly"
	constraintEdges, err := pslg.ReadPolyFile(polyFile)
	if err != nil {
		return err
	}
	constraints := geometry.NewEdges()
	for _, e := range constraintEdges {
		constraints.Add(e)
	}
	log.Printf("Read %d constraint edges from %s", constraints.Len(), polyFile)

	eleFile := inName + ".ele"
	triangles, err := pslg.ReadEleFile(eleFile)
	if err != nil {
		return err
	}
	log.Printf("Read %d triangles from %s", len(triangles), eleFile)

	tree := edgetree.New()
	var accepted []pslg.Triangle

	bar := pb.New(len(triangles)).Start()
	for _, t := range triangles {
		bar.Increment()

		pt1 := nodes.Point(t.V1)
		pt2 := nodes.Point(t.V2)
		pt3 := nodes.Point(t.V3)

		// Triangles outside all original polygons are bridges and
		// are kept only when geographically tight enough
		if t.Region == 0 {
			if pt1.GeoDistance(pt2) > lengthLimit ||
				pt2.GeoDistance(pt3) > lengthLimit ||
				pt3.GeoDistance(pt1) > lengthLimit {
				continue
			}
		}

		tree.Add(pt1, pt2)
		tree.Add(pt2, pt3)
		tree.Add(pt3, pt1)

		if debug {
			accepted = append(accepted, t)
		}
	}
	bar.Finish()

	if debug {
		log.Printf("Rewriting %s with %d accepted triangles", eleFile, len(accepted))
		return pslg.WriteEleFile(eleFile, accepted)
	}

	log.Println("Building a path")
	path := tree.Path()

	log.Println("Collecting polygons large enough")
	polygons := CollectPolygons(path, areaLimit)
	log.Printf("Found %d large enough polygons", len(polygons))

	out := registerNodes(polygons)
	log.Printf("Counted %d unique nodes", out.Len())

	outNodeFile := outName + ".node"
	log.Printf("Writing %s", outNodeFile)
	if err := pslg.WriteNodeFile(outNodeFile, out); err != nil {
		return err
	}

	outPolyFile := outName + ".poly"
	log.Printf("Writing %s", outPolyFile)
	if err := pslg.WritePolyFile(outPolyFile, polygons, out, nil); err != nil {
		return err
	}

	log.Println("Done")
	return nil
}
