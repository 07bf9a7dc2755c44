package shapetools

import (
	"log"

	"github.com/fmidev/smartmet-shapetools/geometry"
	"github.com/fmidev/smartmet-shapetools/shapeio"
)

// ShapeFilter clips the elements of a shapefile against a bounding
// box, expanded by margin on all sides, and writes the survivors as a
// polyline shapefile. Clipping keeps original vertices only, so the
// output coordinates are bit-identical to the input.
func ShapeFilter(x1, y1, x2, y2, margin float64, inShape, outShape string) error {
	log.Printf("Reading shapefile %s", inShape)
	path, err := shapeio.ReadPath(inShape)
	if err != nil {
		return err
	}

	lines := CollectPolylines(path)
	log.Printf("Found %d elements", len(lines))

	var kept []*geometry.Polyline
	for _, line := range lines {
		line.Clip(x1, y1, x2, y2, margin)
		if !line.Empty() {
			kept = append(kept, line)
		}
	}
	log.Printf("Kept %d elements after clipping", len(kept))

	log.Printf("Writing shapefile %s", outShape)
	if err := shapeio.WritePolylines(outShape, kept); err != nil {
		return err
	}

	log.Println("Done")
	return nil
}
