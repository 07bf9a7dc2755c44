package shapetools

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	geojson "github.com/paulmach/go.geojson"

	"github.com/fmidev/smartmet-shapetools/shapeio"
)

// ShapeToGeoJSON dumps the rings of a shapefile as a GeoJSON feature
// collection, one single-ring polygon feature per ring with its
// ordinal and cartographic area as properties. Rings smaller than
// areaLimit square kilometers are dropped.
func ShapeToGeoJSON(areaLimit float64, shapeName, outName string) error {
	log.Printf("Reading shapefile %s", shapeName)
	path, err := shapeio.ReadPath(shapeName)
	if err != nil {
		return err
	}

	polygons := CollectPolygons(path, areaLimit)
	log.Printf("Found %d large enough polygons", len(polygons))

	fc := geojson.NewFeatureCollection()
	for i, poly := range polygons {
		poly.Close()
		ring := make([][]float64, 0, poly.Len())
		for _, pt := range poly.Points() {
			ring = append(ring, []float64{pt.X, pt.Y})
		}

		feature := geojson.NewFeature(geojson.NewPolygonGeometry([][][]float64{ring}))
		feature.SetProperty("ring", i+1)
		feature.SetProperty("area_km2", poly.GeoArea())
		fc.AddFeature(feature)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return err
	}

	log.Printf("Writing %s", outName)
	if err := os.WriteFile(outName, data, 0644); err != nil {
		return fmt.Errorf("Could not open %s for writing", outName)
	}

	log.Println("Done")
	return nil
}
