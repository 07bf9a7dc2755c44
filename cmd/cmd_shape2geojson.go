package cmd

import (
	"fmt"
	"strconv"

	shapetools "github.com/fmidev/smartmet-shapetools"
)

type CmdShapeToGeoJSON struct{}

func init() {
	_, err := parser.AddCommand("shape2geojson",
		"Convert a shapefile to GeoJSON",
		"Dump the area-filtered rings of a shapefile as a GeoJSON feature collection",
		&CmdShapeToGeoJSON{})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdShapeToGeoJSON) Usage() string {
	return "arealimit shapename outfile"
}

func (cmd CmdShapeToGeoJSON) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Wrong number of arguments, Usage: shape2geojson %s", cmd.Usage())
	}

	areaLimit, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("Invalid arealimit: %s", args[0])
	}

	return shapetools.ShapeToGeoJSON(areaLimit, args[1], args[2])
}
