package cmd

import (
	"fmt"
	"strconv"

	shapetools "github.com/fmidev/smartmet-shapetools"
)

type CmdTriangleToShape struct{}

func init() {
	_, err := parser.AddCommand("triangle2shape",
		"Convert PSLG files to a shapefile",
		"Rebuild closed polygons from a node/poly pair and write them as a shapefile",
		&CmdTriangleToShape{})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdTriangleToShape) Usage() string {
	return "arealimit inname shapename"
}

func (cmd CmdTriangleToShape) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Wrong number of arguments, Usage: triangle2shape %s", cmd.Usage())
	}

	areaLimit, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("Invalid arealimit: %s", args[0])
	}

	return shapetools.TriangleToShape(areaLimit, args[1], args[2])
}
