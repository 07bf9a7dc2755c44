package cmd

import (
	"fmt"
	"strconv"

	shapetools "github.com/fmidev/smartmet-shapetools"
)

type CmdShapeToTriangle struct{}

func init() {
	_, err := parser.AddCommand("shape2triangle",
		"Convert a shapefile to PSLG files",
		"Convert shapefile rings into a node/poly pair for the Delaunay triangulizer",
		&CmdShapeToTriangle{})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdShapeToTriangle) Usage() string {
	return "arealimit shape outname"
}

func (cmd CmdShapeToTriangle) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Wrong number of arguments, Usage: shape2triangle %s", cmd.Usage())
	}

	areaLimit, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("Invalid arealimit: %s", args[0])
	}

	return shapetools.ShapeToTriangle(areaLimit, args[1], args[2])
}
