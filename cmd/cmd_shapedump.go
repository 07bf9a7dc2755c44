package cmd

import (
	"fmt"
	"os"

	shapetools "github.com/fmidev/smartmet-shapetools"
)

type CmdShapeDump struct{}

func init() {
	_, err := parser.AddCommand("shapedump",
		"Dump a shapefile as movement commands",
		"Print every element of a shapefile as moveto/lineto/closepath commands",
		&CmdShapeDump{})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdShapeDump) Usage() string {
	return "shapename"
}

func (cmd CmdShapeDump) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("Wrong number of arguments, Usage: shapedump %s", cmd.Usage())
	}

	return shapetools.ShapeDump(args[0], os.Stdout)
}
