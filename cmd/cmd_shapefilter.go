package cmd

import (
	"fmt"
	"strconv"

	shapetools "github.com/fmidev/smartmet-shapetools"
)

type CmdShapeFilter struct {
	Margin float64 `short:"m" long:"margin" description:"Expand the bounding box by this amount on all sides"`
}

func init() {
	_, err := parser.AddCommand("shapefilter",
		"Clip a shapefile against a bounding box",
		"Keep only the element vertices needed to represent the intersection with a bounding box",
		&CmdShapeFilter{})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdShapeFilter) Usage() string {
	return "x1 y1 x2 y2 inshape outshape"
}

func (cmd CmdShapeFilter) Execute(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("Wrong number of arguments, Usage: shapefilter %s", cmd.Usage())
	}

	box := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("Invalid bounding box coordinate: %s", args[i])
		}
		box[i] = v
	}

	return shapetools.ShapeFilter(box[0], box[1], box[2], box[3], cmd.Margin, args[4], args[5])
}
