package cmd

import (
	"fmt"
	"strconv"

	shapetools "github.com/fmidev/smartmet-shapetools"
)

type CmdAmalgamate struct{}

func init() {
	_, err := parser.AddCommand("amalgamate",
		"Amalgamate a triangulated PSLG",
		"Merge nearby regions of a triangulated PSLG and write a new node/poly pair",
		&CmdAmalgamate{})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdAmalgamate) Usage() string {
	return "lengthlimit arealimit inname outname"
}

func (cmd CmdAmalgamate) Execute(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("Wrong number of arguments, Usage: amalgamate %s", cmd.Usage())
	}

	lengthLimit, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("Invalid lengthlimit: %s", args[0])
	}
	areaLimit, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("Invalid arealimit: %s", args[1])
	}

	return shapetools.Amalgamate(lengthLimit, areaLimit, args[2], args[3])
}
