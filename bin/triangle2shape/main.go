package main

import (
	"log"
	"os"
	"strconv"

	shapetools "github.com/fmidev/smartmet-shapetools"
)

func main() {
	if len(os.Args) != 4 {
		log.Println("Usage: triangle2shape arealimit inname shapename")
		os.Exit(1)
	}

	err := do()
	if err != nil {
		log.Printf(err.Error())
		os.Exit(1)
	}

	os.Exit(0)
}

func do() error {
	areaLimit, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil {
		return err
	}

	return shapetools.TriangleToShape(areaLimit, os.Args[2], os.Args[3])
}
