package main

import (
	"log"
	"os"
	"strconv"

	shapetools "github.com/fmidev/smartmet-shapetools"
)

func main() {
	if len(os.Args) != 5 {
		log.Println("Usage: amalgamate lengthlimit arealimit inname outname")
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
	lengthLimit, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil {
		return err
	}
	areaLimit, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		return err
	}

	return shapetools.Amalgamate(lengthLimit, areaLimit, os.Args[3], os.Args[4])
}
