package main

import (
	"log"

	"github.com/fmidev/smartmet-shapetools/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
