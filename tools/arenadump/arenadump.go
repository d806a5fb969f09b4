package main

import (
	"flag"
	"log"

	"github.com/strikeball/strikeball/arena"
	"github.com/strikeball/strikeball/utils"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "", "Path to arena XML file")
	flag.Parse()

	doc, err := arena.Load(file)
	if err != nil {
		log.Fatal(err)
	}

	utils.Dump(doc)
}
