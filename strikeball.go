package main

import (
	"flag"
	"log"

	"github.com/strikeball/strikeball/resources"
	"github.com/strikeball/strikeball/web"
)

func main() {
	var addr, arenaDir, catalog string
	flag.StringVar(&addr, "i", ":8000", "Address of server")
	flag.StringVar(&arenaDir, "arenas", "arenas", "Path to folder with saved arena XML files")
	flag.StringVar(&catalog, "catalog", "", "Path to resource catalog YAML (validated on startup)")
	flag.Parse()

	if catalog != "" {
		lib, err := resources.LoadLibrary(catalog)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("[main] catalog %q: %d materials, %d physics materials, %d templates",
			catalog, lib.MaterialCount(), lib.PhysicsMaterialCount(), lib.TemplateCount())
	}

	if err := web.StartServer(addr, arenaDir); err != nil {
		log.Fatal(err)
	}
}
