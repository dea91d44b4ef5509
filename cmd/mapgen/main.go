// cmd/mapgen/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go-battlemap/internal/config"
	"go-battlemap/internal/defs"
	"go-battlemap/internal/mapgen"
	"go-battlemap/internal/utils"
)

func main() {
	width := flag.Int("width", config.DefaultMapWidth, "map width in hexes")
	height := flag.Int("height", config.DefaultMapHeight, "map height in hexes")
	biomeID := flag.String("biome", string(mapgen.BiomeGrasslands), "biome id (bt_grasslands, bt_forest, bt_city, bt_river, bt_ruins, bt_desert, bt_mountains)")
	seed := flag.Int64("seed", 0, "RNG seed; 0 picks one from the clock")
	tilesPath := flag.String("tiles", "", "tile library JSON; empty uses the builtin BattleTech library")
	outPath := flag.String("o", "", "output file; empty writes to stdout")
	flag.Parse()

	biome, err := mapgen.ParseBiome(*biomeID)
	if err != nil {
		log.Fatal(err)
	}

	lib := defs.DefaultLibrary()
	if *tilesPath != "" {
		lib, err = defs.LoadTileLibrary(*tilesPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	gen := mapgen.NewGenerator(lib)
	doc, err := gen.Generate(*width, *height, biome, utils.NewPRNGService(*seed))
	if err != nil {
		log.Fatal(err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	if *outPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s (%s, %dx%d)", *outPath, doc.Name, doc.Width, doc.Height)
}
