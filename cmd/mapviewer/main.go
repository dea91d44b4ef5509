// cmd/mapviewer/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"go-battlemap/internal/config"
	"go-battlemap/internal/defs"
	"go-battlemap/internal/mapgen"
	"go-battlemap/internal/utils"
	"go-battlemap/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// biomeKeys maps the number row to biomes for quick switching.
var biomeKeys = map[ebiten.Key]mapgen.Biome{
	ebiten.Key1: mapgen.BiomeGrasslands,
	ebiten.Key2: mapgen.BiomeForest,
	ebiten.Key3: mapgen.BiomeCity,
	ebiten.Key4: mapgen.BiomeRiver,
	ebiten.Key5: mapgen.BiomeRuins,
	ebiten.Key6: mapgen.BiomeDesert,
	ebiten.Key7: mapgen.BiomeMountains,
}

type ViewerApp struct {
	gen      *mapgen.Generator
	renderer *render.HexRenderer
	width    int
	height   int
	biome    mapgen.Biome
	seed     int64
}

func (a *ViewerApp) regenerate() {
	doc, err := a.gen.Generate(a.width, a.height, a.biome, utils.NewPRNGService(a.seed))
	if err != nil {
		log.Fatal(err)
	}
	a.renderer.SetDocument(doc)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (seed %d) — R: reroll, E: elevations, 1-7: biome", doc.Name, a.seed))
}

func (a *ViewerApp) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.seed++
		a.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.renderer.ToggleLabels()
	}
	for key, biome := range biomeKeys {
		if inpututil.IsKeyJustPressed(key) && biome != a.biome {
			a.biome = biome
			a.regenerate()
		}
	}
	return nil
}

func (a *ViewerApp) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
}

func (a *ViewerApp) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	width := flag.Int("width", config.DefaultMapWidth, "map width in hexes")
	height := flag.Int("height", config.DefaultMapHeight, "map height in hexes")
	biomeID := flag.String("biome", string(mapgen.BiomeRiver), "starting biome id")
	seed := flag.Int64("seed", 1, "starting RNG seed")
	flag.Parse()

	biome, err := mapgen.ParseBiome(*biomeID)
	if err != nil {
		log.Fatal(err)
	}

	lib := defs.DefaultLibrary()
	gen := mapgen.NewGenerator(lib)
	doc, err := gen.Generate(*width, *height, biome, utils.NewPRNGService(*seed))
	if err != nil {
		log.Fatal(err)
	}

	app := &ViewerApp{
		gen:      gen,
		renderer: render.NewHexRenderer(doc, lib, config.HexSize, config.ScreenWidth, config.ScreenHeight),
		width:    *width,
		height:   *height,
		biome:    biome,
		seed:     *seed,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (seed %d)", doc.Name, *seed))
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
