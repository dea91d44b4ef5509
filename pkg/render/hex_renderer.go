// pkg/render/hex_renderer.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"go-battlemap/internal/config"
	"go-battlemap/internal/defs"
	"go-battlemap/internal/mapgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HexRenderer draws a finished map document as flat-top hexes. The
// map is pre-rendered once into an offscreen image; Draw then blits it
// per frame.
type HexRenderer struct {
	doc          *mapgen.MapDocument
	tileColors   map[string]color.RGBA
	hexSize      float64
	screenWidth  int
	screenHeight int
	originX      float64
	originY      float64
	fillImg      *ebiten.Image
	strokeImg    *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	mapImage     *ebiten.Image
	showLabels   bool
}

// NewHexRenderer pre-renders doc and returns a renderer sized for the
// given screen.
func NewHexRenderer(doc *mapgen.MapDocument, lib *defs.TileLibrary, hexSize float64, screenWidth, screenHeight int) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	r := &HexRenderer{
		doc:          doc,
		tileColors:   BuildTileColors(lib),
		hexSize:      hexSize,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		strokeImg:    strokeImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     basicfont.Face7x13,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	r.centerMap()
	r.RenderMapImage()
	return r
}

// SetDocument swaps the displayed map and re-renders the backdrop.
func (r *HexRenderer) SetDocument(doc *mapgen.MapDocument) {
	r.doc = doc
	r.centerMap()
	r.RenderMapImage()
}

// ToggleLabels flips the per-hex elevation labels and re-renders.
func (r *HexRenderer) ToggleLabels() {
	r.showLabels = !r.showLabels
	r.RenderMapImage()
}

// centerMap positions the hex lattice in the middle of the screen.
func (r *HexRenderer) centerMap() {
	mapW := r.hexSize * (1.5*float64(r.doc.Width-1) + 2)
	mapH := math.Sqrt(3) * r.hexSize * (float64(r.doc.Height) + 0.5)
	r.originX = (float64(r.screenWidth) - mapW) / 2
	r.originY = (float64(r.screenHeight) - mapH) / 2
}

// hexCenter returns the pixel center of cell (x, y). Odd columns sit
// half a hex lower, matching the generator's offset layout.
func (r *HexRenderer) hexCenter(x, y int) (float64, float64) {
	px := r.originX + r.hexSize*(1.5*float64(x)+1)
	py := r.originY + math.Sqrt(3)*r.hexSize*(float64(y)+0.5)
	if x&1 == 1 {
		py += math.Sqrt(3) * r.hexSize / 2
	}
	return px, py
}

// RenderMapImage rebuilds the pre-rendered backdrop.
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Fill(config.BackgroundColor)
	for y := 0; y < r.doc.Height; y++ {
		for x := 0; x < r.doc.Width; x++ {
			r.drawHexFill(r.mapImage, x, y)
		}
	}
	for y := 0; y < r.doc.Height; y++ {
		for x := 0; x < r.doc.Width; x++ {
			r.drawHexOutline(r.mapImage, x, y)
		}
	}
}

// Draw blits the pre-rendered map.
func (r *HexRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

func (r *HexRenderer) hexPath(x, y int) vector.Path {
	cx, cy := r.hexCenter(x, y)
	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		px := cx + r.hexSize*math.Cos(angle)
		py := cy + r.hexSize*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, x, y int) {
	cell := r.doc.Layers.Terrain[y][x]
	fillColor := ShadeByElevation(TileColor(r.tileColors, cell.TileID), cell.Elevation)

	path := r.hexPath(x, y)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	if r.showLabels {
		cx, cy := r.hexCenter(x, y)
		label := fmt.Sprintf("%d", cell.Elevation)
		var textColor color.RGBA
		if (int(fillColor.R)+int(fillColor.G)+int(fillColor.B))/3 > 128 {
			textColor = config.TextDarkColor
		} else {
			textColor = config.TextLightColor
		}
		bounds := text.BoundString(r.fontFace, label)
		w := bounds.Max.X - bounds.Min.X
		h := bounds.Max.Y - bounds.Min.Y
		text.Draw(target, label, r.fontFace, int(cx)-w/2, int(cy)+h/2, textColor)
	}
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, x, y int) {
	cell := r.doc.Layers.Terrain[y][x]

	path := r.hexPath(x, y)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: 1.5,
	})

	strokeColor := config.GridStrokeColor
	if cell.IsCenter {
		// Group anchors get a visible mark for packing debugging.
		strokeColor = config.AnchorMarkColor
	}

	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(strokeColor.R) / 255
		r.strokeVs[i].ColorG = float32(strokeColor.G) / 255
		r.strokeVs[i].ColorB = float32(strokeColor.B) / 255
		r.strokeVs[i].ColorA = float32(strokeColor.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
