package model

import (
	"image"

	"golang.org/x/image/draw"
)

const (
	GridSize        = 8
	PixelCount      = GridSize * GridSize
	DFLT_TILE_SIZE  = 50
	TileMargin      = 2
	tileInsetFactor = 0.75
)

// Frame is a full snapshot of the grid in raster order. Being an array it is
// copied on assignment, so a stored Frame never changes behind the caller.
type Frame [PixelCount]RGB

// Image returns the frame as an 8x8 image for display.Drawer devices.
func (f Frame) Image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, GridSize, GridSize))
	for i, c := range f {
		im.SetNRGBA(i%GridSize, i/GridSize, c.ToNRGBA())
	}
	return im
}

// Scaled blows the frame up so each LED is a px by px block.
func (f Frame) Scaled(px int) *image.NRGBA {
	if px < 1 {
		px = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, GridSize*px, GridSize*px))
	src := f.Image()
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Grid is the paintable 8x8 canvas and the on-screen tiles it is drawn into.
type Grid struct {
	pixels   Frame
	rects    [PixelCount]image.Rectangle
	tileSize int
}

func NewGrid(tileSize int) *Grid {
	if tileSize <= TileMargin {
		tileSize = DFLT_TILE_SIZE
	}
	g := &Grid{tileSize: tileSize}

	t := float64(tileSize)
	side := tileSize - TileMargin
	for i := range g.rects {
		row := i / GridSize
		col := i % GridSize
		// Tiles sit 3/4 of a tile in from the nominal cell edge, plus one unit.
		x := int(float64(col+1)*t - t*tileInsetFactor + 1)
		y := int(float64(row+1)*t - t*tileInsetFactor + 1)
		g.rects[i] = image.Rect(x, y, x+side, y+side)
	}
	g.Clear()

	return g
}

func (g *Grid) TileSize() int {
	return g.tileSize
}

// Clear resets every cell to white.
func (g *Grid) Clear() {
	for i := range g.pixels {
		g.pixels[i] = White
	}
}

// PaintAt sets the cell under pt to c. It reports the painted index, or false
// when pt is outside every tile.
func (g *Grid) PaintAt(pt image.Point, c RGB) (int, bool) {
	i := g.IndexAt(pt)
	if i < 0 {
		return -1, false
	}
	g.pixels[i] = c
	return i, true
}

// IndexAt returns the cell whose tile contains pt, or -1.
func (g *Grid) IndexAt(pt image.Point) int {
	if !pt.In(g.Bounds()) {
		return -1
	}
	for i, r := range g.rects {
		if pt.In(r) {
			return i
		}
	}
	return -1
}

func (g *Grid) At(i int) RGB {
	return g.pixels[i]
}

func (g *Grid) Rect(i int) image.Rectangle {
	return g.rects[i]
}

// Bounds covers all tiles including the gaps between them.
func (g *Grid) Bounds() image.Rectangle {
	return g.rects[0].Union(g.rects[PixelCount-1])
}

// Frame returns a copy of the current pixels.
func (g *Grid) Frame() Frame {
	return g.pixels
}

func (g *Grid) Image() *image.NRGBA {
	return g.pixels.Image()
}
