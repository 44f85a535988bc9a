// Package glyph rasterises a fixed-cell ASCII font atlas for the score
// label. Cell (c % Cols, c / Cols) holds the glyph for code point c.
package glyph

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Atlas layout.
const (
	CellW  = 18
	CellH  = 32
	Cols   = 32
	Rows   = 4
	AtlasW = CellW * Cols // 576
	AtlasH = CellH * Rows // 128

	First = 32
	Last  = 126

	pointSize = 24
)

// Atlas is an RGBA texture holding white glyphs on transparent cells.
type Atlas struct {
	Img      *image.NRGBA
	Baseline int // distance from a cell's top edge to the glyph baseline
}

// Build rasterises the printable ASCII range of Go Regular into a new atlas.
func Build() (*Atlas, error) {
	return BuildTTF(goregular.TTF, pointSize)
}

// BuildTTF rasterises the printable ASCII range of a TrueType font.
func BuildTTF(ttf []byte, size float64) (*Atlas, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewNRGBA(image.Rect(0, 0, AtlasW, AtlasH))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	m := face.Metrics()
	// Centre the line box vertically inside the cell.
	lineH := (m.Ascent + m.Descent).Ceil()
	baseline := (CellH-lineH)/2 + m.Ascent.Ceil()

	for c := First; c <= Last; c++ {
		col, row := c%Cols, c/Cols
		adv, ok := face.GlyphAdvance(rune(c))
		if !ok {
			continue
		}
		// Draw through a cell-sized view so wide glyphs cannot bleed.
		cell := image.Rect(col*CellW, row*CellH, (col+1)*CellW, (row+1)*CellH)
		d := &font.Drawer{
			Dst:  img.SubImage(cell).(draw.Image),
			Src:  image.White,
			Face: face,
			Dot:  fixed.P(cell.Min.X+(CellW-adv.Round())/2, cell.Min.Y+baseline),
		}
		d.DrawString(string(rune(c)))
	}
	return &Atlas{Img: img, Baseline: baseline}, nil
}

// Has reports whether ch has a cell in the atlas.
func Has(ch rune) bool {
	return ch >= First && ch <= Last
}

// UV returns the normalised texture rectangle for ch. ok is false for
// characters outside the atlas.
func UV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if !Has(ch) {
		return 0, 0, 0, 0, false
	}
	c := int(ch)
	col, row := c%Cols, c/Cols
	u0 = float32(col*CellW) / AtlasW
	v0 = float32(row*CellH) / AtlasH
	u1 = float32((col+1)*CellW) / AtlasW
	v1 = float32((row+1)*CellH) / AtlasH
	return u0, v0, u1, v1, true
}
