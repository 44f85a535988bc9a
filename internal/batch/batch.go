// Package batch collects draw calls into the interleaved float buffers the
// GL renderer streams to the GPU each frame.
package batch

import (
	"ballbox/internal/glyph"
	"ballbox/internal/sim"
)

// Sprite kinds, matched by the shape fragment shader.
const (
	KindCircle = 0
	KindSquare = 1
	KindDot    = 2
)

// Layouts.
const (
	SpriteFloats = 8 // x, y, size, r, g, b, a, kind
	VertexFloats = 8 // x, y, u, v, r, g, b, a
	GlyphVerts   = 6
)

// Batch implements sim.Canvas. Positions are framebuffer pixels with the
// origin in the top-left corner.
type Batch struct {
	Sprites []float32
	Glyphs  []float32

	TextScale float32 // atlas cell to screen pixels
	Baseline  float32 // baseline offset inside an atlas cell, unscaled
}

var _ sim.Canvas = (*Batch)(nil)

func New(textScale, baseline float32) *Batch {
	return &Batch{
		Sprites:   make([]float32, 0, 64*SpriteFloats),
		Glyphs:    make([]float32, 0, 32*GlyphVerts*VertexFloats),
		TextScale: textScale,
		Baseline:  baseline,
	}
}

// Reset drops everything queued for the previous frame.
func (b *Batch) Reset() {
	b.Sprites = b.Sprites[:0]
	b.Glyphs = b.Glyphs[:0]
}

func (b *Batch) SpriteCount() int { return len(b.Sprites) / SpriteFloats }

func (b *Batch) GlyphCount() int { return len(b.Glyphs) / (GlyphVerts * VertexFloats) }

func (b *Batch) sprite(x, y, size float64, col sim.RGB, alpha uint8, kind int) {
	b.Sprites = append(b.Sprites,
		float32(x), float32(y), float32(size),
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(alpha)/255,
		float32(kind),
	)
}

// Circle queues a point sprite covering the circle plus half its outline.
func (b *Batch) Circle(x, y, r float64) {
	b.sprite(x, y, 2*r+sim.StrokeWeight, sim.Palette.Fill, 255, KindCircle)
}

// Square queues a point sprite centred on the square.
func (b *Batch) Square(x, y, side float64) {
	h := side / 2
	b.sprite(x+h, y+h, side+sim.StrokeWeight, sim.Palette.Fill, 255, KindSquare)
}

func (b *Batch) Dot(x, y, size float64, col sim.RGB, alpha uint8) {
	b.sprite(x, y, size, col, alpha, KindDot)
}

// Text queues one quad per rune with the baseline at y.
func (b *Batch) Text(s string, x, y float64) {
	advance := float32(glyph.CellW) * b.TextScale
	sx := float32(x)
	sy := float32(y) - b.Baseline*b.TextScale
	for _, ch := range s {
		b.char(ch, sx, sy)
		sx += advance
	}
}

func (b *Batch) char(ch rune, sx, sy float32) {
	u0, v0, u1, v1, ok := glyph.UV(ch)
	if !ok {
		return
	}
	w := float32(glyph.CellW) * b.TextScale
	h := float32(glyph.CellH) * b.TextScale

	c := sim.Palette.Text
	cr := float32(c.R) / 255
	cg := float32(c.G) / 255
	cb := float32(c.B) / 255

	// Two triangles: TL, TR, BL then TR, BR, BL.
	b.Glyphs = append(b.Glyphs,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}
