package game

import "ballbox/internal/glyph"

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "ballbox"
)

// Streaming buffer capacities.
const (
	MaxSprites = 1024
	MaxGlyphs  = 256
)

// Score label is drawn 36 px tall.
const TextScale = 36.0 / glyph.CellH
