package sim

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	Fill     RGB // ball and box body
	Stroke   RGB // ball and box outline
	Particle RGB
	Text     RGB
}{
	Fill:     RGB{R: 255, G: 255, B: 255},
	Stroke:   RGB{R: 20, G: 20, B: 20},
	Particle: RGB{R: 255, G: 0, B: 0},
	Text:     RGB{R: 255, G: 255, B: 255},
}

// StrokeWeight is the outline width used for the ball and the box.
const StrokeWeight = 4

// Canvas is the render surface a host hands to the draw step. Coordinates
// are corner-origin viewport pixels.
type Canvas interface {
	// Circle draws a filled, outlined circle centred on (x, y).
	Circle(x, y, r float64)
	// Square draws a filled, outlined square with its top-left corner at (x, y).
	Square(x, y, side float64)
	// Dot draws a borderless particle of the given diameter; alpha is 0..255.
	Dot(x, y, size float64, col RGB, alpha uint8)
	// Text draws a label with its baseline starting at (x, y).
	Text(s string, x, y float64)
}
