package sim

// Frame is the playable rectangle in scene coordinates. The origin sits at
// the centre of the viewport, X grows right and Y grows down, so the
// rectangle spans [-W/2, W/2] x [-H/2, H/2].
//
// Renderers work in corner-origin pixels; ToScreen applies the constant
// translation between the two.
type Frame struct {
	W, H float64
}

func NewFrame(width, height float64) Frame {
	return Frame{W: width, H: height}
}

// Bias is the corner of the viewport expressed in scene coordinates, i.e.
// the translation (-W/2, -H/2) a centred-origin renderer applies.
func (f Frame) Bias() (float64, float64) {
	return -f.W / 2, -f.H / 2
}

func (f Frame) MinX() float64 { return -f.W / 2 }
func (f Frame) MaxX() float64 { return f.W / 2 }
func (f Frame) MinY() float64 { return -f.H / 2 }
func (f Frame) MaxY() float64 { return f.H / 2 }

// ToScreen converts scene coordinates to corner-origin viewport pixels.
func (f Frame) ToScreen(x, y float64) (float64, float64) {
	bx, by := f.Bias()
	return x - bx, y - by
}

// ToScene converts corner-origin viewport pixels to scene coordinates.
func (f Frame) ToScene(sx, sy float64) (float64, float64) {
	bx, by := f.Bias()
	return sx + bx, sy + by
}

// ClampSpan keeps an object of the given extent fully inside the frame on
// both axes. x and y are the object's minimum corner.
func (f Frame) ClampSpan(x, y, extent float64) (float64, float64) {
	return clampF(x, f.MinX(), f.MaxX()-extent), clampF(y, f.MinY(), f.MaxY()-extent)
}

// ClampRadius keeps a circle of radius r fully inside the frame on both axes.
func (f Frame) ClampRadius(x, y, r float64) (float64, float64) {
	return clampF(x, f.MinX()+r, f.MaxX()-r), clampF(y, f.MinY()+r, f.MaxY()-r)
}

// Fits reports whether a square of the given side fits inside the frame.
func (f Frame) Fits(side float64) bool {
	return side <= f.W && side <= f.H
}
