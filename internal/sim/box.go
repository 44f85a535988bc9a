package sim

// Box is the player-controlled square. X, Y is its top-left corner in scene
// coordinates.
type Box struct {
	X, Y float64
	W    float64

	step  float64
	frame Frame
}

// NewBox places a box of the given side at the centre of the frame.
func NewBox(frame Frame, side, step float64) *Box {
	b := &Box{W: side, step: step, frame: frame}
	b.Reset()
	return b
}

func (b *Box) Reset() {
	cx := (b.frame.MinX() + b.frame.MaxX()) / 2
	cy := (b.frame.MinY() + b.frame.MaxY()) / 2
	b.X = cx - b.W/2
	b.Y = cy - b.W/2
}

// MoveStep moves the box by (dx, dy) step units and keeps it fully inside
// the frame.
func (b *Box) MoveStep(dx, dy float64) {
	b.X, b.Y = b.frame.ClampSpan(b.X+dx*b.step, b.Y+dy*b.step, b.W)
}

// ClosestPoint returns the point of the box (boundary or interior) nearest
// to (px, py).
func (b *Box) ClosestPoint(px, py float64) (float64, float64) {
	return clampF(px, b.X, b.X+b.W), clampF(py, b.Y, b.Y+b.W)
}

func (b *Box) Draw(c Canvas) {
	sx, sy := b.frame.ToScreen(b.X, b.Y)
	c.Square(sx, sy, b.W)
}
