package sim

import "fmt"

// recordingCanvas captures draw calls for assertions.
type recordingCanvas struct {
	calls []string
	dots  int
	texts []string
}

func (c *recordingCanvas) Circle(x, y, r float64) {
	c.calls = append(c.calls, fmt.Sprintf("circle %.2f,%.2f r=%.2f", x, y, r))
}

func (c *recordingCanvas) Square(x, y, side float64) {
	c.calls = append(c.calls, fmt.Sprintf("square %.2f,%.2f w=%.2f", x, y, side))
}

func (c *recordingCanvas) Dot(x, y, size float64, col RGB, alpha uint8) {
	c.dots++
	c.calls = append(c.calls, "dot")
}

func (c *recordingCanvas) Text(s string, x, y float64) {
	c.texts = append(c.texts, s)
	c.calls = append(c.calls, "text "+s)
}

// newTestScene returns an initialized 400x400 scene with a fixed seed.
func newTestScene(seed uint64) *Scene {
	s := NewScene(DefaultConfig(), NewRand(seed))
	if err := s.Initialize(400, 400); err != nil {
		panic(err)
	}
	return s
}
