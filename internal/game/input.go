package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"ballbox/internal/sim"
)

// arrowKeys is polled in this order every frame.
var arrowKeys = [...]struct {
	key glfw.Key
	dir sim.Direction
}{
	{glfw.KeyUp, sim.DirUp},
	{glfw.KeyDown, sim.DirDown},
	{glfw.KeyLeft, sim.DirLeft},
	{glfw.KeyRight, sim.DirRight},
}

type Input struct {
	prevKeys map[glfw.Key]bool
	held     []sim.Direction
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
		held:     make([]sim.Direction, 0, len(arrowKeys)),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Held returns every arrow key that is down this frame. Each one moves the
// box a single step, so holding two keys moves it diagonally.
func (in *Input) Held(window *glfw.Window) []sim.Direction {
	in.held = in.held[:0]
	for _, k := range arrowKeys {
		if window.GetKey(k.key) == glfw.Press {
			in.held = append(in.held, k.dir)
		}
	}
	return in.held
}
