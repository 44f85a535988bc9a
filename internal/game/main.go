package game

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"ballbox/internal/sim"
)

// RunDesktop opens a window and plays the scene until the window closes or
// Escape is pressed. The scene is (re)initialised to the framebuffer size
// whenever that size changes; a rejected size keeps the last accepted one.
func RunDesktop(scene *sim.Scene) error {
	runtime.LockOSThread()

	window, err := initWindow(WindowWidth, WindowHeight)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0.5, 0.5, 0.5, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	input := NewInput()
	var viewport sim.Viewport

	start := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}

		w, h := window.GetFramebufferSize()
		if w <= 0 || h <= 0 {
			continue
		}
		if changed, err := viewport.Sync(scene, w, h); err != nil {
			log.Printf("viewport %dx%d rejected: %v", w, h, err)
		} else if changed {
			log.Printf("viewport %dx%d", w, h)
		}
		if !scene.Initialized() {
			window.SwapBuffers()
			continue
		}

		scene.Control(input.Held(window))
		scene.Tick()

		rend.BeginFrame(viewport.Size(scene))
		rend.DrawBackdrop(scene.Backdrop(glfw.GetTime() - start))
		scene.Draw(rend)
		rend.FlushText()
		rend.FlushShapes()

		window.SwapBuffers()
	}
	return nil
}
