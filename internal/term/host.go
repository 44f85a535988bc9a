// Package term plays the scene inside a terminal through tcell. Arrow key
// events move the box; the backdrop is shaded per cell.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"ballbox/internal/sim"
)

// Host drives one scene on one screen. It does not own the screen.
type Host struct {
	screen tcell.Screen
	scene  *sim.Scene
	canvas *cellCanvas
	period time.Duration

	// Arrow keys seen since the last step. A terminal reports presses, not
	// held state, so each key counts at most once per step.
	pressed [sim.DirRight + 1]bool
	held    []sim.Direction
}

func NewHost(screen tcell.Screen, scene *sim.Scene, period time.Duration) *Host {
	if period <= 0 {
		period = sim.DefaultConfig().TickPeriod
	}
	return &Host{
		screen: screen,
		scene:  scene,
		canvas: newCellCanvas(screen),
		period: period,
		held:   make([]sim.Direction, 0, 4),
	}
}

// Resize re-initialises the scene for a terminal of cols x rows cells.
func (h *Host) Resize(cols, rows int) error {
	if err := h.scene.Initialize(float64(cols*CellW), float64(rows*CellH)); err != nil {
		return fmt.Errorf("terminal %dx%d: %w", cols, rows, err)
	}
	h.canvas.resize(cols, rows)
	clear(h.pressed[:])
	log.Printf("terminal %dx%d cells, playfield %vx%v", cols, rows, h.scene.Frame.W, h.scene.Frame.H)
	return nil
}

// HandleEvent applies one terminal event and reports whether the host
// should keep running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		}
		if d := sim.ParseDirection(ev.Name()); d != sim.DirNone {
			h.pressed[d] = true
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		if err := h.Resize(cols, rows); err != nil {
			log.Printf("resize ignored: %v", err)
		}
		h.screen.Sync()
	}
	return true
}

// Step applies the pressed directions, advances the scene one tick and
// redraws. elapsed drives the backdrop animation.
func (h *Host) Step(elapsed float64) {
	if !h.scene.Initialized() {
		return
	}
	h.held = h.held[:0]
	for d := sim.DirUp; d <= sim.DirRight; d++ {
		if h.pressed[d] {
			h.held = append(h.held, d)
			h.pressed[d] = false
		}
	}
	h.scene.Control(h.held)
	h.scene.Tick()
	h.Render(elapsed)
}

// Render draws the current scene state without advancing it.
func (h *Host) Render(elapsed float64) {
	h.canvas.paintBackdrop(h.scene.Backdrop(elapsed))
	h.scene.Draw(h.canvas)
	h.screen.Show()
}

// Run sizes the scene to the screen and steps it every period until ctx is
// done or a quit key arrives.
func (h *Host) Run(ctx context.Context) error {
	h.screen.HideCursor()
	cols, rows := h.screen.Size()
	if err := h.Resize(cols, rows); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go h.screen.ChannelEvents(events, ctx.Done())

	ticker := time.NewTicker(h.period)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Step(time.Since(start).Seconds())
		}
	}
}

// Run opens the controlling terminal and plays the scene on it. The screen
// is restored on return and before a panic propagates.
func Run(ctx context.Context, scene *sim.Scene, period time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
		screen.Fini()
	}()

	return NewHost(screen, scene, period).Run(ctx)
}
