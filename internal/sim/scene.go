package sim

import (
	"fmt"
	"strconv"

	"ballbox/internal/backdrop"
)

// Scene owns the ball, the box and the score, and runs one frame of the
// game per Tick.
type Scene struct {
	Ball   *Ball
	Box    *Box
	Frame  Frame
	Events *EventBus

	cfg        Config
	rng        *Rand
	points     int
	directions map[Direction][2]float64
}

// NewScene returns a scene that still needs Initialize before it can tick.
func NewScene(cfg Config, rng *Rand) *Scene {
	if rng == nil {
		rng = NewRand(1)
	}
	return &Scene{
		Events:     NewEventBus(),
		cfg:        cfg,
		rng:        rng,
		directions: unitSteps(),
	}
}

// Initialize (re)builds the ball and the box for a viewport of the given
// size and zeroes the score. Calling it again, e.g. after a resize, is a
// hard reset.
func (s *Scene) Initialize(width, height float64) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	frame := NewFrame(width, height)
	if !frame.Fits(s.cfg.BoxSide) || !frame.Fits(2*s.cfg.BallRadius) {
		return fmt.Errorf("%w: %vx%v cannot hold box %v and ball radius %v",
			ErrPlayfieldTooSmall, width, height, s.cfg.BoxSide, s.cfg.BallRadius)
	}
	s.Frame = frame
	s.Ball = NewBall(s.cfg, frame, s.rng)
	s.Box = NewBox(frame, s.cfg.BoxSide, s.cfg.BoxStep)
	s.points = 0
	return nil
}

func (s *Scene) Initialized() bool {
	return s.Ball != nil && s.Box != nil
}

func (s *Scene) mustBeInitialized() {
	if !s.Initialized() {
		panic(ErrNotInitialized)
	}
}

func (s *Scene) Points() int { return s.points }

// ApplyDirection moves the box one step. Unknown directions are ignored.
func (s *Scene) ApplyDirection(d Direction) {
	s.mustBeInitialized()
	step, ok := s.directions[d]
	if !ok {
		return
	}
	s.Box.MoveStep(step[0], step[1])
}

// Control applies every held direction once, in order.
func (s *Scene) Control(held []Direction) {
	for _, d := range held {
		s.ApplyDirection(d)
	}
}

// Tick advances the simulation by one frame.
func (s *Scene) Tick() {
	s.mustBeInitialized()

	if s.Ball.Update() {
		s.Events.Emit(Event{Type: EventRespawn, X: s.Ball.X, Y: s.Ball.Y, Score: s.points})
	}

	if s.Colliding() {
		s.hit()
		return
	}
	if s.Ball.Bounce() {
		s.miss()
	}
}

// Colliding reports whether the ball overlaps the box: the distance from
// the ball centre to the nearest point of the box is below the radius.
// Touching exactly at the radius is not a hit.
func (s *Scene) Colliding() bool {
	cx, cy := s.Box.ClosestPoint(s.Ball.X, s.Ball.Y)
	return dist(cx, cy, s.Ball.X, s.Ball.Y) < s.Ball.Radius
}

func (s *Scene) hit() {
	if !s.Ball.Crash() {
		return
	}
	s.points += s.cfg.HitPoints
	s.Events.Emit(Event{Type: EventHit, X: s.Ball.X, Y: s.Ball.Y, Score: s.points})
}

func (s *Scene) miss() {
	s.points += s.cfg.MissPoints
	s.Events.Emit(Event{Type: EventMiss, X: s.Ball.X, Y: s.Ball.Y, Score: s.points})
}

// ScoreLabel is the text drawn in the top-left corner.
func (s *Scene) ScoreLabel() string {
	return "Points " + strconv.Itoa(s.points)
}

// Draw renders the label, the ball (or its burst) and the box.
func (s *Scene) Draw(c Canvas) {
	s.mustBeInitialized()
	c.Text(s.ScoreLabel(), 10, 50)
	s.Ball.Draw(c)
	s.Box.Draw(c)
}

// Backdrop returns the background parameters for this frame. The ripple
// centre is the crash point while a burst is playing and the origin
// sentinel otherwise.
func (s *Scene) Backdrop(elapsed float64) backdrop.Params {
	s.mustBeInitialized()
	p := backdrop.Params{Width: s.Frame.W, Height: s.Frame.H, Time: elapsed}
	if s.Ball.Crashed {
		p.Ripple = true
		p.BallX, p.BallY = s.Frame.ToScreen(s.Ball.X, s.Ball.Y)
	}
	return p
}
