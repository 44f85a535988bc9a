package sim

// Ball is the moving target. While Crashed it is not drawn or moved; its
// burst animates instead until the last particle fades and the ball resets.
type Ball struct {
	X, Y      float64
	Radius    float64
	Step      float64 // horizontal distance per tick, drawn once per life
	Direction float64 // +1 or -1
	Crashed   bool
	Burst     Burst

	cfg   Config
	frame Frame
	rng   *Rand
}

func NewBall(cfg Config, frame Frame, rng *Rand) *Ball {
	b := &Ball{
		Radius: cfg.BallRadius,
		cfg:    cfg,
		frame:  frame,
		rng:    rng,
	}
	b.Reset()
	return b
}

// Reset starts a new life: fresh random Y and step, heading right from the
// spawn column, no particles.
func (b *Ball) Reset() {
	y := b.rng.RangeF(b.frame.MinY(), b.frame.MaxY())
	x := b.frame.MinX() + b.cfg.BallStartX + b.Radius
	b.X, b.Y = b.frame.ClampRadius(x, y, b.Radius)
	b.Step = b.rng.RangeF(b.cfg.BallStepMin, b.cfg.BallStepMax)
	b.Direction = 1
	b.Crashed = false
	b.Burst.Clear()
}

// Update advances the ball one tick. A live ball moves horizontally; a
// crashed ball animates its burst instead and resets once the burst is
// exhausted. It reports whether the ball respawned.
func (b *Ball) Update() bool {
	if !b.Crashed {
		b.X += b.Step * b.Direction
		return false
	}
	b.Burst.Update(b.cfg.ParticleFade)
	if b.Burst.Empty() {
		b.Reset()
		return true
	}
	return false
}

// Bounce flips the direction when the ball has passed the horizontal bound
// it is travelling towards. A ball already heading back inside is left
// alone, so one crossing flips exactly once. It reports whether a flip
// happened.
func (b *Ball) Bounce() bool {
	if b.Crashed {
		return false
	}
	minX := b.frame.MinX() + b.Radius
	maxX := b.frame.MaxX() - b.Radius
	if (b.Direction > 0 && b.X > maxX) || (b.Direction < 0 && b.X < minX) {
		b.Direction = -b.Direction
		return true
	}
	return false
}

// Crash moves the ball into the crashed state. The burst is spawned only
// when no particles exist yet; it reports whether this call started a new
// burst.
func (b *Ball) Crash() bool {
	b.Crashed = true
	if !b.Burst.Empty() {
		return false
	}
	b.Burst.Spawn(b.rng, b.X, b.Y, b.cfg.BurstSize, b.cfg.ParticleSpeed, b.cfg.ParticleAlpha)
	return true
}

func (b *Ball) Draw(c Canvas) {
	if !b.Crashed {
		sx, sy := b.frame.ToScreen(b.X, b.Y)
		c.Circle(sx, sy, b.Radius)
		return
	}
	for _, p := range b.Burst.P {
		if p.Finished() {
			continue
		}
		sx, sy := b.frame.ToScreen(p.X, p.Y)
		c.Dot(sx, sy, b.cfg.ParticleSize, Palette.Particle, uint8(min(p.Alpha, 255)))
	}
}
