package sim

// Particle is one fragment of a ball burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  int // starts at Config.ParticleAlpha, never increases
}

// Move advances the particle one tick and fades it.
func (p *Particle) Move(fade int) {
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= fade
}

func (p *Particle) Finished() bool {
	return p.Alpha <= 0
}

// Burst is the particle set owned by a crashed ball.
type Burst struct {
	P []Particle
}

// Spawn appends n particles at (x, y), each with an independently drawn
// velocity in [-speed, speed) on both axes.
func (b *Burst) Spawn(r *Rand, x, y float64, n int, speed float64, alpha int) {
	for rangeIter := 0; rangeIter < n; rangeIter++ {
		b.P = append(b.P, Particle{
			X: x, Y: y,
			VX: r.RangeF(-speed, speed), VY: r.RangeF(-speed, speed),
			Alpha: alpha,
		})
	}
}

// Update moves every particle, then drops the finished ones in place.
func (b *Burst) Update(fade int) {
	alive := b.P[:0]
	for i := range b.P {
		p := b.P[i]
		p.Move(fade)
		if p.Finished() {
			continue
		}
		alive = append(alive, p)
	}
	b.P = alive
}

func (b *Burst) Len() int { return len(b.P) }

func (b *Burst) Empty() bool { return len(b.P) == 0 }

func (b *Burst) Clear() {
	b.P = b.P[:0]
}
