package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, smoothstep(0, 1, -1))
	assert.Equal(t, 1.0, smoothstep(0, 1, 2))
	assert.Equal(t, 0.5, smoothstep(0, 1, 0.5))
}

func TestFract(t *testing.T) {
	assert.InDelta(t, 0.25, fract(3.25), 1e-12)
	assert.InDelta(t, 0.75, fract(-0.25), 1e-12)
}

func TestPulse_IdleSentinel(t *testing.T) {
	p := Params{Width: 400, Height: 300, Time: 12.5}
	for _, uv := range [][2]float64{{0, 0}, {0.3, -0.2}, {-1, 1}} {
		assert.Equal(t, IdlePulse, p.Pulse(uv[0], uv[1]))
	}
}

func TestPulse_Ripple(t *testing.T) {
	p := Params{Width: 400, Height: 400, BallX: 200, BallY: 200, Ripple: true}

	// At the ripple centre the wave is sin(0)*0.5+0.5.
	assert.InDelta(t, 0.5, p.Pulse(0, 0), 1e-12)

	for _, uv := range [][2]float64{{0.1, 0}, {0.4, 0.4}, {-0.3, 0.2}} {
		v := p.Pulse(uv[0], uv[1])
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	// Chebyshev distance: points on the same square ring share a value.
	assert.InDelta(t, p.Pulse(0.2, 0), p.Pulse(0.2, 0.15), 1e-12)
	assert.InDelta(t, p.Pulse(0, -0.2), p.Pulse(-0.1, -0.2), 1e-12)

	// The wave travels with time.
	later := p
	later.Time = 0.05
	assert.NotEqual(t, p.Pulse(0.1, 0), later.Pulse(0.1, 0))
}

func TestDot(t *testing.T) {
	// Grid cell centre is always covered for any sensible dot size.
	assert.Equal(t, 1.0, Dot(0, 0, 0.6))
	// A gap line halfway between cells is uncovered for a small dot.
	assert.Equal(t, 0.0, Dot(GridSpacing/2, 0, 0.3))
}

func TestShade_Range(t *testing.T) {
	testCases := []struct {
		name string
		p    Params
	}{
		{"idle", Params{Width: 800, Height: 600, Time: 3}},
		{"ripple", Params{Width: 800, Height: 600, BallX: 100, BallY: 500, Ripple: true, Time: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for px := 0.0; px < tc.p.Width; px += 37 {
				for py := 0.0; py < tc.p.Height; py += 29 {
					v := Shade(tc.p, px, py)
					assert.GreaterOrEqual(t, v, BaseLevel-1e-12)
					assert.LessOrEqual(t, v, DotLevel+1e-12)
				}
			}
		})
	}
}

func TestShade_DegenerateViewport(t *testing.T) {
	assert.NotPanics(t, func() { Shade(Params{}, 10, 10) })
}
