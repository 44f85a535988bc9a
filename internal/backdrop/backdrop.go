// Package backdrop evaluates the animated dot-grid background. The desktop
// host runs the same math as a fragment shader; Shade is the CPU version
// used for cell-based surfaces.
package backdrop

import "math"

// Params is what the simulation hands the background every frame.
// BallX, BallY are corner-origin viewport pixels (Y down) and only
// meaningful when Ripple is set; otherwise they hold the origin sentinel.
type Params struct {
	Width, Height float64
	BallX, BallY  float64
	Ripple        bool
	Time          float64 // seconds since start
}

// Pattern constants, shared with the GLSL source.
const (
	BaseLevel    = 0.5
	DotLevel     = 0.6
	IdlePulse    = 1.8
	PulseFreq    = 20.0
	PulseSpeed   = 20.0
	DotScale     = 0.3
	GridSpacing  = 0.026
	GridSoftness = 0.02
)

func smoothstep(e0, e1, x float64) float64 {
	t := (x - e0) / (e1 - e0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// normalize maps a viewport pixel to the shader's uv space: centred,
// Y up, scaled by the shorter side.
func (p Params) normalize(px, py float64) (float64, float64) {
	short := math.Min(p.Width, p.Height)
	if short <= 0 {
		return 0, 0
	}
	gy := p.Height - py
	return (px - 0.5*p.Width) / short, (gy - 0.5*p.Height) / short
}

// Pulse is the radial wave around the ripple centre, in [0, 1], or
// IdlePulse when no ripple is active.
func (p Params) Pulse(u, v float64) float64 {
	if !p.Ripple {
		return IdlePulse
	}
	bu, bv := p.normalize(p.BallX, p.BallY)
	d := math.Max(math.Abs(u-bu), math.Abs(v-bv))
	return math.Sin(d*PulseFreq-p.Time*PulseSpeed)*0.5 + 0.5
}

// Dot returns the grid coverage at uv for a dot of the given size.
func Dot(u, v, size float64) float64 {
	gu := fract(u/GridSpacing+0.5) - 0.5
	gv := fract(v/GridSpacing+0.5) - 0.5
	d := math.Max(math.Abs(gu), math.Abs(gv))
	return 1.0 - smoothstep(size*0.5-GridSoftness, size*0.5+GridSoftness, d)
}

// Shade returns the grey level (0..1) of the background at viewport pixel
// (px, py).
func Shade(p Params, px, py float64) float64 {
	u, v := p.normalize(px, py)
	size := DotScale * (1.0 + p.Pulse(u, v))
	return mix(BaseLevel, DotLevel, Dot(u, v, size))
}
