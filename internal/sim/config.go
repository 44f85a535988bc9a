package sim

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrPlayfieldTooSmall = errors.New("playfield too small")
	ErrNotInitialized    = errors.New("scene not initialized")
)

// MinTickPeriod is the shortest host frame cadence Validate accepts.
const MinTickPeriod = time.Millisecond

// Config holds the tunable sketch parameters.
type Config struct {
	// Timing
	TickPeriod time.Duration `toml:"tick_period"` // Host frame cadence; the core itself is tick driven

	// Ball
	BallRadius  float64 `toml:"ball_radius"`   // Constant for the lifetime of the scene
	BallStartX  float64 `toml:"ball_start_x"`  // Spawn X measured from the left edge, before adding the radius
	BallStepMin float64 `toml:"ball_step_min"` // Horizontal step per tick, drawn once per life
	BallStepMax float64 `toml:"ball_step_max"`

	// Box
	BoxSide float64 `toml:"box_side"`
	BoxStep float64 `toml:"box_step"` // Distance moved per held direction per tick

	// Burst
	BurstSize     int     `toml:"burst_size"`
	ParticleSpeed float64 `toml:"particle_speed"` // Each velocity axis is drawn from [-speed, speed)
	ParticleAlpha int     `toml:"particle_alpha"`
	ParticleFade  int     `toml:"particle_fade"` // Alpha lost per tick
	ParticleSize  float64 `toml:"particle_size"`

	// Score
	HitPoints  int `toml:"hit_points"`
	MissPoints int `toml:"miss_points"`
}

// DefaultConfig returns a Config with the sketch's original values.
func DefaultConfig() Config {
	return Config{
		TickPeriod: time.Second / 60,

		BallRadius:  14,
		BallStartX:  0,
		BallStepMin: 0.1,
		BallStepMax: 1.0,

		BoxSide: 28,
		BoxStep: 1,

		BurstSize:     30,
		ParticleSpeed: 8,
		ParticleAlpha: 255,
		ParticleFade:  30,
		ParticleSize:  8,

		HitPoints:  100,
		MissPoints: -50,
	}
}

// Validate reports the first field that cannot drive a scene.
func (c Config) Validate() error {
	switch {
	case c.TickPeriod < MinTickPeriod:
		return fmt.Errorf("%w: tick_period must be at least %v, got %v", ErrInvalidConfig, MinTickPeriod, c.TickPeriod)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ballRadius must be positive, got %v", ErrInvalidConfig, c.BallRadius)
	case c.BallStepMin < 0 || c.BallStepMax < c.BallStepMin:
		return fmt.Errorf("%w: ball step range [%v, %v]", ErrInvalidConfig, c.BallStepMin, c.BallStepMax)
	case c.BoxSide <= 0:
		return fmt.Errorf("%w: boxSide must be positive, got %v", ErrInvalidConfig, c.BoxSide)
	case c.BoxStep <= 0:
		return fmt.Errorf("%w: boxStep must be positive, got %v", ErrInvalidConfig, c.BoxStep)
	case c.BurstSize <= 0:
		return fmt.Errorf("%w: burstSize must be positive, got %d", ErrInvalidConfig, c.BurstSize)
	case c.ParticleAlpha <= 0:
		return fmt.Errorf("%w: particleAlpha must be positive, got %d", ErrInvalidConfig, c.ParticleAlpha)
	case c.ParticleFade <= 0:
		return fmt.Errorf("%w: particleFade must be positive, got %d", ErrInvalidConfig, c.ParticleFade)
	case c.ParticleSpeed < 0:
		return fmt.Errorf("%w: particleSpeed must not be negative, got %v", ErrInvalidConfig, c.ParticleSpeed)
	}
	return nil
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from
// the file keep their default values; unknown keys are rejected.
// tick_period takes a duration string such as "16ms".
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
