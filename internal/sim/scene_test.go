package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScene_TickBeforeInitializePanics(t *testing.T) {
	s := NewScene(DefaultConfig(), NewRand(1))

	assert.PanicsWithValue(t, ErrNotInitialized, func() { s.Tick() })
	assert.PanicsWithValue(t, ErrNotInitialized, func() { s.ApplyDirection(DirUp) })
	assert.PanicsWithValue(t, ErrNotInitialized, func() { s.Draw(&recordingCanvas{}) })
	assert.False(t, s.Initialized())
}

func TestScene_Initialize(t *testing.T) {
	s := newTestScene(1)

	require.True(t, s.Initialized())
	assert.Equal(t, -14.0, s.Box.X)
	assert.Equal(t, -14.0, s.Box.Y)
	assert.Equal(t, -186.0, s.Ball.X)
	assert.Equal(t, 0, s.Points())

	t.Run("too small", func(t *testing.T) {
		s := NewScene(DefaultConfig(), NewRand(1))
		err := s.Initialize(20, 400)
		assert.ErrorIs(t, err, ErrPlayfieldTooSmall)
		assert.False(t, s.Initialized())
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ParticleFade = 0
		s := NewScene(cfg, NewRand(1))
		assert.ErrorIs(t, s.Initialize(400, 400), ErrInvalidConfig)
	})
}

func TestScene_InitializeAgainIsHardReset(t *testing.T) {
	s := newTestScene(3)
	s.ApplyDirection(DirRight)
	s.Ball.X = 187
	s.Tick()
	require.Equal(t, -50, s.Points())

	require.NoError(t, s.Initialize(800, 600))
	assert.Equal(t, 0, s.Points())
	assert.Equal(t, -14.0, s.Box.X)
	assert.Equal(t, -14.0, s.Box.Y)
	assert.Equal(t, -386.0, s.Ball.X)
	assert.Equal(t, 800.0, s.Frame.W)
}

func TestScene_ApplyDirection(t *testing.T) {
	s := newTestScene(1)

	s.ApplyDirection(DirUp)
	assert.Equal(t, -15.0, s.Box.Y)
	s.ApplyDirection(DirDown)
	assert.Equal(t, -14.0, s.Box.Y)
	s.ApplyDirection(DirLeft)
	assert.Equal(t, -15.0, s.Box.X)
	s.ApplyDirection(DirRight)
	assert.Equal(t, -14.0, s.Box.X)

	s.ApplyDirection(DirNone)
	s.ApplyDirection(Direction(99))
	assert.Equal(t, -14.0, s.Box.X, "unknown directions are ignored")
	assert.Equal(t, -14.0, s.Box.Y)

	s.Control([]Direction{DirUp, DirRight})
	assert.Equal(t, -13.0, s.Box.X, "two held keys move diagonally")
	assert.Equal(t, -15.0, s.Box.Y)
}

func TestScene_BoxClampedUnderInput(t *testing.T) {
	s := newTestScene(1)
	for rangeIter := 0; rangeIter < 500; rangeIter++ {
		s.Control([]Direction{DirLeft, DirUp})
		s.Tick()
	}
	assert.Equal(t, -200.0, s.Box.X)
	assert.Equal(t, -200.0, s.Box.Y)

	for rangeIter := 0; rangeIter < 500; rangeIter++ {
		s.Control([]Direction{DirRight, DirDown})
	}
	assert.Equal(t, 172.0, s.Box.X)
	assert.Equal(t, 172.0, s.Box.Y)
}

func TestScene_Colliding(t *testing.T) {
	s := newTestScene(1)
	// Box spans [-14, 14] on both axes.
	testCases := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"far away", -186, 0, false},
		{"touching left face at radius", -28, 0, false},
		{"just inside radius", -27.9, 0, true},
		{"centre inside box", 0, 0, true},
		{"diagonal off corner beyond radius", -24, -24, false},
		{"diagonal off corner within radius", -24, -23, true},
		{"bottom-right corner beyond radius", 24, 24, false},
		{"below face within radius", 5, 27, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s.Ball.X, s.Ball.Y = tc.x, tc.y
			assert.Equal(t, tc.expect, s.Colliding())
		})
	}
}

func TestScene_HitScenario(t *testing.T) {
	s := newTestScene(11)

	var hits []Event
	s.Events.Subscribe(EventHit, func(e Event) { hits = append(hits, e) })

	// Corner coordinates (14, 200) on a 400x400 viewport.
	s.Ball.X, s.Ball.Y = s.Frame.ToScene(14, 200)
	s.Ball.Step = 1
	s.Ball.Direction = 1
	bx, by := s.Frame.ToScreen(s.Box.X, s.Box.Y)
	require.Equal(t, 186.0, bx)
	require.Equal(t, 186.0, by)

	for rangeIter := 0; rangeIter < 200; rangeIter++ {
		s.Tick()
		if s.Ball.Crashed {
			break
		}
	}

	require.True(t, s.Ball.Crashed)
	sx, _ := s.Frame.ToScreen(s.Ball.X, s.Ball.Y)
	assert.Equal(t, 173.0, sx, "hit registers once the ball is within one radius of the box face")
	assert.LessOrEqual(t, sx, 186.0)
	assert.Equal(t, 100, s.Points())
	require.Equal(t, 30, s.Ball.Burst.Len())
	for _, p := range s.Ball.Burst.P {
		assert.Equal(t, s.Ball.X, p.X)
		assert.Equal(t, s.Ball.Y, p.Y)
		assert.Equal(t, 255, p.Alpha)
	}
	require.Len(t, hits, 1)
	assert.Equal(t, 100, hits[0].Score)
}

func TestScene_NoDoubleHitWhileCrashed(t *testing.T) {
	s := newTestScene(4)
	s.Ball.X, s.Ball.Y = 0, 0
	s.Ball.Step = 0.5

	s.Tick()
	require.True(t, s.Ball.Crashed)
	require.Equal(t, 100, s.Points())

	for rangeIter := 0; rangeIter < 5; rangeIter++ {
		s.Tick()
		require.True(t, s.Colliding(), "the frozen ball still overlaps the box")
		assert.Equal(t, 100, s.Points())
		assert.LessOrEqual(t, s.Ball.Burst.Len(), 30)
	}
}

func TestScene_BurstEndsInRespawn(t *testing.T) {
	s := newTestScene(8)
	respawns := 0
	s.Events.Subscribe(EventRespawn, func(Event) { respawns++ })

	s.Ball.X, s.Ball.Y = 0, 0
	s.Ball.Step = 1
	s.Tick()
	require.True(t, s.Ball.Crashed)

	for rangeIter := 0; rangeIter < 8; rangeIter++ {
		s.Tick()
		require.True(t, s.Ball.Crashed)
	}
	s.Tick()

	assert.False(t, s.Ball.Crashed)
	assert.Equal(t, 1, respawns)
	assert.True(t, s.Ball.Burst.Empty())
	assert.Equal(t, -186.0, s.Ball.X)
	assert.Equal(t, 1.0, s.Ball.Direction)
	assert.NotEqual(t, 1.0, s.Ball.Step)
	assert.NotEqual(t, 0.0, s.Ball.Y)
	assert.Equal(t, 100, s.Points(), "respawning does not score")
}

func TestScene_MissScenario(t *testing.T) {
	s := newTestScene(6)

	var misses []Event
	s.Events.Subscribe(EventMiss, func(e Event) { misses = append(misses, e) })

	s.Ball.X = s.Frame.MaxX() - s.Ball.Radius + 1
	s.Ball.Y = 150
	s.Ball.Step = 1
	startX, startY := s.Ball.X, s.Ball.Y

	s.Tick()

	assert.Equal(t, -50, s.Points())
	assert.Equal(t, -1.0, s.Ball.Direction)
	assert.Equal(t, startX+1, s.Ball.X, "only the regular step is applied")
	assert.Equal(t, startY, s.Ball.Y)
	assert.Equal(t, 1.0, s.Ball.Step)
	assert.False(t, s.Ball.Crashed)
	require.Len(t, misses, 1)
	assert.Equal(t, -50, misses[0].Score)

	for rangeIter := 0; rangeIter < 10; rangeIter++ {
		s.Tick()
	}
	assert.Equal(t, -50, s.Points(), "one crossing costs exactly one miss")
}

func TestScene_ScoreCanGoNegative(t *testing.T) {
	s := newTestScene(2)
	s.Ball.Y = 150
	s.Ball.Step = 1

	for rangeIter := 0; rangeIter < 3; rangeIter++ {
		s.Ball.X = 190
		s.Ball.Direction = 1
		s.Tick()
	}
	assert.Equal(t, -150, s.Points())
}

func TestScene_Draw(t *testing.T) {
	s := newTestScene(1)
	s.Ball.X, s.Ball.Y = -100, 50

	c := &recordingCanvas{}
	s.Draw(c)
	assert.Equal(t, []string{
		"text Points 0",
		"circle 100.00,250.00 r=14.00",
		"square 186.00,186.00 w=28.00",
	}, c.calls)

	s.Ball.X, s.Ball.Y = 0, 0
	s.Tick()
	c = &recordingCanvas{}
	s.Draw(c)
	assert.Equal(t, []string{"Points 100"}, c.texts)
	assert.Equal(t, 30, c.dots)
}

func TestScene_Backdrop(t *testing.T) {
	s := newTestScene(1)

	p := s.Backdrop(1.5)
	assert.Equal(t, 400.0, p.Width)
	assert.Equal(t, 400.0, p.Height)
	assert.Equal(t, 1.5, p.Time)
	assert.False(t, p.Ripple)
	assert.Equal(t, 0.0, p.BallX, "origin sentinel while the ball is alive")
	assert.Equal(t, 0.0, p.BallY)

	s.Ball.X, s.Ball.Y = 5, -3
	s.Tick()
	require.True(t, s.Ball.Crashed)

	p = s.Backdrop(2)
	assert.True(t, p.Ripple)
	assert.InDelta(t, 205.0+s.Ball.Step, p.BallX, 1e-9)
	assert.Equal(t, 197.0, p.BallY)
}
