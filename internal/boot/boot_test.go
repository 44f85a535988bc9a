package boot

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ballbox/internal/sim"
)

func TestPickSeed(t *testing.T) {
	now := time.Unix(0, 12345)

	testCases := []struct {
		name string
		flag uint64
		env  string
		want uint64
	}{
		{"flag wins", 7, "99", 7},
		{"env when no flag", 0, "99", 99},
		{"bad env falls back to clock", 0, "banana", 12345},
		{"clock", 0, "", 12345},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PickSeed(tc.flag, tc.env, now))
		})
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := filepath.Join(t.TempDir(), "logs")
	closeLog, err := SetupLogging(true, dir)
	require.NoError(t, err)
	log.Printf("hello")
	closeLog()

	data, err := os.ReadFile(filepath.Join(dir, "ballbox.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	closeLog, err = SetupLogging(false, dir)
	require.NoError(t, err)
	closeLog()
	assert.Equal(t, io.Discard, log.Writer())
}

func TestLogEvents(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	s := sim.NewScene(sim.DefaultConfig(), sim.NewRand(1))
	require.NoError(t, s.Initialize(400, 400))
	LogEvents(s.Events)

	s.Ball.X, s.Ball.Y = 0, 0
	s.Tick()
	assert.Contains(t, buf.String(), "hit at")
	assert.Contains(t, buf.String(), "points=100")

	s.Ball.Crashed = false
	s.Ball.Burst.Clear()
	s.Ball.X, s.Ball.Y = 190, 150
	s.Ball.Direction = 1
	s.Tick()
	assert.Contains(t, buf.String(), "miss at")
	assert.Contains(t, buf.String(), "points=50")
}
