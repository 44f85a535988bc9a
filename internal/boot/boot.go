// Package boot holds the process setup shared by both hosts: seed
// selection, log destination and event logging.
package boot

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ballbox/internal/sim"
)

const SeedEnv = "BALLBOX_SEED"

// PickSeed prefers the flag, then the environment, then the clock.
func PickSeed(flagSeed uint64, env string, now time.Time) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if env != "" {
		if v, err := strconv.ParseUint(env, 10, 64); err == nil {
			return v
		}
		log.Printf("ignoring %s=%q: not an unsigned integer", SeedEnv, env)
	}
	return uint64(now.UnixNano())
}

// SetupLogging sends the standard logger to dir/ballbox.log when debug is
// set and discards it otherwise. The returned func closes the file.
func SetupLogging(debug bool, dir string) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "ballbox.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}

// LogEvents writes one line per scene event to the standard logger.
func LogEvents(bus *sim.EventBus) {
	for _, t := range []sim.EventType{sim.EventHit, sim.EventMiss, sim.EventRespawn} {
		bus.Subscribe(t, func(e sim.Event) {
			log.Printf("%s at %.1f,%.1f points=%d", e.Type, e.X, e.Y, e.Score)
		})
	}
}
