package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"ballbox/internal/boot"
	"ballbox/internal/game"
	"ballbox/internal/sim"
	"ballbox/internal/term"
)

var (
	termFlag   = flag.Bool("term", false, "play in the terminal instead of a window")
	seedFlag   = flag.Uint64("seed", 0, "random seed; 0 uses $"+boot.SeedEnv+" or the clock")
	configFlag = flag.String("config", "", "TOML file overriding the default tuning, e.g. ballbox.toml")
	debugFlag  = flag.Bool("debug", false, "write a debug log to logs/ballbox.log")
)

func main() {
	flag.Parse()

	closeLog, err := boot.SetupLogging(*debugFlag, "logs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	err = run()
	if err != nil {
		log.Printf("exit: %v", err)
	}
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ballbox: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := sim.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = sim.LoadConfig(*configFlag); err != nil {
			return err
		}
	}

	seed := boot.PickSeed(*seedFlag, os.Getenv(boot.SeedEnv), time.Now())
	scene := sim.NewScene(cfg, sim.NewRand(seed))
	boot.LogEvents(scene.Events)
	log.Printf("start seed=%d term=%v", seed, *termFlag)

	if *termFlag {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return term.Run(ctx, scene, cfg.TickPeriod)
	}
	return game.RunDesktop(scene)
}
