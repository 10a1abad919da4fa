package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"github.com/plus3/gears/config"
	"github.com/plus3/gears/manager"
	"github.com/plus3/gears/scene"
	"github.com/plus3/gears/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a TOML config file. Defaults are used when empty.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu or mem.")
	iterations := flag.Int("iterations", 0, "Override loop.iterations from the config.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *iterations > 0 {
		cfg.Loop.Iterations = *iterations
	}

	seeds := scene.Default()
	if cfg.Scene.Path != "" {
		loaded, err := scene.Load(cfg.Scene.Path)
		if err != nil {
			return err
		}
		seeds = loaded
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileMode)
	}

	logs, err := manager.NewLogManager(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	display := manager.NewDisplayManager(logs, cfg.Display)
	worlds := manager.NewWorldManager(logs)
	loop := sim.NewLoop(logs, nil,
		sim.WithConfig(cfg.Loop),
		sim.WithSeeds(seeds...),
	)

	// Started in order, stopped in reverse.
	managers := []manager.Manager{logs, display, worlds, loop}
	for _, m := range managers {
		m.Startup()
	}
	defer func() {
		for i := len(managers) - 1; i >= 0; i-- {
			managers[i].Shutdown()
		}
	}()

	report := &Report{
		FrameDuration: cfg.Loop.FrameDuration,
		Entities:      loop.World().Len(),
	}
	runtime.ReadMemStats(&report.MemStatsStart)
	report.Run = loop.Run()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Scheduler = loop.Scheduler().Stats()
	report.World = loop.World().CollectStats()

	return report.Generate(os.Stdout)
}
