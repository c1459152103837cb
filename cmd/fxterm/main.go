// Command fxterm runs the particle field and the runner in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"voxelfolio/config"
	"voxelfolio/runner"
	"voxelfolio/sfx"
	"voxelfolio/starfield"
	"voxelfolio/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fxterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("fxterm", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	// the tty belongs to the screen
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	seed := cfg.SeedOrNow()
	rcfg := runner.DefaultConfig()
	var spawner runner.Spawner = runner.NewRandomSpawner(rcfg, rand.New(rand.NewSource(seed+1)))
	if cfg.SpawnScript != "" {
		s, err := runner.LoadScriptSpawner(cfg.SpawnScript, spawner)
		if err != nil {
			return err
		}
		spawner = s
	}

	sound := sfx.New()
	if !cfg.Mute {
		if err := sound.Init(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	fcfg := starfield.DefaultConfig()
	fcfg.StarCount = cfg.StarCount

	host := term.NewHost(screen, term.Options{
		TPS:       cfg.TPS,
		Starfield: fcfg,
		Runner:    rcfg,
		Spawner:   spawner,
		Rng:       rand.New(rand.NewSource(seed)),
		Debug:     cfg.Debug,
		OnEvent:   sound.OnEvent,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("fxterm started (seed %d)", seed)
	return host.Run(ctx)
}
