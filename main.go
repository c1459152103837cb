package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"voxelfolio/config"
	"voxelfolio/game"
	"voxelfolio/runner"
	"voxelfolio/sfx"
)

func main() {
	cfg, err := config.Load(filepath.Base(os.Args[0]), os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	seed := cfg.SeedOrNow()
	gc := game.DefaultConfig()
	gc.ScreenWidth, gc.ScreenHeight = cfg.ScreenWidth, cfg.ScreenHeight
	gc.Starfield.StarCount = cfg.StarCount
	gc.Seed = seed
	gc.Debug = cfg.Debug
	gc.FrameDropFPS = cfg.FrameDropFPS
	if cfg.Profile {
		gc.ProfileDir = cfg.ProfileDir
	}

	var fallback runner.Spawner = runner.NewRandomSpawner(gc.Runner, rand.New(rand.NewSource(seed+1)))
	gc.Spawner = fallback
	if cfg.SpawnScript != "" {
		s, err := runner.LoadScriptSpawner(cfg.SpawnScript, fallback)
		if err != nil {
			log.Fatal(err)
		}
		gc.Spawner = s
		log.Printf("Spawning obstacles from %s", cfg.SpawnScript)
	}

	sound := sfx.New()
	if !cfg.Mute {
		// Non-fatal, the game runs without sound
		if err := sound.Init(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer sound.Close()
	gc.OnEvent = sound.OnEvent

	g, err := game.NewGame(gc, nil)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if icons, err := game.WindowIcons(); err != nil {
		log.Printf("Window icon unavailable: %v", err)
	} else {
		ebiten.SetWindowIcon(icons)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
