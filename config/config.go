// Package config holds the settings shared by the desktop and terminal hosts.
//
// Values are layered: Default, then an optional .env file, then VOXEL_*
// environment variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "VOXEL_"

// Config holds host configuration.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	Title string

	// TPS is the simulation rate of the desktop host and the frame rate of
	// the terminal host.
	TPS int

	// StarCount is the size of the star population
	StarCount int

	// Seed feeds every random source. Zero picks one from the clock.
	Seed int64

	Mute bool

	// SpawnScript is an optional JavaScript obstacle spawner
	SpawnScript string

	// Profile enables CPU profile capture when the frame rate drops
	Profile    bool
	ProfileDir string

	// FrameDropFPS is the rate below which a profile is captured
	FrameDropFPS float64

	// Debug shows the overlay at startup
	Debug bool

	// LogFile receives log output. The terminal host needs one because the
	// tty belongs to the screen.
	LogFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		Title:        "voxelfolio",
		TPS:          60,
		StarCount:    400,
		ProfileDir:   "profiles",
		FrameDropFPS: 30,
	}
}

// Load builds a Config for a binary called name from the environment and
// args (without the program name). It returns flag.ErrHelp when -h is given.
func Load(name string, args []string) (Config, error) {
	envFile := os.Getenv(EnvPrefix + "ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := Default()
	if err := cfg.fromEnv(); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "window width")
	fs.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "window height")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "simulation ticks per second")
	fs.IntVar(&cfg.StarCount, "stars", cfg.StarCount, "number of stars")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = from clock)")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound")
	fs.StringVar(&cfg.SpawnScript, "spawn-script", cfg.SpawnScript, "JavaScript obstacle spawner")
	fs.BoolVar(&cfg.Profile, "profile", cfg.Profile, "capture a CPU profile on frame drops")
	fs.StringVar(&cfg.ProfileDir, "profile-dir", cfg.ProfileDir, "profile output directory")
	fs.Float64Var(&cfg.FrameDropFPS, "frame-drop-fps", cfg.FrameDropFPS, "frame rate that triggers a profile")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show the debug overlay")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(os.Stderr)
			fs.PrintDefaults()
		}
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no host can run with.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	if c.StarCount < 0 {
		return fmt.Errorf("invalid star count %d", c.StarCount)
	}
	return nil
}

// SeedOrNow returns Seed, or the current time when Seed is zero.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c *Config) fromEnv() error {
	var err error
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && err == nil {
			n, perr := strconv.Atoi(v)
			if perr != nil {
				err = fmt.Errorf("%s%s: %w", EnvPrefix, key, perr)
				return
			}
			*dst = n
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && err == nil {
			b, perr := strconv.ParseBool(v)
			if perr != nil {
				err = fmt.Errorf("%s%s: %w", EnvPrefix, key, perr)
				return
			}
			*dst = b
		}
	}

	num("WIDTH", &c.ScreenWidth)
	num("HEIGHT", &c.ScreenHeight)
	str("TITLE", &c.Title)
	num("TPS", &c.TPS)
	num("STARS", &c.StarCount)
	boolean("MUTE", &c.Mute)
	str("SPAWN_SCRIPT", &c.SpawnScript)
	boolean("PROFILE", &c.Profile)
	str("PROFILE_DIR", &c.ProfileDir)
	boolean("DEBUG", &c.Debug)
	str("LOG", &c.LogFile)

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok && err == nil {
		n, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, perr)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv(EnvPrefix + "FRAME_DROP_FPS"); ok && err == nil {
		f, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return fmt.Errorf("%sFRAME_DROP_FPS: %w", EnvPrefix, perr)
		}
		c.FrameDropFPS = f
	}
	return err
}
