package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHoldMs     int
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Up/W       - Thrust
  Left/A     - Rotate left
  Right/D    - Rotate right
  Space      - Fire, start, resume, restart
  P/Esc      - Pause
  H          - Hi-scores (from the title screen)
  S          - Toggle sound
  G          - Toggle graphics (glyphs or boxes)
  B          - Toggle debug boxes
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More shield and ammo, faster resupply
  normal - The defaults
  hard   - Less shield and ammo, slower resupply
  fixed  - No level progression, the first wave cap stays

Terminals do not report key releases, so a key counts as held for
--hold-ms after its last press or auto-repeat.

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --config ./my-asteroids.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagHoldMs, "hold-ms", 120, "How long a key press counts as held, in milliseconds")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

// addGameFlags registers the flags selecting the game config.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or .toml)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the config and applies the difficulty preset. The
// flag wins over the preset named in the file.
func loadGameConfig() (config.AsteroidsConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	name := cfg.Difficulty.Preset
	if flagDifficulty != "" {
		name = flagDifficulty
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	cfg.Validate()

	return cfg, nil
}

func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if flagHoldMs > 0 {
		rt.Hold = time.Duration(flagHoldMs) * time.Millisecond
	}
	rt.Muted = flagMute
	return rt
}

func playerName() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if rt.Muted {
		gameCfg.Audio.Enabled = false
	}

	logger, closeLog := openLogger()
	defer closeLog()

	// Scores live for this process only
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}

	cues, closeAudio := audio.NewCues(logger, rt.Seed)

	game := engine.New(gameCfg,
		engine.WithLogger(logger),
		engine.WithCues(cues),
		engine.WithRand(rand.New(rand.NewSource(rt.Seed))),
		engine.WithGameOverHandler(tui.ScoreRecorder(store, playerName(), logger)),
	)
	logger.Info("starting game", "seed", rt.Seed, "difficulty", gameCfg.Difficulty.Preset, "fps", rt.TickRate)

	runErr := tui.Run(game, store, rt, logger)

	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
