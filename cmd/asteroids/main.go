// asteroids is a terminal asteroids game.
//
// Usage:
//
//	asteroids play           - Play in this terminal
//	asteroids serve          - Start SSH server for remote play
//	asteroids config         - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible spawns
//	--log <path>        - Log file (default: ~/.asteroids/asteroids.log)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - fly, shoot and survive in your terminal",
	Long: `Asteroids is a terminal rendition of the arcade classic.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids serve --ssh :2222
  asteroids config --config ./my-asteroids.toml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.asteroids/asteroids.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger returns a logger writing to the --log file and a func closing
// it. The TUI owns the terminal, so logs never go to stdout. When the file
// cannot be opened the logger discards everything.
func openLogger() (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var w io.Writer = io.Discard
	closeFn := func() {}

	if path := expandHome(flagLogPath); path != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
			f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if openErr == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           level,
	})
	return logger, closeFn
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}
