package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve asteroids over SSH",
	Long: `Run an SSH server where every connection plays its own game.

Hi-scores are shared by all connections and kept in memory until the
server stops. Remote sessions have no sound.

The host key is read from --host-key, or generated on first start at
~/.asteroids/host_key.

Examples:
  asteroids serve
  asteroids serve --ssh :2222 --max-sessions 20
  asteroids serve --difficulty hard --idle-timeout 10m

Players connect with:
  ssh -t <host> -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect sessions idle this long")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 0, "Refuse connections beyond this many (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig()
	// Zero lets every session pick its own seed.
	rt.Seed = flagSeed

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: flagIdleTimeout,
		MaxSessions: flagMaxSessions,
		Game:        gameCfg,
		Runtime:     rt,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("asteroids SSH server on %s (Ctrl+C to stop)\n", server.Addr())
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
