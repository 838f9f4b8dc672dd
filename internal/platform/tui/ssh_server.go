package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // empty means ~/.asteroids/host_key
	IdleTimeout time.Duration // close sessions idle this long
	MaxSessions int           // 0 means unlimited

	// Game is the simulation config every session starts with.
	Game config.AsteroidsConfig

	// Runtime carries tick rate, key hold and seed. Screen size comes from
	// the PTY. A zero seed gives every session its own.
	Runtime core.RuntimeConfig
}

// DefaultSSHServerConfig returns a config listening on :23234.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultConfig(),
		Runtime:     core.DefaultConfig(),
	}
}

// SSHServer hands every SSH connection its own game. All connections share
// one in-memory hi-score table that lives as long as the server.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
	seq    atomic.Int64
}

// NewSSHServer creates the server; the host key is generated on first use.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids-ssh",
	})

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		// Games still run, they just keep no hi-scores.
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}

	srv := &SSHServer{cfg: cfg, store: store, logger: logger}

	// Middlewares run last to first: the limit check sees the session
	// before the game is created.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.startGame),
			srv.sessionLog,
			srv.limitSessions,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: create ssh server: %w", err)
	}
	srv.server = server

	return srv, nil
}

func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: locate home directory: %w", err)
		}
		path = filepath.Join(home, ".asteroids", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: create host key directory: %w", err)
	}
	return path, nil
}

// sessionSeed returns the configured seed, or a fresh one per session.
func (s *SSHServer) sessionSeed() int64 {
	if s.cfg.Runtime.Seed != 0 {
		return s.cfg.Runtime.Seed
	}
	return time.Now().UnixNano() + s.seq.Add(1)
}

// startGame builds the game and model for one connection. Cues stay
// silent: a speaker would sound on the server, not at the player.
func (s *SSHServer) startGame(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "asteroids needs a terminal: connect with ssh -t")
		return nil, nil
	}

	rt := s.cfg.Runtime
	rt.ScreenW = pty.Window.Width
	rt.ScreenH = pty.Window.Height
	rt.Seed = s.sessionSeed()

	player := sess.User()
	logger := s.logger.With("user", player)
	game := engine.New(s.cfg.Game,
		engine.WithLogger(logger),
		engine.WithRand(rand.New(rand.NewSource(rt.Seed))),
		engine.WithGameOverHandler(ScoreRecorder(s.store, player, logger)),
	)
	logger.Debug("game created", "seed", rt.Seed, "width", rt.ScreenW, "height", rt.ScreenH)

	return NewModel(game, s.store, rt, logger), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) limitSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)

		if s.cfg.MaxSessions > 0 && int(n) > s.cfg.MaxSessions {
			s.logger.Warn("session refused", "user", sess.User(), "active", n-1)
			wish.Fatalln(sess, "server is full, try again later")
			return
		}
		next(sess)
	}
}

func (s *SSHServer) sessionLog(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("session started", "user", sess.User(), "remote", remote, "active", s.Active())
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "remote", remote,
			"duration", time.Since(start).Round(time.Second))
	}
}

// Active returns the number of connected sessions.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve serves until ctx is done or the listener fails.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.cfg.Address, "max_sessions", s.cfg.MaxSessions)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: serve ssh: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits up to 10s for sessions.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
