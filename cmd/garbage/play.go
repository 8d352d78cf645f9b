package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/platform/cell"
	"github.com/vovakirdan/space-garbage/internal/platform/tui"
	"github.com/vovakirdan/space-garbage/internal/sim"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var (
	flagSeed    int64
	flagTickMS  int
	flagBackend string
	flagLogFile string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/hjkl - Thrust
  Space            - Fire (once the plasma gun is unlocked)
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

The terminal is taken over by the game, so logs go to --log-file.

Examples:
  garbage play
  garbage play --seed 7 --tick 80
  garbage play --backend tcell --log-file garbage.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().IntVar(&flagTickMS, "tick", 0, "Tick interval in milliseconds (0 = from config)")
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal backend: tea or tcell")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every spawn, collision and year")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagBackend != backendTea && flagBackend != backendTcell {
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}
	if flagTickMS < 0 {
		return fmt.Errorf("--tick must not be negative, got %d", flagTickMS)
	}

	session, err := loadSession()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()
	session.Logger = logger

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.Cols = w
		rc.Rows = h
	}
	rc.TickInterval = session.Config.TickInterval()
	if flagTickMS > 0 {
		rc.TickInterval = time.Duration(flagTickMS) * time.Millisecond
	}
	rc.Seed = flagSeed

	logger.Info("starting", "backend", flagBackend, "rows", rc.Rows, "cols", rc.Cols, "tick", rc.TickInterval, "seed", rc.Seed)

	var stats sim.Stats
	switch flagBackend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		stats, err = cell.Run(ctx, session, rc)
	default:
		stats, err = tui.Run(session, rc)
	}
	if err != nil {
		return err
	}

	logger.Info("finished", "year", stats.Year, "ticks", stats.Ticks, "shots", stats.Shots, "destroyed", stats.Destroyed)
	fmt.Fprintf(cmd.OutOrStdout(), "Reached %d. Shots fired: %d, garbage destroyed: %d.\n", stats.Year, stats.Shots, stats.Destroyed)
	return nil
}

// loadSession resolves the config and frame set named by the global flags.
func loadSession() (sim.Options, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return sim.Options{}, err
	}

	var frames assets.Set
	if flagFrames != "" {
		frames, err = assets.LoadDir(flagFrames)
	} else {
		frames, err = assets.Default()
	}
	if err != nil {
		return sim.Options{}, err
	}

	return sim.Options{Config: cfg, Frames: frames}, nil
}

// newLogger writes to path, or discards when path is empty.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "garbage",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
