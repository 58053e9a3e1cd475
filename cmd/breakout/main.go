// breakout is a Breakout clone for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	breakout play            - Play in this terminal
//	breakout window          - Play in a desktop window
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show the score history
//	breakout config          - Print the configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.breakout/scores.db)
//	--store <backend>    - High score backend: sqlite or gdata
//	--config <path>      - Config file (yaml or toml)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/scorekeeper"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagStore    string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce the ball, break the bricks",
	Long: `Breakout is a small brick-breaking game. Keep the ball in play with the
paddle and clear the wall of bricks for points.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the score history
  config   - Print the configuration

Examples:
  breakout play
  breakout window --scale 2
  breakout serve --ssh :2222
  breakout scores
  breakout play --config ./breakout.toml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (steps per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", string(storage.KindSQLite), "High score backend: sqlite or gdata")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. When fallback is nil and no log
// file was given, logs are discarded; terminal play owns the screen.
// A log file is closed by runCleanups.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		onExit(func() { f.Close() })
		out = f
	}
	if out == nil {
		out = io.Discard
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig resolves the game configuration from --config or the search path.
func loadConfig() (config.BreakoutConfig, error) {
	return config.LoadBreakout(flagConfig)
}

// openKeeper opens the selected backend and wraps it in a score keeper.
// Storage failures are not fatal: the game runs without persistence.
func openKeeper(logger *log.Logger) *scorekeeper.Keeper {
	kind, err := storage.ParseKind(flagStore)
	if err != nil {
		logger.Warn("playing without persistence", "err", err)
		return scorekeeper.New(nil, logger)
	}

	backend, err := storage.OpenBackend(kind, flagDBPath)
	if err != nil {
		logger.Warn("could not open score storage, playing without persistence", "store", kind, "err", err)
		return scorekeeper.New(nil, logger)
	}

	logger.Debug("score storage opened", "store", kind)
	onExit(func() {
		if err := backend.Close(); err != nil {
			logger.Warn("cannot close score storage", "err", err)
		}
	})
	return scorekeeper.New(backend, logger)
}

var (
	cleanups []func()
	exit     = os.Exit
)

// onExit registers fn to run on the way out, after the ones registered later.
func onExit(fn func()) {
	cleanups = append(cleanups, fn)
}

// runCleanups runs the registered cleanups in reverse order, once.
func runCleanups() {
	for len(cleanups) > 0 {
		fn := cleanups[len(cleanups)-1]
		cleanups = cleanups[:len(cleanups)-1]
		fn()
	}
}

// exitOnErr prints err and exits when it is not nil. Open stores and log
// files are closed first.
func exitOnErr(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
		runCleanups()
		exit(1)
	}
}
