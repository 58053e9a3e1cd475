package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Play Breakout in the current terminal.

Controls:
  ←/a, →/d   move the paddle (held for a moment after each press)
  mouse      click the ◀ Restart ▶ buttons, or drag inside the field
  r          restart
  q          quit

Logs are discarded unless --log-file is given.

Examples:
  breakout play
  breakout play --fps 30
  breakout play --config ./breakout.toml --log-file breakout.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	defer runCleanups()

	logger, err := newLogger("breakout", nil)
	exitOnErr("setting up logging", err)

	cfg, err := loadConfig()
	exitOnErr("loading config", err)

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	keeper := openKeeper(logger)

	exitOnErr("running game", tui.Run(cfg, runtime, keeper, logger))
}
