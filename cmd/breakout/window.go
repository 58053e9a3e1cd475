package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/gui"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play Breakout there.

Controls:
  ←/a, →/d        move the paddle
  mouse or touch  press the buttons under the field, or drag the paddle
  r               restart
  esc/q           quit

Examples:
  breakout window
  breakout window --scale 2`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 2, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	defer runCleanups()

	logger, err := newLogger("breakout", os.Stderr)
	exitOnErr("setting up logging", err)

	cfg, err := loadConfig()
	exitOnErr("loading config", err)

	keeper := openKeeper(logger)

	exitOnErr("running game", gui.Run(cfg, keeper, logger, flagFPS, flagScale))
}
