package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	flagResolved bool
	flagFormat   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the embedded default configuration, ready to copy to
~/.breakout/breakout.yaml.

With --resolved, print the configuration that would actually be used
after searching --config, ~/.breakout and ./configs.

Examples:
  breakout config > ~/.breakout/breakout.yaml
  breakout config --resolved --format toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration instead of the defaults")
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format for --resolved: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		exitOnErr("printing config", fmt.Errorf("unknown format %q", flagFormat))
	}

	cfg, err := loadConfig()
	exitOnErr("loading config", err)

	data, err := config.Encode(cfg, format)
	exitOnErr("encoding config", err)
	os.Stdout.Write(data)
}
