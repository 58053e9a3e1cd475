package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best finished games and the stored high score.

The history lives in the SQLite database; the gdata store keeps only the
high score.

Examples:
  breakout scores
  breakout scores --limit 20
  breakout scores -i
  breakout scores --store gdata
  breakout scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history (the high score is kept)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	defer runCleanups()

	kind, err := storage.ParseKind(flagStore)
	exitOnErr("selecting store", err)

	if kind == storage.KindGdata {
		store, err := storage.OpenGdata("")
		exitOnErr("opening gdata store", err)
		onExit(func() { store.Close() })

		high, err := store.LoadHighScore()
		exitOnErr("reading high score", err)
		fmt.Printf("Best: %d\n", high)
		return
	}

	store, err := storage.Open(flagDBPath)
	exitOnErr("opening scores database", err)
	onExit(func() { store.Close() })

	if flagClear {
		exitOnErr("clearing scores", store.ClearScores())
		fmt.Println("Score history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		exitOnErr("running scoreboard", tui.RunScoreboard(store, width, height))
		return
	}

	scores, err := store.TopScores(flagLimit)
	exitOnErr("retrieving scores", err)

	fmt.Println("High Scores - Breakout")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if high, err := store.LoadHighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Games: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
}
