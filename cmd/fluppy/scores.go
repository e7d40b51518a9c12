package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/platform/tui"
	"github.com/vovakirdan/fluppy/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display high scores. Without arguments, opens an interactive
scoreboard with one tab per difficulty. With a difficulty name (or with
--plain), prints the top 10 for that difficulty to stdout.

Examples:
  fluppy scores
  fluppy scores hard
  fluppy scores --plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print scores as plain text instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 || flagScoresPlain {
		preset := config.DefaultPresetName
		if len(args) == 1 {
			p, resolveErr := cfg.Resolve(args[0])
			if resolveErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", resolveErr)
				os.Exit(1)
			}
			preset = p.Name
		}
		printScores(store, preset)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, cfg.PresetNames(), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top 10 for one preset as plain text.
func printScores(store *storage.Store, preset string) {
	scores, err := store.TopScores(preset, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n\n", preset)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fluppy play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore(preset)
	if err == nil {
		fmt.Printf("\nBest: %d\n", high)
	}
}
