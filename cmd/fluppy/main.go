// fluppy is a terminal rendition of the tap-to-fly arcade game.
//
// Usage:
//
//	fluppy                   - Play (same as 'fluppy play')
//	fluppy play              - Play the game
//	fluppy serve             - Start SSH server for remote play
//	fluppy scores            - Show high scores per difficulty
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.fluppy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fluppy",
	Short: "Fluppy - tap-to-fly arcade game in your terminal",
	Long: `Fluppy is a terminal arcade game: flap through the pipe gaps,
pick your difficulty, chase your high score.

Available commands:
  play     - Play the game (default when no command is given)
  serve    - Start SSH server for remote play
  scores   - View high scores per difficulty

Examples:
  fluppy
  fluppy play --difficulty hard
  fluppy serve --ssh :2222
  fluppy scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fluppy/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
