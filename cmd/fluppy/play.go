package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/game"
	"github.com/vovakirdan/fluppy/internal/platform/tui"
	"github.com/vovakirdan/fluppy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. Without a difficulty override the menu lets you
pick one; with --difficulty (or the FLUPPY_DIFFICULTY environment
variable) the menu is skipped and restarts stay on that preset.

Controls:
  Space/Up      - Flap (also confirm and restart)
  W/S, arrows   - Move menu highlight
  Enter         - Confirm
  R             - Restart after game over
  Q/Ctrl+C      - Quit

Examples:
  fluppy play
  fluppy play --difficulty hard
  fluppy play --config ./my-fluppy.yaml
  FLUPPY_DIFFICULTY=easy fluppy play`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "fluppy"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	g := game.New(&cfg)
	if preset, ok := resolvePreset(&cfg, logger); ok {
		g.ForcePreset(preset)
	}

	// Terminal size for the initial projection
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolvePreset picks the forced difficulty, flag over environment. An
// unknown name falls back to the default preset but still skips the menu.
func resolvePreset(cfg *config.Config, logger *log.Logger) (config.Preset, bool) {
	if flagDifficulty != "" {
		preset, err := cfg.Resolve(flagDifficulty)
		if err != nil {
			var unknownErr *config.UnknownPresetError
			if errors.As(err, &unknownErr) {
				logger.Warn("unknown difficulty, using default",
					"requested", unknownErr.Name,
					"default", config.DefaultPresetName,
				)
			}
			return cfg.DefaultPreset(), true
		}
		return preset, true
	}

	preset, ok, err := cfg.PresetFromEnv()
	if err != nil {
		logger.Warn("unknown difficulty in environment, using default",
			"var", config.EnvDifficulty,
			"default", config.DefaultPresetName,
		)
	}
	return preset, ok
}
