package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/chaserun/internal/config"
	"github.com/tuigames/chaserun/internal/core"
	"github.com/tuigames/chaserun/internal/games/chase"
	"github.com/tuigames/chaserun/internal/platform/tui"
	"github.com/tuigames/chaserun/internal/registry"
	"github.com/tuigames/chaserun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Play a game directly without the menu.

Examples:
  chaserun play
  chaserun play chase --difficulty hard
  chaserun play chase --config my-tuning.yaml
  chaserun play chase --seed 12345`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := "chase"
		if len(args) > 0 {
			gameID = args[0]
		}

		if !registry.Exists(gameID) {
			ids := make([]string, 0, len(registry.List()))
			for _, g := range registry.List() {
				ids = append(ids, g.ID)
			}
			return fmt.Errorf("unknown game %q (available: %s)", gameID, strings.Join(ids, ", "))
		}

		// Get terminal size
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}

		if gameID == "chase" {
			if flagConfig != "" {
				chase.SetConfigPath(flagConfig)
			}
			if flagDifficulty != "" {
				preset := config.DifficultyPreset(flagDifficulty)
				switch preset {
				case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
					chase.SetDifficulty(preset)
				default:
					return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
				}
			}
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return err
		}

		cfg := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}

		// Open storage; the game runs fine without it.
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: scores unavailable: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		return tui.Run(game, store, cfg)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning file")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard or fixed")
}
