package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/chaserun/internal/core"
	"github.com/tuigames/chaserun/internal/platform/tui"
	"github.com/tuigames/chaserun/internal/registry"
	"github.com/tuigames/chaserun/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive game menu",
	Long: `Open an interactive menu to pick a game. After a run ends you
return to the menu; tab opens the best-runs scoreboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: scores unavailable: %v\n", err)
			store = nil
		}
		if store != nil {
			defer store.Close()
		}

		cfg := core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		}

		for {
			result, err := tui.RunMenu(store, cfg)
			if err != nil {
				return err
			}
			if result.Quit {
				return nil
			}

			if result.WantsScoreboard {
				goBack, err := tui.RunScoreboard(store, width, height)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
				continue
			}

			game, err := registry.Create(result.GameID)
			if err != nil {
				return err
			}

			// Fresh seed per run unless one was pinned on the command line.
			gameCfg := result.Config
			if flagSeed == 0 {
				gameCfg.Seed = time.Now().UnixNano()
			}

			if err := tui.Run(game, store, gameCfg); err != nil {
				return err
			}
		}
	},
}
