// chaserun is a terminal chase-runner: outrun the pursuer across endless
// procedurally generated terrain, grab the weapon, fight back.
//
// Usage:
//
//	chaserun play [game]      - Play (defaults to the chase runner)
//	chaserun menu             - Start menu to pick games interactively
//	chaserun serve            - Start SSH server for remote play
//	chaserun scores <game>    - Show best runs for a game
//	chaserun list             - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chaserun/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/tuigames/chaserun/internal/games/chase"
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
	Use:   "chaserun",
	Short: "Chase Run - an endless chase in your terminal",
	Long: `Chase Run is a terminal game: a runner flees a pursuing creature
across endless scrolling terrain, picking up a time-limited weapon to
knock it back.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  chaserun play
  chaserun play chase --difficulty hard
  chaserun menu
  chaserun serve --ssh :2222
  chaserun scores chase`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chaserun/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
