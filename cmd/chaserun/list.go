package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuigames/chaserun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Run: func(cmd *cobra.Command, args []string) {
		games := registry.List()
		if len(games) == 0 {
			fmt.Println("No games registered.")
			return
		}

		fmt.Println("Available games:")
		for _, g := range games {
			fmt.Printf("  %-12s %s\n", g.ID, g.Title)
		}
	},
}
