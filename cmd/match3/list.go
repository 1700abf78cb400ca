package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/games/match3/layouts"
	"github.com/vovakirdan/match3/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and built-in layouts",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Layouts:")
	fmt.Println()
	for _, name := range layouts.Names() {
		l, err := layouts.Builtin(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-8s  %s\n", l.Name, l.Description)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play <id>' to play, add '--layout <name>' to pick a board.")
}
