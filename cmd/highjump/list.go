package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/highjump/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered game mode, including hidden ones.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		line := fmt.Sprintf("  %-*s  %s", maxIDLen, g.ID, g.Title)
		if g.Description != "" {
			line += " - " + g.Description
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'highjump play <id>' to start a mode.")
}
