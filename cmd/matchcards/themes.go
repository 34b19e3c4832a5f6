package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match-cards/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available tile themes",
	Long:  `Shows the built-in tile themes. Use --theme-file with 'play' for your own.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := theme.List()

	fmt.Println("Available themes:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, t := range themes {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, t := range themes {
		marker := ""
		if t.Name == theme.DefaultName {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxNameLen, t.Name, t.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'matchcards play --theme <name>' to use a theme.")
}
