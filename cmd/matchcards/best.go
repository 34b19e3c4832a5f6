package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match-cards/internal/storage"
)

var flagBestReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best time",
	Long: `Print the best completion time stored in the best time file.

Examples:
  matchcards best
  matchcards best --reset
  matchcards best --best-file ./time.txt`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagBestReset, "reset", false, "Delete the stored best time")
}

func runBest(_ *cobra.Command, _ []string) {
	best, err := storage.NewBestTimeFile(flagBestFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagBestReset {
		if err := best.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best time cleared.")
		return
	}

	secs, err := best.Load()
	switch {
	case err == nil:
		fmt.Printf("Best time: %ds (%s)\n", secs, best.Path())
	case errors.Is(err, os.ErrNotExist):
		fmt.Println("No best time recorded yet.")
	case errors.Is(err, storage.ErrCorruptBestTime):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Println("Games fall back to the default best time until the file is reset or rewritten.")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
