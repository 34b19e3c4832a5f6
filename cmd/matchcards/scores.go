package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/match-cards/internal/platform/tui"
	"github.com/vovakirdan/match-cards/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished games",
	Long: `Display the fastest (or most recent) finished games.

Examples:
  matchcards scores
  matchcards scores --limit 20
  matchcards scores --recent
  matchcards scores --tui
  matchcards scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent games instead of the fastest")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse results in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded games")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunResults(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "Fastest games"
	results, err := store.FastestResults(flagScoresLimit)
	if flagScoresRecent {
		title = "Recent games"
		results, err = store.RecentResults(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'matchcards play' to set the first time!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %s\n", "Rank", "Time", "Moves", "Theme", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-10s  %s\n", "----", "----", "-----", "-----", "----")

	for i, r := range results {
		mark := ""
		if r.NewRecord {
			mark = " *"
		}
		fmt.Printf("  %-4d  %-6s  %-5d  %-10s  %s%s\n",
			i+1, fmt.Sprintf("%ds", r.ElapsedSecs), r.Moves, r.Theme, r.CreatedAt.Format("2006-01-02 15:04"), mark)
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Fastest: %ds  Average: %.0fs  Records: %d\n",
			stats.GamesCount, stats.FastestSecs, stats.AvgSecs, stats.Records)
	}
}
