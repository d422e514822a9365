package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best games, or the most recent ones, with overall stats.

Examples:
  simon scores
  simon scores --limit 25
  simon scores --recent
  simon scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent games instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete every recorded game and the high score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresReset {
		if err := store.Reset(); err != nil {
			return fmt.Errorf("error resetting scores: %w", err)
		}
		fmt.Fprintln(out, "All scores deleted.")
		return nil
	}

	title := "High Scores"
	var games []storage.GameRecord
	if flagScoresRecent {
		title = "Recent Games"
		games, err = store.RecentGames(flagScoresLimit)
	} else {
		games, err = store.TopGames(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'simon play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-12s  %-8s  %s\n", "Rank", "Score", "Player", "Preset", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-12s  %-8s  %s\n", "----", "-----", "------", "------", "----")
	for i, g := range games {
		fmt.Fprintf(out, "  %-4d  %-6d  %-12s  %-8s  %s\n",
			i+1, g.Score, orDash(g.Player), orDash(g.Preset), g.EndedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d   Best: %d   Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
