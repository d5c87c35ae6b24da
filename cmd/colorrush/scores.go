package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/color-rush/internal/games/colorrush"
	"github.com/vovakirdan/color-rush/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs recorded in the database, with totals.

Examples:
  colorrush scores
  colorrush scores --limit 25
  colorrush scores --recent
  colorrush scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}

	store, err := storage.Open(s.DBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(colorrush.ID); err != nil {
			return err
		}
		newLogger(s.LogLevel, "colorrush").Info("cleared runs", "db", s.DBPath)
		return nil
	}

	var runs []storage.RunRecord
	title := "Best Runs"
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(colorrush.ID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(colorrush.ID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Printf("%s - Color Rush\n\n", title)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'colorrush play' to set the first high score!")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Rank\tScore\tDistance\tTime\tMode\tWhen")
	fmt.Fprintln(w, "  ----\t-----\t--------\t----\t----\t----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %d\t%s\t%sm\t%s\t%s\t%s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			humanize.CommafWithDigits(r.Distance, 1),
			r.Duration.Round(100*time.Millisecond),
			r.Difficulty,
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		)
	}
	w.Flush()

	stats, err := store.Stats(colorrush.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %s  |  Runs: %s  |  Average: %.1f  |  Total distance: %sm\n",
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.Runs)),
		stats.AvgScore,
		humanize.Comma(int64(stats.TotalDistance)),
	)
	return nil
}
