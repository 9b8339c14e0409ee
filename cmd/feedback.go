package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/feedback"
	"github.com/nmspartans/dugout/internal/report"
	"github.com/nmspartans/dugout/internal/storage"
)

var feedbackSeason string

var feedbackCmd = &cobra.Command{
	Use:   "feedback <first> <last>",
	Short: "Coaching feedback for one player",
	Long:  "Evaluate the threshold rules against one player-season record and print the\nresulting coaching observations. Defaults to the player's most recent season.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFeedback,
}

func init() {
	feedbackCmd.Flags().StringVar(&feedbackSeason, "season", "", "season label (default most recent for the player)")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	history, err := db.PlayerHistory(name)
	if err != nil {
		return fmt.Errorf("player history: %w", err)
	}
	if len(history) == 0 {
		fmt.Fprintf(os.Stderr, "No data found for player %q\n", name)
		return nil
	}

	rec := history[len(history)-1]
	if feedbackSeason != "" {
		found := false
		for _, r := range history {
			if r.Season == feedbackSeason {
				rec, found = r, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "No record for %q in season %q\n", name, feedbackSeason)
			return nil
		}
	}

	fmt.Fprintf(os.Stdout, "\n%s, %s:\n\n", name, rec.Season)
	report.PrintFeedback(os.Stdout, feedback.Evaluate(rec))
	return nil
}
