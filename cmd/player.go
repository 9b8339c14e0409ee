package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/feedback"
	"github.com/nmspartans/dugout/internal/radar"
	"github.com/nmspartans/dugout/internal/report"
	"github.com/nmspartans/dugout/internal/storage"
)

var playerCmd = &cobra.Command{
	Use:   "player <first> <last>",
	Short: "Season-by-season analysis for one player",
	Long: `Print a player's per-season batting, fielding, pitching, and catching trends, the
skill-profile progression against each season's team maxima, and coaching
feedback based on the most recent season.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
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
	latest := history[len(history)-1]

	fmt.Fprintf(os.Stdout, "\n%s  (%d seasons)\n", name, len(history))
	era := "N/A"
	if latest.IP > 0 {
		era = fmt.Sprintf("%.2f", latest.ERA)
	}
	fmt.Fprintf(os.Stdout, "Current: AVG %.3f | OPS %.3f | QAB%% %.1f%% | ERA %s\n",
		latest.AVG, latest.OPS, latest.QAB, era)

	fmt.Fprintf(os.Stdout, "\nDevelopment Focus (based on %s):\n\n", latest.Season)
	report.PrintFeedback(os.Stdout, feedback.Evaluate(latest))

	// Skill profile per season, each normalized against that season's team.
	metrics := radar.DefaultMetrics()
	var seasons []string
	var profiles []radar.Profile
	for _, rec := range history {
		team, err := db.SeasonStats(rec.Season)
		if err != nil {
			return fmt.Errorf("season stats for %s: %w", rec.Season, err)
		}
		seasons = append(seasons, rec.Season)
		profiles = append(profiles, radar.Normalize(rec, team, metrics))
	}
	fmt.Fprintln(os.Stdout, "Skill Profile Progression (vs team max)")
	report.PrintRadarProgression(os.Stdout, seasons, profiles)

	fmt.Fprintln(os.Stdout, "\nBatting Trends")
	report.PrintBattingTrend(os.Stdout, history)
	fmt.Fprintln(os.Stdout, "\nFielding Trends")
	report.PrintFieldingTrend(os.Stdout, history)
	fmt.Fprintln(os.Stdout, "\nPitching Trends")
	report.PrintPitchingTrend(os.Stdout, history)
	fmt.Fprintln(os.Stdout, "\nCatching Trends")
	report.PrintCatchingTrend(os.Stdout, history)
	return nil
}
