package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/radar"
	"github.com/nmspartans/dugout/internal/report"
	"github.com/nmspartans/dugout/internal/storage"
)

var radarSeason string

var radarCmd = &cobra.Command{
	Use:   "radar <first> <last>",
	Short: "Skill profile for one player vs the team",
	Long:  "Scale a player's Contact/Power/Discipline/Speed/Fielding metrics against the\nteam's best in the same season.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRadar,
}

func init() {
	radarCmd.Flags().StringVar(&radarSeason, "season", "", "season label (default most recent for the player)")
}

func runRadar(cmd *cobra.Command, args []string) error {
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
	if radarSeason != "" {
		found := false
		for _, r := range history {
			if r.Season == radarSeason {
				rec, found = r, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "No record for %q in season %q\n", name, radarSeason)
			return nil
		}
	}

	team, err := db.SeasonStats(rec.Season)
	if err != nil {
		return fmt.Errorf("season stats: %w", err)
	}

	profile := radar.Normalize(rec, team, radar.DefaultMetrics())
	fmt.Fprintln(os.Stdout)
	report.PrintRadarProfile(os.Stdout, fmt.Sprintf("%s, %s", name, rec.Season), profile)
	return nil
}
