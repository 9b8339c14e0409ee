package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/model"
	"github.com/nmspartans/dugout/internal/report"
	"github.com/nmspartans/dugout/internal/storage"
)

var teamCmd = &cobra.Command{
	Use:   "team [season]",
	Short: "Team stat tables for one season",
	Long:  "Print batting, fielding, pitching, and catching tables for a season.\nDefaults to the most recent season with data.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runTeam,
}

func runTeam(cmd *cobra.Command, args []string) error {
	season := strings.Join(args, " ")

	// Before the first load, read the season exports directly.
	if storeMissing() {
		ds := liveDataset()
		if season == "" {
			season = ds.LatestSeasonWithData()
		}
		if season == "" {
			fmt.Fprintln(os.Stdout, "No season data found in the configured exports.")
			return nil
		}
		recs := ds.SeasonRecords(season)
		if len(recs) == 0 {
			fmt.Fprintf(os.Stderr, "No data found for season %q\n", season)
			return nil
		}
		printTeamTables(season, recs)
		return nil
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if season == "" {
		season, err = db.LatestSeason()
		if err != nil {
			return fmt.Errorf("resolve latest season: %w", err)
		}
		if season == "" {
			fmt.Fprintln(os.Stdout, "No data loaded yet. Run 'dugout load' first.")
			return nil
		}
	}

	recs, err := db.SeasonStats(season)
	if err != nil {
		return fmt.Errorf("season stats: %w", err)
	}
	if len(recs) == 0 {
		fmt.Fprintf(os.Stderr, "No data found for season %q\n", season)
		return nil
	}

	printTeamTables(season, recs)
	return nil
}

func printTeamTables(season string, recs []model.PlayerSeasonRecord) {
	fmt.Fprintf(os.Stdout, "\nTeam Stats Overview: %s\n\nBatting\n", season)
	report.PrintBattingTable(os.Stdout, recs)
	fmt.Fprintln(os.Stdout, "\nFielding")
	report.PrintFieldingTable(os.Stdout, recs)
	fmt.Fprintln(os.Stdout, "\nPitching")
	report.PrintPitchingTable(os.Stdout, recs)
	fmt.Fprintln(os.Stdout, "\nCatching")
	report.PrintCatchingTable(os.Stdout, recs)
}
