package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/storage"
)

var rosterCmd = &cobra.Command{
	Use:   "roster [season]",
	Short: "List the players in a season",
	Long:  "List the distinct players present in a season. Defaults to the most recent\nseason with data; with no data for it, all known players are listed.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRoster,
}

func runRoster(cmd *cobra.Command, args []string) error {
	season := strings.Join(args, " ")

	// Before the first load, read the season exports directly.
	if storeMissing() {
		ds := liveDataset()
		var players []string
		if season != "" {
			players = ds.Roster(season)
		} else {
			season = ds.LatestSeasonWithData()
			players = ds.CurrentRoster()
		}
		printRoster(season, players)
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
	}

	var players []string
	if season != "" {
		players, err = db.Roster(season)
		if err != nil {
			return fmt.Errorf("roster: %w", err)
		}
	}
	if len(players) == 0 {
		// Current-roster fallback: no records for the season, list everyone.
		players, err = db.Players()
		if err != nil {
			return fmt.Errorf("players: %w", err)
		}
	}
	printRoster(season, players)
	return nil
}

func printRoster(season string, players []string) {
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No player data found.")
		return
	}
	if season != "" {
		fmt.Fprintf(os.Stdout, "Roster: %s (%d players)\n", season, len(players))
	} else {
		fmt.Fprintf(os.Stdout, "All players (%d)\n", len(players))
	}
	for _, p := range players {
		fmt.Fprintf(os.Stdout, "  %s\n", p)
	}
}
