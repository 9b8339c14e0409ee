package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/storage"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List all loaded seasons",
	Args:  cobra.NoArgs,
	RunE:  runSeasons,
}

func runSeasons(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	seasons, err := db.ListSeasons()
	if err != nil {
		return fmt.Errorf("list seasons: %w", err)
	}
	if len(seasons) == 0 {
		fmt.Fprintln(os.Stdout, "No seasons loaded yet. Run 'dugout load' to ingest the configured exports.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %7s  %-20s  %s\n", "SEASON", "PLAYERS", "LOADED", "SOURCE")
	fmt.Fprintf(os.Stdout, "%-30s  %7s  %-20s  %s\n",
		"──────────────────────────────", "───────", "────────────────────", "──────")
	for _, s := range seasons {
		fmt.Fprintf(os.Stdout, "%-30s  %7d  %-20s  %s\n", s.Label, s.Players, s.LoadedAt, s.Source)
	}
	return nil
}
