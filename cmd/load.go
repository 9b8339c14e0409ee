package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/dataset"
	"github.com/nmspartans/dugout/internal/storage"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load all configured season exports and rebuild the stats database",
	Long: `Parse every configured season CSV export, derive secondary metrics, and
replace the stored dataset wholesale. Missing or unreadable season files are
skipped with a warning; the remaining seasons still load.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	svc := dataset.NewService(cfg.Seasons)
	ds, diags := svc.Reload()

	for _, d := range diags {
		ev := log.Warn().Str("season", d.Season).Str("file", d.File)
		switch {
		case errors.Is(d.Err, dataset.ErrSourceMissing):
			ev.Msg("season export not found, season skipped")
		case errors.Is(d.Err, dataset.ErrSourceMalformed):
			ev.Err(d.Err).Msg("season export unreadable, season skipped")
		default:
			ev.Err(d.Err).Msg("season load failed")
		}
	}

	loadedAt := time.Now().UTC().Format(time.RFC3339)
	seasons := make([]storage.SeasonRow, 0, len(cfg.Seasons))
	for i, src := range cfg.Seasons {
		seasons = append(seasons, storage.SeasonRow{
			Label:    src.Label,
			Seq:      i,
			Source:   src.File,
			Players:  len(ds.SeasonRecords(src.Label)),
			LoadedAt: loadedAt,
		})
	}

	if err := db.ReplaceAll(seasons, ds.Records); err != nil {
		return fmt.Errorf("store dataset: %w", err)
	}

	for _, s := range seasons {
		log.Info().Str("season", s.Label).Int("players", s.Players).Msg("season loaded")
	}
	fmt.Fprintf(os.Stdout, "Loaded %d player-season records across %d seasons into %s\n",
		len(ds.Records), len(seasons), cfg.DBPath)
	return nil
}
