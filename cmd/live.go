package cmd

import (
	"os"

	"github.com/nmspartans/dugout/internal/dataset"
)

// storeMissing reports whether the stats database has not been created yet.
func storeMissing() bool {
	_, err := os.Stat(cfg.DBPath)
	return os.IsNotExist(err)
}

// liveDataset parses the configured season exports directly, so query
// commands work before the first 'dugout load'. Source problems are logged
// the same way load logs them.
func liveDataset() *dataset.Dataset {
	svc := dataset.NewService(cfg.Seasons)
	ds := svc.Dataset()
	for _, d := range svc.Diagnostics() {
		log.Warn().Str("season", d.Season).Str("file", d.File).Err(d.Err).
			Msg("season export skipped")
	}
	return ds
}
