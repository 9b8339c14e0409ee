package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nmspartans/dugout/internal/config"
)

// liveConfig points cfg at one real season export and a database path that
// does not exist yet.
func liveConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "fall.csv")
	data := ",,,\nNumber,Last,First,PA\n1,Ortiz,Jax,30\n"
	if err := os.WriteFile(csvPath, []byte(data), 0644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	cfg = &config.Config{
		DBPath:  filepath.Join(dir, "db", "stats.db"),
		Seasons: []config.SeasonSource{{Label: "Fall 2024", File: csvPath}},
	}
	log = zerolog.Nop()
}

func TestRunTeam_ReadsExportsBeforeFirstLoad(t *testing.T) {
	liveConfig(t)
	if err := runTeam(teamCmd, nil); err != nil {
		t.Fatalf("runTeam: %v", err)
	}
	if _, err := os.Stat(cfg.DBPath); !os.IsNotExist(err) {
		t.Error("a query command must not create the database")
	}
}

func TestRunRoster_ReadsExportsBeforeFirstLoad(t *testing.T) {
	liveConfig(t)
	if err := runRoster(rosterCmd, nil); err != nil {
		t.Fatalf("runRoster: %v", err)
	}
	if _, err := os.Stat(cfg.DBPath); !os.IsNotExist(err) {
		t.Error("a query command must not create the database")
	}
}
