package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nmspartans/dugout/internal/config"
)

// writeSeasonCSV writes a minimal two-header season export. Each row is
// (first, last, pa).
func writeSeasonCSV(t *testing.T, dir, name string, players [][3]string) string {
	t.Helper()
	content := ",,,\nNumber,Last,First,PA\n"
	for _, p := range players {
		content += "0," + p[1] + "," + p[0] + "," + p[2] + "\n"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestBuild_SeasonOrderAndTagging(t *testing.T) {
	dir := t.TempDir()
	fall := writeSeasonCSV(t, dir, "fall.csv", [][3]string{{"Jax", "Ortiz", "30"}})
	spring := writeSeasonCSV(t, dir, "spring.csv", [][3]string{
		{"Jax", "Ortiz", "40"},
		{"Mia", "Lopez", "35"},
	})

	ds, diags := Build([]config.SeasonSource{
		{Label: "Fall 2024", File: fall},
		{Label: "Spring 2025", File: spring},
	})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(ds.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(ds.Records))
	}
	// Declaration order, not any data order.
	if ds.Records[0].Season != "Fall 2024" || ds.Records[1].Season != "Spring 2025" {
		t.Errorf("records out of season order: %q then %q", ds.Records[0].Season, ds.Records[1].Season)
	}
	if ds.Records[0].PA != 30 || ds.Records[1].PA != 40 {
		t.Errorf("season tagging mixed up PAs: %d, %d", ds.Records[0].PA, ds.Records[1].PA)
	}
}

func TestBuild_MissingSourceIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	spring := writeSeasonCSV(t, dir, "spring.csv", [][3]string{{"Mia", "Lopez", "35"}})

	ds, diags := Build([]config.SeasonSource{
		{Label: "Fall 2024", File: filepath.Join(dir, "nope.csv")},
		{Label: "Spring 2025", File: spring},
	})
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if !errors.Is(diags[0].Err, ErrSourceMissing) {
		t.Errorf("diagnostic kind: got %v, want ErrSourceMissing", diags[0].Err)
	}
	if diags[0].Season != "Fall 2024" {
		t.Errorf("diagnostic season: got %q", diags[0].Season)
	}
	// The remaining season still loads.
	if len(ds.Records) != 1 || ds.Records[0].FullName != "Mia Lopez" {
		t.Errorf("surviving season should load: %+v", ds.Records)
	}
	// The missing season still appears in the declared season list.
	if len(ds.Seasons) != 2 {
		t.Errorf("declared seasons: got %v", ds.Seasons)
	}
}

func TestBuild_MalformedSourceIsSkipped(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("x,\"unterminated\ny\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ds, diags := Build([]config.SeasonSource{{Label: "Fall 2024", File: bad}})
	if len(diags) != 1 || !errors.Is(diags[0].Err, ErrSourceMalformed) {
		t.Fatalf("expected one ErrSourceMalformed diagnostic, got %v", diags)
	}
	if len(ds.Records) != 0 {
		t.Errorf("malformed season contributed records: %d", len(ds.Records))
	}
}

func TestBuild_PlayerSeasonUniqueness(t *testing.T) {
	dir := t.TempDir()
	fall := writeSeasonCSV(t, dir, "fall.csv", [][3]string{
		{"Jax", "Ortiz", "30"},
		{"Jax", "Ortiz", "99"}, // duplicate export row, first wins
	})

	ds, _ := Build([]config.SeasonSource{{Label: "Fall 2024", File: fall}})
	if len(ds.Records) != 1 {
		t.Fatalf("expected 1 record for duplicated (player, season), got %d", len(ds.Records))
	}
	if ds.Records[0].PA != 30 {
		t.Errorf("first occurrence should win: PA=%d", ds.Records[0].PA)
	}
}

func TestDataset_Lookups(t *testing.T) {
	dir := t.TempDir()
	fall := writeSeasonCSV(t, dir, "fall.csv", [][3]string{
		{"Jax", "Ortiz", "30"},
		{"Mia", "Lopez", "25"},
	})
	spring := writeSeasonCSV(t, dir, "spring.csv", [][3]string{{"Jax", "Ortiz", "40"}})

	ds, _ := Build([]config.SeasonSource{
		{Label: "Fall 2024", File: fall},
		{Label: "Spring 2025", File: spring},
	})

	history := ds.PlayerHistory("Jax Ortiz")
	if len(history) != 2 {
		t.Fatalf("history length: got %d, want 2", len(history))
	}
	if history[0].Season != "Fall 2024" || history[1].Season != "Spring 2025" {
		t.Errorf("history out of order: %q, %q", history[0].Season, history[1].Season)
	}

	team := ds.SeasonRecords("Fall 2024")
	if len(team) != 2 {
		t.Errorf("Fall 2024 team size: got %d, want 2", len(team))
	}

	roster := ds.Roster("Fall 2024")
	if len(roster) != 2 || roster[0] != "Jax Ortiz" || roster[1] != "Mia Lopez" {
		t.Errorf("roster: got %v", roster)
	}

	if got := ds.LatestSeason(); got != "Spring 2025" {
		t.Errorf("latest season: got %q", got)
	}
	if got := ds.CurrentRoster(); len(got) != 1 || got[0] != "Jax Ortiz" {
		t.Errorf("current roster: got %v", got)
	}
}

func TestDataset_CurrentRosterSkipsEmptySeasons(t *testing.T) {
	dir := t.TempDir()
	fall := writeSeasonCSV(t, dir, "fall.csv", [][3]string{{"Mia", "Lopez", "25"}})

	ds, _ := Build([]config.SeasonSource{
		{Label: "Fall 2024", File: fall},
		{Label: "Spring 2025", File: filepath.Join(dir, "missing.csv")},
	})
	// The declared latest season has no data, so the one before it counts.
	if got := ds.LatestSeasonWithData(); got != "Fall 2024" {
		t.Errorf("latest season with data: got %q", got)
	}
	if got := ds.CurrentRoster(); len(got) != 1 || got[0] != "Mia Lopez" {
		t.Errorf("current roster: got %v", got)
	}
}

func TestDataset_LatestSeasonWithData_Empty(t *testing.T) {
	ds := &Dataset{Seasons: []string{"Fall 2024"}}
	if got := ds.LatestSeasonWithData(); got != "" {
		t.Errorf("got %q, want empty for a dataset with no records", got)
	}
}

func TestService_MemoizesUntilReload(t *testing.T) {
	dir := t.TempDir()
	path := writeSeasonCSV(t, dir, "fall.csv", [][3]string{{"Jax", "Ortiz", "30"}})

	svc := NewService([]config.SeasonSource{{Label: "Fall 2024", File: path}})

	first := svc.Dataset()
	if len(first.Records) != 1 {
		t.Fatalf("initial load: got %d records", len(first.Records))
	}
	if svc.Dataset() != first {
		t.Error("Dataset should return the cached dataset")
	}

	// Source changes are invisible until an explicit reload.
	writeSeasonCSV(t, dir, "fall.csv", [][3]string{
		{"Jax", "Ortiz", "30"},
		{"Mia", "Lopez", "25"},
	})
	if got := svc.Dataset(); len(got.Records) != 1 {
		t.Errorf("cache should survive source changes: got %d records", len(got.Records))
	}

	reloaded, diags := svc.Reload()
	if len(diags) != 0 {
		t.Fatalf("reload diagnostics: %v", diags)
	}
	if len(reloaded.Records) != 2 {
		t.Errorf("reload should pick up the new source: got %d records", len(reloaded.Records))
	}
	if svc.Dataset() != reloaded {
		t.Error("Dataset should serve the reloaded dataset")
	}
}
