// Package dataset merges per-season parsed records into one combined dataset
// and exposes the player/season/roster lookups the presentation layer needs.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/nmspartans/dugout/internal/config"
	"github.com/nmspartans/dugout/internal/model"
	"github.com/nmspartans/dugout/internal/parser"
)

// Season-source failures are never fatal: the affected season contributes
// zero records and the failure is surfaced as a Diagnostic.
var (
	ErrSourceMissing   = errors.New("season source missing")
	ErrSourceMalformed = errors.New("season source malformed")
)

// Diagnostic records one non-fatal season load failure.
type Diagnostic struct {
	Season string
	File   string
	Err    error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("season %q (%s): %v", d.Season, d.File, d.Err)
}

// Dataset is the combined record set across all configured seasons. Records
// keep season-declaration order, then export row order within a season; a
// (player, season) pair appears at most once.
type Dataset struct {
	Seasons []string // declared labels, chronological
	Records []model.PlayerSeasonRecord
}

// Build parses every configured season source in declaration order and
// concatenates the results. Missing or malformed sources are skipped and
// reported; the dataset degrades to fewer seasons rather than failing.
func Build(sources []config.SeasonSource) (*Dataset, []Diagnostic) {
	ds := &Dataset{}
	var diags []Diagnostic

	type key struct{ player, season string }
	seen := make(map[key]bool)

	for _, src := range sources {
		ds.Seasons = append(ds.Seasons, src.Label)

		recs, err := parser.ParseSeasonFile(src.File, src.Label)
		if err != nil {
			kind := ErrSourceMalformed
			if errors.Is(err, fs.ErrNotExist) {
				kind = ErrSourceMissing
			}
			diags = append(diags, Diagnostic{
				Season: src.Label,
				File:   src.File,
				Err:    fmt.Errorf("%w: %v", kind, err),
			})
			continue
		}

		for _, rec := range recs {
			k := key{rec.FullName, rec.Season}
			if seen[k] {
				continue
			}
			seen[k] = true
			ds.Records = append(ds.Records, rec)
		}
	}
	return ds, diags
}

// PlayerHistory returns all records for a player across seasons, in
// season-declaration order.
func (d *Dataset) PlayerHistory(fullName string) []model.PlayerSeasonRecord {
	var out []model.PlayerSeasonRecord
	for _, r := range d.Records {
		if r.FullName == fullName {
			out = append(out, r)
		}
	}
	return out
}

// SeasonRecords returns the full team record set for one season.
func (d *Dataset) SeasonRecords(season string) []model.PlayerSeasonRecord {
	var out []model.PlayerSeasonRecord
	for _, r := range d.Records {
		if r.Season == season {
			out = append(out, r)
		}
	}
	return out
}

// Roster returns the distinct player identities present in a season, sorted.
func (d *Dataset) Roster(season string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Records {
		if r.Season == season && !seen[r.FullName] {
			seen[r.FullName] = true
			out = append(out, r.FullName)
		}
	}
	sort.Strings(out)
	return out
}

// Players returns every distinct player identity across all seasons, sorted.
func (d *Dataset) Players() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Records {
		if !seen[r.FullName] {
			seen[r.FullName] = true
			out = append(out, r.FullName)
		}
	}
	sort.Strings(out)
	return out
}

// LatestSeason returns the last declared season label, or "" if none.
func (d *Dataset) LatestSeason() string {
	if len(d.Seasons) == 0 {
		return ""
	}
	return d.Seasons[len(d.Seasons)-1]
}

// LatestSeasonWithData returns the most recently declared season that
// contributed records, or "" when none did.
func (d *Dataset) LatestSeasonWithData() string {
	for i := len(d.Seasons) - 1; i >= 0; i-- {
		if len(d.SeasonRecords(d.Seasons[i])) > 0 {
			return d.Seasons[i]
		}
	}
	return ""
}

// CurrentRoster returns the roster of the latest season with data, falling
// back to all known players when no season contributed records.
func (d *Dataset) CurrentRoster() []string {
	if s := d.LatestSeasonWithData(); s != "" {
		return d.Roster(s)
	}
	return d.Players()
}
