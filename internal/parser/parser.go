// Package parser reads GameChanger season CSV exports into PlayerSeasonRecords.
//
// The export carries two header rows: row 0 holds category group labels
// (Batting / Pitching / Fielding) and is discarded, row 1 holds the actual
// field names. Field names repeat across sections in a fixed order, batting
// first, then pitching, then fielding/catching, so the parser renames the
// second and third occurrence of a name before any value is read.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nmspartans/dugout/internal/model"
)

const (
	pitchSuffix = "_Pitch"
	catchSuffix = "_Catch"
)

// ParseSeasonFile opens and parses one season export. The caller can
// distinguish a missing file (os.Open error wrapping fs.ErrNotExist) from a
// malformed one (any other error).
func ParseSeasonFile(path, season string) ([]model.PlayerSeasonRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open season export: %w", err)
	}
	defer f.Close()
	return ParseSeason(f, season)
}

// ParseSeason parses one season's raw export and returns the parsed-and-derived
// records tagged with the given season label. Rows without a first name are
// footer or blank rows in the export, not players, and are dropped.
func ParseSeason(r io.Reader, season string) ([]model.PlayerSeasonRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports pad unevenly; length is checked per cell

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read season export: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("season export has no header rows (%d rows)", len(rows))
	}

	// rows[0] is the category group row, ignored.
	headers := Disambiguate(rows[1])

	var records []model.PlayerSeasonRecord
	for _, row := range rows[2:] {
		rec := model.PlayerSeasonRecord{Season: season}
		for i, cell := range row {
			if i >= len(headers) {
				break
			}
			assign(&rec, headers[i], cell)
		}
		if rec.First == "" {
			continue
		}
		rec.FullName = rec.First + " " + rec.Last
		Derive(&rec)
		records = append(records, rec)
	}
	return records, nil
}

// Disambiguate renames repeated header names by ordinal occurrence: the first
// occurrence keeps its name (batting/primary), the second gains a _Pitch
// suffix, the third and later a _Catch suffix. INN only ever appears in the
// catching section of the export and is renamed on first sight. This must run
// before any value is read; everything downstream assumes unique names.
func Disambiguate(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		n := seen[name]
		seen[name]++
		switch {
		case name == "INN":
			out[i] = "INN" + catchSuffix
		case n == 1:
			out[i] = name + pitchSuffix
		case n >= 2:
			out[i] = name + catchSuffix
		default:
			out[i] = name
		}
	}
	return out
}

// coerce converts a cell to a number. Anything that fails conversion counts
// as 0; the export uses "-" and blanks for absent stats.
func coerce(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func count(s string) int {
	return int(coerce(s))
}

// assign writes one cell onto the record by its disambiguated header name.
// Unknown columns are ignored; every stat column that fails numeric coercion
// resolves to 0.
func assign(rec *model.PlayerSeasonRecord, name, cell string) {
	switch name {
	case "Number":
		rec.Number = count(cell)
	case "First":
		rec.First = strings.TrimSpace(cell)
	case "Last":
		rec.Last = strings.TrimSpace(cell)

	case "GP":
		rec.GP = count(cell)
	case "PA":
		rec.PA = count(cell)
	case "AB":
		rec.AB = count(cell)
	case "H":
		rec.H = count(cell)
	case "1B":
		rec.Singles = count(cell)
	case "2B":
		rec.Doubles = count(cell)
	case "3B":
		rec.Triples = count(cell)
	case "HR":
		rec.HR = count(cell)
	case "RBI":
		rec.RBI = count(cell)
	case "BB":
		rec.BB = count(cell)
	case "SO":
		rec.SO = count(cell)
	case "K-L":
		rec.KL = count(cell)
	case "SB":
		rec.SB = count(cell)
	case "CS":
		rec.CS = count(cell)
	case "AVG":
		rec.AVG = coerce(cell)
	case "OBP":
		rec.OBP = coerce(cell)
	case "SLG":
		rec.SLG = coerce(cell)
	case "OPS":
		rec.OPS = coerce(cell)
	case "QAB%":
		rec.QAB = coerce(cell)
	case "BA/RISP":
		rec.BARISP = coerce(cell)

	case "IP":
		rec.IP = coerce(cell)
	case "ERA":
		rec.ERA = coerce(cell)
	case "WHIP":
		rec.WHIP = coerce(cell)
	case "ER":
		rec.ER = count(cell)
	case "BB" + pitchSuffix:
		rec.BBPitch = count(cell)
	case "SO" + pitchSuffix:
		rec.SOPitch = count(cell)
	case "H" + pitchSuffix:
		rec.HPitch = count(cell)
	case "R" + pitchSuffix:
		rec.RPitch = count(cell)

	case "TC":
		rec.TC = count(cell)
	case "A":
		rec.A = count(cell)
	case "PO":
		rec.PO = count(cell)
	case "E":
		rec.E = count(cell)
	case "FPCT":
		rec.FPCT = coerce(cell)

	case "INN" + catchSuffix:
		rec.INNCatch = coerce(cell)
	case "PB":
		rec.PB = count(cell)
	case "SB" + catchSuffix:
		rec.SBCatch = count(cell)
	case "CS" + catchSuffix:
		rec.CSCatch = count(cell)
	case "PIK" + catchSuffix:
		rec.PIKCatch = count(cell)
	}
}
