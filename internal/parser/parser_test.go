package parser

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
)

// exportHeaders mirrors the GameChanger column layout: batting first, then
// pitching, then fielding/catching, with BB/SO/H/R/SB/CS/PIK repeating.
var exportHeaders = []string{
	"Number", "Last", "First",
	"GP", "PA", "AB", "H", "R", "1B", "2B", "3B", "HR", "RBI", "BB", "SO", "K-L", "SB", "CS", "PIK",
	"AVG", "OBP", "SLG", "OPS", "QAB%", "BA/RISP",
	"IP", "ERA", "WHIP", "ER", "BB", "SO", "H", "R", "SB", "CS", "PIK",
	"TC", "A", "PO", "E", "FPCT",
	"INN", "PB", "SB", "CS", "PIK",
}

// row builds one data row aligned to exportHeaders from a sparse column map.
func row(cells map[string]string) []string {
	// Indexes resolve against the disambiguated names so tests can address
	// e.g. "BB_Pitch" directly.
	names := Disambiguate(exportHeaders)
	out := make([]string, len(names))
	for i := range out {
		out[i] = "0"
	}
	for name, v := range cells {
		found := false
		for i, n := range names {
			if n == name {
				out[i] = v
				found = true
				break
			}
		}
		if !found {
			panic("unknown column " + name)
		}
	}
	return out
}

// buildCSV produces a two-header export: a throwaway category group row,
// the real field-name row, then the given data rows.
func buildCSV(rows ...[]string) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(",", len(exportHeaders)-1) + "\n")
	b.WriteString(strings.Join(exportHeaders, ",") + "\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, ",") + "\n")
	}
	return b.String()
}

func TestDisambiguate_OrdinalRenames(t *testing.T) {
	got := Disambiguate(exportHeaders)

	want := map[int]string{
		13: "BB",       // batting, first occurrence
		29: "BB_Pitch", // second occurrence
		30: "SO_Pitch",
		31: "H_Pitch",
		32: "R_Pitch",
		33: "SB_Pitch",
		41: "INN_Catch", // INN renamed on first sight
		43: "SB_Catch",  // third occurrence
		44: "CS_Catch",
		45: "PIK_Catch",
	}
	for idx, name := range want {
		if got[idx] != name {
			t.Errorf("column %d (%s): got %q, want %q", idx, exportHeaders[idx], got[idx], name)
		}
	}
}

func TestParseSeason_DisambiguatesSections(t *testing.T) {
	src := buildCSV(row(map[string]string{
		"First": "Mia", "Last": "Lopez",
		"PA": "20", "BB": "9", "SO": "6", "CS": "1",
		"BB_Pitch": "12", "SO_Pitch": "10", "H_Pitch": "7", "R_Pitch": "6",
		"INN_Catch": "12", "PB": "4", "SB_Catch": "7", "CS_Catch": "3", "PIK_Catch": "1",
	}))

	recs, err := ParseSeason(strings.NewReader(src), "Fall 2025")
	if err != nil {
		t.Fatalf("ParseSeason: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	r := recs[0]
	if r.BB != 9 || r.BBPitch != 12 {
		t.Errorf("BB split wrong: batting=%d pitching=%d", r.BB, r.BBPitch)
	}
	if r.SO != 6 || r.SOPitch != 10 {
		t.Errorf("SO split wrong: batting=%d pitching=%d", r.SO, r.SOPitch)
	}
	if r.CS != 1 || r.CSCatch != 3 {
		t.Errorf("CS split wrong: batting=%d catching=%d", r.CS, r.CSCatch)
	}
	if r.SBCatch != 7 || r.PIKCatch != 1 {
		t.Errorf("catching block wrong: SB=%d PIK=%d", r.SBCatch, r.PIKCatch)
	}
	if r.INNCatch != 12 {
		t.Errorf("INN_Catch: got %v, want 12", r.INNCatch)
	}
	if r.Season != "Fall 2025" {
		t.Errorf("season tag: got %q", r.Season)
	}
}

func TestParseSeason_CoercesBadCellsToZero(t *testing.T) {
	src := buildCSV(row(map[string]string{
		"First": "Leo", "Last": "Park",
		"AVG": "-", "OBP": "", "PA": "n/a", "HR": "2",
	}))

	recs, err := ParseSeason(strings.NewReader(src), "s")
	if err != nil {
		t.Fatalf("ParseSeason: %v", err)
	}
	r := recs[0]
	if r.AVG != 0 || r.OBP != 0 || r.PA != 0 {
		t.Errorf("bad cells should coerce to 0: AVG=%v OBP=%v PA=%d", r.AVG, r.OBP, r.PA)
	}
	if r.HR != 2 {
		t.Errorf("good cell lost: HR=%d", r.HR)
	}
}

func TestParseSeason_DropsRowsWithoutFirstName(t *testing.T) {
	footer := row(nil)
	footer[1] = "Totals" // Last populated, First empty
	footer[2] = ""
	src := buildCSV(
		row(map[string]string{"First": "Jax", "Last": "Ortiz"}),
		footer,
	)

	recs, err := ParseSeason(strings.NewReader(src), "s")
	if err != nil {
		t.Fatalf("ParseSeason: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("footer row should be dropped: got %d records", len(recs))
	}
	if recs[0].FullName != "Jax Ortiz" {
		t.Errorf("FullName: got %q, want %q", recs[0].FullName, "Jax Ortiz")
	}
}

func TestParseSeason_Idempotent(t *testing.T) {
	src := buildCSV(
		row(map[string]string{"First": "Jax", "Last": "Ortiz", "PA": "50", "SO": "20", "AVG": "0.300"}),
		row(map[string]string{"First": "Mia", "Last": "Lopez", "INN_Catch": "12", "PB": "4"}),
	)

	first, err := ParseSeason(strings.NewReader(src), "s")
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseSeason(strings.NewReader(src), "s")
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same source twice should yield identical records")
	}
}

func TestParseSeason_MissingHeaderRows(t *testing.T) {
	_, err := ParseSeason(strings.NewReader("just,one,row\n"), "s")
	if err == nil {
		t.Fatal("expected error for export without header rows")
	}
}

func TestParseSeason_MalformedCSV(t *testing.T) {
	_, err := ParseSeason(strings.NewReader("a,\"unclosed\nb,c\n"), "s")
	if err == nil {
		t.Fatal("expected error for unparseable export")
	}
}

func TestParseSeasonFile_Missing(t *testing.T) {
	_, err := ParseSeasonFile("definitely/not/here.csv", "s")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
