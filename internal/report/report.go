// Package report renders dataset views as text tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/nmspartans/dugout/internal/feedback"
	"github.com/nmspartans/dugout/internal/model"
	"github.com/nmspartans/dugout/internal/radar"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintBattingTable prints the team batting table, best OPS first.
func PrintBattingTable(w io.Writer, recs []model.PlayerSeasonRecord) {
	sorted := make([]model.PlayerSeasonRecord, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OPS > sorted[j].OPS
	})

	table := newTable(w)
	table.Header("NAME", "GP", "PA", "H", "AVG", "OBP", "OPS", "SLG", "QAB%",
		"1B", "2B", "3B", "HR", "RBI", "BB", "K-L", "SO%")
	for _, r := range sorted {
		table.Append(
			r.FullName,
			strconv.Itoa(r.GP),
			strconv.Itoa(r.PA),
			strconv.Itoa(r.H),
			fmt.Sprintf("%.3f", r.AVG),
			fmt.Sprintf("%.3f", r.OBP),
			fmt.Sprintf("%.3f", r.OPS),
			fmt.Sprintf("%.3f", r.SLG),
			fmt.Sprintf("%.1f%%", r.QAB),
			strconv.Itoa(r.Singles),
			strconv.Itoa(r.Doubles),
			strconv.Itoa(r.Triples),
			strconv.Itoa(r.HR),
			strconv.Itoa(r.RBI),
			strconv.Itoa(r.BB),
			strconv.Itoa(r.KL),
			fmt.Sprintf("%.1f%%", r.SOPct),
		)
	}
	table.Render()
}

// PrintFieldingTable prints the team fielding table, best FPCT first.
func PrintFieldingTable(w io.Writer, recs []model.PlayerSeasonRecord) {
	sorted := make([]model.PlayerSeasonRecord, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FPCT > sorted[j].FPCT
	})

	table := newTable(w)
	table.Header("NAME", "TC", "A", "PO", "FPCT", "E", "E%")
	for _, r := range sorted {
		table.Append(
			r.FullName,
			strconv.Itoa(r.TC),
			strconv.Itoa(r.A),
			strconv.Itoa(r.PO),
			fmt.Sprintf("%.3f", r.FPCT),
			strconv.Itoa(r.E),
			fmt.Sprintf("%.1f%%", r.EPct),
		)
	}
	table.Render()
}

// PrintPitchingTable prints players with innings pitched, best ERA first.
func PrintPitchingTable(w io.Writer, recs []model.PlayerSeasonRecord) {
	var pitchers []model.PlayerSeasonRecord
	for _, r := range recs {
		if r.IP > 0 {
			pitchers = append(pitchers, r)
		}
	}
	if len(pitchers) == 0 {
		fmt.Fprintln(w, "No pitching stats recorded for this season.")
		return
	}
	sort.SliceStable(pitchers, func(i, j int) bool {
		return pitchers[i].ERA < pitchers[j].ERA
	})

	table := newTable(w)
	table.Header("NAME", "IP", "ERA", "WHIP", "SO", "BB", "H")
	for _, r := range pitchers {
		table.Append(
			r.FullName,
			fmt.Sprintf("%.2f", r.IP),
			fmt.Sprintf("%.2f", r.ERA),
			fmt.Sprintf("%.2f", r.WHIP),
			strconv.Itoa(r.SOPitch),
			strconv.Itoa(r.BBPitch),
			strconv.Itoa(r.HPitch),
		)
	}
	table.Render()
}

// PrintCatchingTable prints players with innings caught, most innings first.
func PrintCatchingTable(w io.Writer, recs []model.PlayerSeasonRecord) {
	var catchers []model.PlayerSeasonRecord
	for _, r := range recs {
		if r.INNCatch > 0 {
			catchers = append(catchers, r)
		}
	}
	if len(catchers) == 0 {
		fmt.Fprintln(w, "No catcher stats recorded for this season.")
		return
	}
	sort.SliceStable(catchers, func(i, j int) bool {
		return catchers[i].INNCatch > catchers[j].INNCatch
	})

	table := newTable(w)
	table.Header("NAME", "INN", "PB", "PBIC", "SB", "CS", "CS%", "FPCT")
	for _, r := range catchers {
		table.Append(
			r.FullName,
			fmt.Sprintf("%.1f", r.INNCatch),
			strconv.Itoa(r.PB),
			fmt.Sprintf("%.3f", r.PBIC),
			strconv.Itoa(r.SBCatch),
			strconv.Itoa(r.CSCatch),
			fmt.Sprintf("%.1f%%", r.CSPctCatch),
			fmt.Sprintf("%.3f", r.FPCT),
		)
	}
	table.Render()
}

// PrintBattingTrend prints one player's hitting line per season.
func PrintBattingTrend(w io.Writer, history []model.PlayerSeasonRecord) {
	table := newTable(w)
	table.Header("SEASON", "PA", "H", "AVG", "OBP", "SLG", "OPS", "QAB%", "SO%")
	for _, r := range history {
		table.Append(
			r.Season,
			strconv.Itoa(r.PA),
			strconv.Itoa(r.H),
			fmt.Sprintf("%.3f", r.AVG),
			fmt.Sprintf("%.3f", r.OBP),
			fmt.Sprintf("%.3f", r.SLG),
			fmt.Sprintf("%.3f", r.OPS),
			fmt.Sprintf("%.1f%%", r.QAB),
			fmt.Sprintf("%.1f%%", r.SOPct),
		)
	}
	table.Render()
}

// PrintFieldingTrend prints one player's fielding line per season with
// recorded chances.
func PrintFieldingTrend(w io.Writer, history []model.PlayerSeasonRecord) {
	var seasons []model.PlayerSeasonRecord
	for _, r := range history {
		if r.TC > 0 {
			seasons = append(seasons, r)
		}
	}
	if len(seasons) == 0 {
		fmt.Fprintln(w, "No fielding stats available for this player.")
		return
	}
	table := newTable(w)
	table.Header("SEASON", "TC", "A", "PO", "FPCT", "E", "E%")
	for _, r := range seasons {
		table.Append(
			r.Season,
			strconv.Itoa(r.TC),
			strconv.Itoa(r.A),
			strconv.Itoa(r.PO),
			fmt.Sprintf("%.3f", r.FPCT),
			strconv.Itoa(r.E),
			fmt.Sprintf("%.1f%%", r.EPct),
		)
	}
	table.Render()
}

// PrintPitchingTrend prints one player's pitching line per season with
// innings pitched. Prints nothing when the player never pitched.
func PrintPitchingTrend(w io.Writer, history []model.PlayerSeasonRecord) {
	var seasons []model.PlayerSeasonRecord
	for _, r := range history {
		if r.IP > 0 {
			seasons = append(seasons, r)
		}
	}
	if len(seasons) == 0 {
		fmt.Fprintln(w, "No pitching stats available for this player.")
		return
	}
	table := newTable(w)
	table.Header("SEASON", "IP", "ERA", "WHIP", "SO", "BB", "H")
	for _, r := range seasons {
		table.Append(
			r.Season,
			fmt.Sprintf("%.2f", r.IP),
			fmt.Sprintf("%.2f", r.ERA),
			fmt.Sprintf("%.2f", r.WHIP),
			strconv.Itoa(r.SOPitch),
			strconv.Itoa(r.BBPitch),
			strconv.Itoa(r.HPitch),
		)
	}
	table.Render()
}

// PrintCatchingTrend prints one player's catching line per season with
// innings caught, plus career totals underneath.
func PrintCatchingTrend(w io.Writer, history []model.PlayerSeasonRecord) {
	var seasons []model.PlayerSeasonRecord
	for _, r := range history {
		if r.INNCatch > 0 {
			seasons = append(seasons, r)
		}
	}
	if len(seasons) == 0 {
		fmt.Fprintln(w, "No catching stats available for this player.")
		return
	}
	table := newTable(w)
	table.Header("SEASON", "INN", "PB", "PBIC", "SB", "CS", "CS%")
	for _, r := range seasons {
		table.Append(
			r.Season,
			fmt.Sprintf("%.1f", r.INNCatch),
			strconv.Itoa(r.PB),
			fmt.Sprintf("%.3f", r.PBIC),
			strconv.Itoa(r.SBCatch),
			strconv.Itoa(r.CSCatch),
			fmt.Sprintf("%.1f%%", r.CSPctCatch),
		)
	}
	table.Render()

	var inn float64
	var pb, sbAllowed, cs int
	for _, r := range seasons {
		inn += r.INNCatch
		pb += r.PB
		sbAllowed += r.SBCatch
		cs += r.CSCatch
	}
	careerCS := 0.0
	if att := sbAllowed + cs; att > 0 {
		careerCS = float64(cs) / float64(att) * 100
	}
	fmt.Fprintf(w, "Career: %.1f innings caught, %d passed balls, %.1f%% caught stealing\n",
		inn, pb, careerCS)
}

// PrintFeedback prints coaching observations.
func PrintFeedback(w io.Writer, entries []feedback.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "* %s\n", e.Title)
		fmt.Fprintf(w, "  %s\n\n", e.Message)
	}
}

// PrintRadarProfile prints one normalized skill profile as a table with a
// text gauge per metric.
func PrintRadarProfile(w io.Writer, title string, p radar.Profile) {
	fmt.Fprintf(w, "%s\n", title)
	table := newTable(w)
	table.Header("METRIC", "SCORE", "VS TEAM MAX")
	for i, label := range p.Labels {
		table.Append(label, fmt.Sprintf("%.2f", p.Values[i]), gauge(p.Values[i]))
	}
	table.Render()
}

// PrintRadarProgression prints one row per metric with a column per season,
// each value normalized against that season's team maximum.
func PrintRadarProgression(w io.Writer, seasons []string, profiles []radar.Profile) {
	if len(profiles) == 0 {
		return
	}
	header := make([]any, 0, len(seasons)+1)
	header = append(header, "METRIC")
	for _, s := range seasons {
		header = append(header, s)
	}

	table := newTable(w)
	table.Header(header...)
	for i, label := range profiles[0].Labels {
		row := make([]any, 0, len(profiles)+1)
		row = append(row, label)
		for _, p := range profiles {
			row = append(row, fmt.Sprintf("%.0f%%", p.Values[i]*100))
		}
		table.Append(row...)
	}
	table.Render()
}

// gauge renders a value in [0,1] as a ten-slot bar. Values over 1 (subject
// outside the reference group) saturate the bar.
func gauge(v float64) string {
	filled := int(v*10 + 0.5)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	bar := make([]byte, 10)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	return string(bar)
}
