package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the stats database",
	Long: `Run an arbitrary SQL query against the stats database and print results as a table.

Schema overview:
  seasons(label, seq, source, players, loaded_at)
  player_season_stats(season, full_name, number, first, last,
    gp, pa, ab, h, singles, doubles, triples, hr, rbi, bb, so, k_l, sb, cs,
    avg, obp, slg, ops, qab_pct, ba_risp,
    ip, era, whip, er, bb_pitch, so_pitch, h_pitch, r_pitch,
    tc, a, po, e, fpct,
    inn_catch, pb, sb_catch, cs_catch, pik_catch,
    so_pct, cs_pct_catch, pbic, e_pct)

Example:
  dugout sql "SELECT full_name, avg, ops FROM player_season_stats WHERE pa > 10 ORDER BY ops DESC"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}
