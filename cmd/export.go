package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmspartans/dugout/internal/model"
	"github.com/nmspartans/dugout/internal/storage"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the combined normalized dataset as one CSV",
	Long: `Write every stored player-season record, including derived metrics, to a
single tidy CSV with disambiguated column names. Rows keep season-declaration
order. With no --out the CSV goes to stdout.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
}

// exportHeader is the flat column set of the combined dataset.
var exportHeader = []string{
	"Season", "Full Name", "Number", "First", "Last",
	"GP", "PA", "AB", "H", "1B", "2B", "3B", "HR", "RBI", "BB", "SO", "K-L", "SB", "CS",
	"AVG", "OBP", "SLG", "OPS", "QAB%", "BA/RISP",
	"IP", "ERA", "WHIP", "ER", "BB_Pitch", "SO_Pitch", "H_Pitch", "R_Pitch",
	"TC", "A", "PO", "E", "FPCT",
	"INN_Catch", "PB", "SB_Catch", "CS_Catch", "PIK_Catch",
	"SO%", "CS%_Catch", "PBIC", "E%",
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	records, err := db.AllRecords()
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	var out io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(exportRow(r)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if exportOut != "" {
		fmt.Fprintf(os.Stdout, "Wrote %d records to %s\n", len(records), exportOut)
	}
	return nil
}

func exportRow(r model.PlayerSeasonRecord) []string {
	itoa := strconv.Itoa
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return []string{
		r.Season, r.FullName, itoa(r.Number), r.First, r.Last,
		itoa(r.GP), itoa(r.PA), itoa(r.AB), itoa(r.H), itoa(r.Singles), itoa(r.Doubles),
		itoa(r.Triples), itoa(r.HR), itoa(r.RBI), itoa(r.BB), itoa(r.SO), itoa(r.KL),
		itoa(r.SB), itoa(r.CS),
		f(r.AVG), f(r.OBP), f(r.SLG), f(r.OPS), f(r.QAB), f(r.BARISP),
		f(r.IP), f(r.ERA), f(r.WHIP), itoa(r.ER), itoa(r.BBPitch), itoa(r.SOPitch),
		itoa(r.HPitch), itoa(r.RPitch),
		itoa(r.TC), itoa(r.A), itoa(r.PO), itoa(r.E), f(r.FPCT),
		f(r.INNCatch), itoa(r.PB), itoa(r.SBCatch), itoa(r.CSCatch), itoa(r.PIKCatch),
		f(r.SOPct), f(r.CSPctCatch), f(r.PBIC), f(r.EPct),
	}
}
