package storage

import (
	"database/sql"
	"fmt"

	"github.com/nmspartans/dugout/internal/model"
)

// SeasonRow is the stored summary of one loaded season.
type SeasonRow struct {
	Label    string
	Seq      int
	Source   string
	Players  int
	LoadedAt string
}

const statColumns = `
	season, full_name, number, first, last,
	gp, pa, ab, h, singles, doubles, triples, hr, rbi, bb, so, k_l, sb, cs,
	avg, obp, slg, ops, qab_pct, ba_risp,
	ip, era, whip, er, bb_pitch, so_pitch, h_pitch, r_pitch,
	tc, a, po, e, fpct,
	inn_catch, pb, sb_catch, cs_catch, pik_catch,
	so_pct, cs_pct_catch, pbic, e_pct`

// ReplaceAll replaces the entire stored dataset in one transaction: the
// dataset is rebuilt from source on every load, never patched in place.
func (db *DB) ReplaceAll(seasons []SeasonRow, records []model.PlayerSeasonRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM player_season_stats"); err != nil {
		return fmt.Errorf("clear stats: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM seasons"); err != nil {
		return fmt.Errorf("clear seasons: %w", err)
	}

	seasonStmt, err := tx.Prepare(`
		INSERT INTO seasons(label, seq, source, players, loaded_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer seasonStmt.Close()

	for _, s := range seasons {
		if _, err := seasonStmt.Exec(s.Label, s.Seq, s.Source, s.Players, s.LoadedAt); err != nil {
			return fmt.Errorf("insert season %q: %w", s.Label, err)
		}
	}

	stmt, err := tx.Prepare(`
		INSERT INTO player_season_stats(` + statColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.Season, r.FullName, r.Number, r.First, r.Last,
			r.GP, r.PA, r.AB, r.H, r.Singles, r.Doubles, r.Triples, r.HR, r.RBI, r.BB, r.SO, r.KL, r.SB, r.CS,
			r.AVG, r.OBP, r.SLG, r.OPS, r.QAB, r.BARISP,
			r.IP, r.ERA, r.WHIP, r.ER, r.BBPitch, r.SOPitch, r.HPitch, r.RPitch,
			r.TC, r.A, r.PO, r.E, r.FPCT,
			r.INNCatch, r.PB, r.SBCatch, r.CSCatch, r.PIKCatch,
			r.SOPct, r.CSPctCatch, r.PBIC, r.EPct,
		)
		if err != nil {
			return fmt.Errorf("insert stats for %s / %s: %w", r.FullName, r.Season, err)
		}
	}
	return tx.Commit()
}

// ListSeasons returns the stored seasons in declaration order.
func (db *DB) ListSeasons() ([]SeasonRow, error) {
	rows, err := db.conn.Query(`
		SELECT label, seq, source, players, loaded_at
		FROM seasons ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SeasonRow
	for rows.Next() {
		var s SeasonRow
		if err := rows.Scan(&s.Label, &s.Seq, &s.Source, &s.Players, &s.LoadedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// LatestSeason returns the stored season with the highest sequence number
// that actually has player rows, or "" when the store is empty.
func (db *DB) LatestSeason() (string, error) {
	var label string
	err := db.conn.QueryRow(`
		SELECT label FROM seasons WHERE players > 0
		ORDER BY seq DESC LIMIT 1`).Scan(&label)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return label, nil
}

// SeasonStats returns every player record for one season, in export row order.
func (db *DB) SeasonStats(season string) ([]model.PlayerSeasonRecord, error) {
	rows, err := db.conn.Query(`
		SELECT `+statColumns+` FROM player_season_stats
		WHERE season = ?
		ORDER BY rowid`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// PlayerHistory returns all records for one player across seasons, in
// season-declaration order.
func (db *DB) PlayerHistory(fullName string) ([]model.PlayerSeasonRecord, error) {
	rows, err := db.conn.Query(`
		SELECT `+statColumns+` FROM player_season_stats p
		JOIN seasons s ON s.label = p.season
		WHERE p.full_name = ?
		ORDER BY s.seq`, fullName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Roster returns the distinct player identities in one season, sorted.
func (db *DB) Roster(season string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT DISTINCT full_name FROM player_season_stats
		WHERE season = ?
		ORDER BY full_name`, season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

// Players returns every distinct player identity across all seasons, sorted.
func (db *DB) Players() ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT DISTINCT full_name FROM player_season_stats
		ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanStrings(rows)
}

// AllRecords returns the full stored dataset in season-declaration, then
// export-row order.
func (db *DB) AllRecords() ([]model.PlayerSeasonRecord, error) {
	rows, err := db.conn.Query(`
		SELECT ` + statColumns + ` FROM player_season_stats p
		JOIN seasons s ON s.label = p.season
		ORDER BY s.seq, p.rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// QueryRaw runs an arbitrary query and returns its columns and stringified
// rows, for the sql command.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func scanRecords(rows *sql.Rows) ([]model.PlayerSeasonRecord, error) {
	var out []model.PlayerSeasonRecord
	for rows.Next() {
		var r model.PlayerSeasonRecord
		err := rows.Scan(
			&r.Season, &r.FullName, &r.Number, &r.First, &r.Last,
			&r.GP, &r.PA, &r.AB, &r.H, &r.Singles, &r.Doubles, &r.Triples, &r.HR, &r.RBI, &r.BB, &r.SO, &r.KL, &r.SB, &r.CS,
			&r.AVG, &r.OBP, &r.SLG, &r.OPS, &r.QAB, &r.BARISP,
			&r.IP, &r.ERA, &r.WHIP, &r.ER, &r.BBPitch, &r.SOPitch, &r.HPitch, &r.RPitch,
			&r.TC, &r.A, &r.PO, &r.E, &r.FPCT,
			&r.INNCatch, &r.PB, &r.SBCatch, &r.CSCatch, &r.PIKCatch,
			&r.SOPct, &r.CSPctCatch, &r.PBIC, &r.EPct,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
