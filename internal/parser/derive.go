package parser

import "github.com/nmspartans/dugout/internal/model"

// Derive fills the rates the export does not supply. Pure function of the
// already-coerced fields on the same record; every ratio is 0 when its
// denominator is 0.
func Derive(r *model.PlayerSeasonRecord) {
	if r.PA > 0 {
		r.SOPct = float64(r.SO) / float64(r.PA) * 100
	}
	if attempts := r.SBCatch + r.CSCatch; attempts > 0 {
		r.CSPctCatch = float64(r.CSCatch) / float64(attempts) * 100
	}
	if r.INNCatch > 0 {
		r.PBIC = float64(r.PB) / r.INNCatch
	}
	if chances := r.E + r.A + r.PO; chances > 0 {
		r.EPct = float64(r.E) / float64(chances) * 100
	}
}
