package model

// PlayerSeasonRecord is one row of a GameChanger season export after column
// disambiguation and numeric coercion: one player, one season. Records are
// built once at load time and never mutated afterwards; a season's full record
// set is replaced wholesale on reload.
//
// The export reuses abbreviated headers across its batting, pitching and
// fielding/catching sections (BB, SO, SB, CS each appear up to three times).
// Fields carrying a Pitch or Catch suffix correspond to the second and third
// occurrence of the shared header.
type PlayerSeasonRecord struct {
	Season   string
	Number   int
	First    string
	Last     string
	FullName string // "First Last", the player identity key

	// Batting (first header occurrence).
	GP      int
	PA      int
	AB      int
	H       int
	Singles int // 1B
	Doubles int // 2B
	Triples int // 3B
	HR      int
	RBI     int
	BB      int
	SO      int
	KL      int // K-L, strikeouts looking
	SB      int
	CS      int
	AVG     float64
	OBP     float64
	SLG     float64
	OPS     float64
	QAB     float64 // QAB%, supplied by the export
	BARISP  float64 // BA/RISP

	// Pitching (second header occurrence).
	IP      float64
	ERA     float64
	WHIP    float64
	ER      int
	BBPitch int
	SOPitch int
	HPitch  int
	RPitch  int

	// Fielding.
	TC   int
	A    int
	PO   int
	E    int
	FPCT float64

	// Catching (third header occurrence; INN only appears in this section).
	INNCatch float64
	PB       int
	SBCatch  int
	CSCatch  int
	PIKCatch int

	// Derived at load time, never present in the export.
	SOPct      float64 // SO/PA*100
	CSPctCatch float64 // CS_Catch/(SB_Catch+CS_Catch)*100
	PBIC       float64 // PB per inning caught
	EPct       float64 // E/(E+A+PO)*100
}

// SORate returns strikeouts per plate appearance.
func (r *PlayerSeasonRecord) SORate() float64 {
	if r.PA == 0 {
		return 0
	}
	return float64(r.SO) / float64(r.PA)
}

// KLRate returns strikeouts-looking per plate appearance.
func (r *PlayerSeasonRecord) KLRate() float64 {
	if r.PA == 0 {
		return 0
	}
	return float64(r.KL) / float64(r.PA)
}

// WalksPerInning returns walks per inning pitched.
func (r *PlayerSeasonRecord) WalksPerInning() float64 {
	if r.IP == 0 {
		return 0
	}
	return float64(r.BB) / r.IP
}

// CatchAttempts returns steal attempts against this player as a catcher.
func (r *PlayerSeasonRecord) CatchAttempts() int {
	return r.SBCatch + r.CSCatch
}
