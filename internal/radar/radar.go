// Package radar scales a fixed set of metrics for one player-season against
// the maximum observed in a reference group, for comparative display.
package radar

import "github.com/nmspartans/dugout/internal/model"

// Metric names one radar axis and extracts its source field from a record.
type Metric struct {
	Label string
	Value func(*model.PlayerSeasonRecord) float64
}

// DefaultMetrics is the canonical five-axis skill profile.
func DefaultMetrics() []Metric {
	return []Metric{
		{Label: "Contact", Value: func(r *model.PlayerSeasonRecord) float64 { return r.AVG }},
		{Label: "Power", Value: func(r *model.PlayerSeasonRecord) float64 { return r.SLG }},
		{Label: "Discipline", Value: func(r *model.PlayerSeasonRecord) float64 { return r.OBP }},
		{Label: "Speed", Value: func(r *model.PlayerSeasonRecord) float64 { return float64(r.SB) }},
		{Label: "Fielding", Value: func(r *model.PlayerSeasonRecord) float64 { return r.FPCT }},
	}
}

// Profile maps the ordered metric labels to normalized values. Values fall in
// [0,1] when the subject is drawn from the reference group; a subject compared
// against a different group may legitimately exceed 1.
type Profile struct {
	Labels []string
	Values []float64
}

// Normalize divides each of the subject's metric values by the maximum of
// that metric across the reference group. A metric whose group maximum is 0
// normalizes to 0; there is no division by zero and no hidden state, so the
// profile is deterministic for a given (subject, group, metrics) triple.
func Normalize(subject model.PlayerSeasonRecord, group []model.PlayerSeasonRecord, metrics []Metric) Profile {
	p := Profile{
		Labels: make([]string, len(metrics)),
		Values: make([]float64, len(metrics)),
	}
	for i, m := range metrics {
		p.Labels[i] = m.Label
		max := 0.0
		for j := range group {
			if v := m.Value(&group[j]); v > max {
				max = v
			}
		}
		if max > 0 {
			p.Values[i] = m.Value(&subject) / max
		}
	}
	return p
}
