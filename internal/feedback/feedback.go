// Package feedback turns one player-season record into coaching observations.
//
// The rule set is a fixed, ordered table of guard/message pairs, baseball
// specific by design. Every rule whose guard holds contributes one entry;
// when none fire a single "On Track" entry is emitted. Evaluation is a pure
// function of the record and never fails: a player with no pitching or
// catching data simply skips those rule groups.
package feedback

import (
	"fmt"

	"github.com/nmspartans/dugout/internal/model"
)

// Entry is one coaching observation. Entries are produced fresh per
// evaluation and are not persisted.
type Entry struct {
	Title   string
	Message string
}

// rule pairs a guard with its entry builder. Guards embed the per-group
// sample-size floors (PA>10, TC>50, IP>5, INN_Catch>5).
type rule struct {
	when func(*model.PlayerSeasonRecord) bool
	emit func(*model.PlayerSeasonRecord) Entry
}

// rules in fixed priority order: batting, fielding, pitching, catching.
var rules = []rule{
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.PA > 10 && r.SORate() > 0.25
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "High Strikeout Rate",
				Message: fmt.Sprintf("Strikeout rate is %.1f%%. Focus on head discipline, starting with hands back, and shortening the swing.",
					r.SORate()*100),
			}
		},
	},
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.PA > 10 && r.QAB < 40
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "Quality At-Bats",
				Message: fmt.Sprintf("QAB%% is %v%%. Regardless of whether your batting average shows it, you can improve your Quality At-Bats percentage by extending at-bats, fouling off tough pitches, and drawing more walks. Take a deep breath and lock in one pitch at a time.",
					r.QAB),
			}
		},
	},
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.PA > 10 && r.SLG < r.OBP && r.AVG > 0.250
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title:   "Power Potential",
				Message: "Good on-base skills, but Slugging Percentage is lower than On-Base Percentage, indicating that your walks are contributing more heavily towards your On-Base Percentage. Focus on keeping hands back to create a solid swing sooner while maintaining head discipline to see the ball.",
			}
		},
	},
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.PA > 10 && r.BARISP < r.AVG-0.050
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "Mental Game",
				Message: fmt.Sprintf("Batting Average drops with Runners in Scoring Position (RISP) (%.3f vs %.3f). Work on mental approach in high-pressure spots - take a deep breath and reset your mindset. Try stepping out briefly and count backwards from five. 5-4-3-2-1, go!",
					r.BARISP, r.AVG),
			}
		},
	},
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.PA > 10 && float64(r.KL) > float64(r.PA)*0.07
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "Overly Cautious at the Plate",
				Message: fmt.Sprintf("Strikeouts Looking (K-L) rate is %.1f%%. Remember your technique, but start taking a few chances! If you're already striking out looking, how much worse could strikeout swinging be?",
					r.KLRate()*100),
			}
		},
	},
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.TC > 50 && r.FPCT < 0.850
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "Fielding Fundamentals",
				Message: fmt.Sprintf("Fielding Percentage is %.3f. Emphasize footwork, glove work, throwing accuracy, and follow-through during practice. Once you field the ball, look up and establish eye contact with your target as early as possible and well before the ball leaves your hand.",
					r.FPCT),
			}
		},
	},
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.TC > 50 && r.EPct > 5
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "Error Reduction",
				Message: fmt.Sprintf("Error rate is %.1f%%. Focus on consistent mechanics and situational awareness to reduce errors. Be sure to actively communicate with your teammates!",
					r.EPct),
			}
		},
	},
	{
		// Walks per inning over 1. The export's primary BB column (batting
		// walks) is what the scorekeeping tool compares against IP here, and
		// that comparison is preserved exactly.
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.IP > 5 && float64(r.BB) > r.IP
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "Pitching Control",
				Message: fmt.Sprintf("Walking %.1f batters per inning. Bullpen sessions should focus strictly on fastball command.",
					r.WalksPerInning()),
			}
		},
	},
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.IP > 5 && r.WHIP > 1.8
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title:   "Run Prevention",
				Message: "Walks plus Hits per Inning Pitched (WHIP) is high. Focus on one batter at a time and don't be afraid to put the ball into play. Trust your defense to make the play!",
			}
		},
	},
	{
		// More than one passed ball every five innings.
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.INNCatch > 5 && float64(r.PB) > r.INNCatch*0.2
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "Catcher Blocking",
				Message: fmt.Sprintf("High Passed Ball rate (%d in %v innings). Focus on blocking drills and softer hands receiving. Take a deep breath prior to the pitch and focus on keeping eyes open as the ball approaches to better track its trajectory and execute your block.",
					r.PB, r.INNCatch),
			}
		},
	},
	{
		when: func(r *model.PlayerSeasonRecord) bool {
			return r.INNCatch > 5 && r.CatchAttempts() >= 5 && r.CSPctCatch < 10
		},
		emit: func(r *model.PlayerSeasonRecord) Entry {
			return Entry{
				Title: "Catcher Throwing",
				Message: fmt.Sprintf("Caught Stealing %% is low (%.1f%%). Work on transfer speed, footwork, and arm strength. Be sure to fully step toward the target while maintaining eye contact and execute a full follow-through motion towards the glove of your infielder.",
					r.CSPctCatch),
			}
		},
	},
}

// Evaluate runs every rule against the record in fixed order and returns the
// entries whose guards held. The result is never empty.
func Evaluate(r model.PlayerSeasonRecord) []Entry {
	var entries []Entry
	for _, rule := range rules {
		if rule.when(&r) {
			entries = append(entries, rule.emit(&r))
		}
	}
	if len(entries) == 0 {
		entries = append(entries, Entry{
			Title:   "On Track",
			Message: "Stats look solid across the board. Keep maintaining current training routine.",
		})
	}
	return entries
}
