package shot

import "sort"

// TeamXG is the summed expected goals of one team.
type TeamXG struct {
	Team string
	XG   float64
}

// Summary holds the match statistics shown above the chart. xG values are
// unrounded; use Round2 for display.
type Summary struct {
	TotalShots int
	Goals      int
	Saves      int
	TotalXG    float64
	TeamXG     []TeamXG
}

// Summarize aggregates a filtered shot set. Totals and xG sums only consider
// shots on target (Goal or Saved).
func Summarize(filtered []Shot) Summary {
	onTarget := OnTarget(filtered)

	out := Summary{TotalShots: len(onTarget)}
	byTeam := make(map[string]float64)
	for _, item := range onTarget {
		switch item.Outcome {
		case OutcomeGoal:
			out.Goals++
		case OutcomeSaved:
			out.Saves++
		}

		xg := item.XGValue()
		out.TotalXG += xg
		byTeam[item.Team] += xg
	}

	out.TeamXG = make([]TeamXG, 0, len(byTeam))
	for team, xg := range byTeam {
		out.TeamXG = append(out.TeamXG, TeamXG{Team: team, XG: xg})
	}
	sort.Slice(out.TeamXG, func(i, j int) bool {
		return out.TeamXG[i].Team < out.TeamXG[j].Team
	})

	return out
}
