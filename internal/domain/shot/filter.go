package shot

import "sort"

// Selection is the filter tuple chosen on the dashboard.
type Selection struct {
	MatchID string
	Teams   []string
	Outcome OutcomeFilter
}

// Filter narrows shots to the selected match and teams, applies the outcome
// restriction and drops rows missing pitch coordinates, outcome or xG.
// The input slice is never modified.
func Filter(shots []Shot, sel Selection) []Shot {
	teamSet := make(map[string]struct{}, len(sel.Teams))
	for _, t := range sel.Teams {
		teamSet[t] = struct{}{}
	}

	out := make([]Shot, 0, len(shots))
	for _, item := range shots {
		if item.MatchID != sel.MatchID {
			continue
		}
		if _, ok := teamSet[item.Team]; !ok {
			continue
		}
		if sel.Outcome != "" && sel.Outcome != FilterAll && item.Outcome != string(sel.Outcome) {
			continue
		}
		if !item.HasPitchFields() {
			continue
		}
		out = append(out, item)
	}

	return out
}

// OnTarget keeps shots whose outcome is Goal or Saved.
func OnTarget(shots []Shot) []Shot {
	out := make([]Shot, 0, len(shots))
	for _, item := range shots {
		if item.IsOnTarget() {
			out = append(out, item)
		}
	}
	return out
}

// Matches returns the sorted unique match identifiers.
func Matches(shots []Shot) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 64)
	for _, item := range shots {
		if item.MatchID == "" {
			continue
		}
		if _, ok := seen[item.MatchID]; ok {
			continue
		}
		seen[item.MatchID] = struct{}{}
		out = append(out, item.MatchID)
	}
	sort.Strings(out)

	return out
}

// TeamsInMatch returns the unique teams of a match in first-appearance order.
func TeamsInMatch(shots []Shot, matchID string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 2)
	for _, item := range shots {
		if item.MatchID != matchID || item.Team == "" {
			continue
		}
		if _, ok := seen[item.Team]; ok {
			continue
		}
		seen[item.Team] = struct{}{}
		out = append(out, item.Team)
	}

	return out
}
