package shot

import (
	"math"
	"testing"
)

func TestSummarize_ThreeShotExample(t *testing.T) {
	shots := []Shot{
		{MatchID: "m1", Team: "A", X: Float(100), Y: Float(40), Outcome: OutcomeGoal, XG: Float(0.3)},
		{MatchID: "m1", Team: "B", X: Float(100), Y: Float(40), Outcome: OutcomeGoal, XG: Float(0.5)},
		{MatchID: "m1", Team: "A", X: Float(100), Y: Float(40), Outcome: OutcomeSaved, XG: Float(0.2)},
	}

	got := Summarize(Filter(shots, Selection{MatchID: "m1", Teams: []string{"A", "B"}, Outcome: FilterAll}))

	if got.TotalShots != 3 || got.Goals != 2 || got.Saves != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if Round2(got.TotalXG) != 1.00 {
		t.Fatalf("unexpected total xG: %v", got.TotalXG)
	}
}

func TestSummarize_SavedOnlyExcludesGoals(t *testing.T) {
	shots := []Shot{
		{MatchID: "m1", Team: "A", X: Float(100), Y: Float(40), Outcome: OutcomeGoal, XG: Float(0.3)},
		{MatchID: "m1", Team: "B", X: Float(100), Y: Float(40), Outcome: OutcomeGoal, XG: Float(0.5)},
		{MatchID: "m1", Team: "A", X: Float(100), Y: Float(40), Outcome: OutcomeSaved, XG: Float(0.2)},
	}

	filtered := Filter(shots, Selection{MatchID: "m1", Teams: []string{"A", "B"}, Outcome: FilterSaved})
	for _, item := range filtered {
		if item.Outcome == OutcomeGoal {
			t.Fatalf("goal row kept under Saved filter")
		}
	}

	got := Summarize(filtered)
	if got.Goals != 0 || got.Saves != 1 || got.TotalShots != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if Round2(got.TotalXG) != 0.2 {
		t.Fatalf("unexpected total xG: %v", got.TotalXG)
	}
}

func TestSummarize_Invariants(t *testing.T) {
	filtered := Filter(fixtureShots(), Selection{
		MatchID: "France vs Croatia",
		Teams:   []string{"France", "Croatia"},
		Outcome: FilterAll,
	})

	got := Summarize(filtered)
	if got.Goals+got.Saves > got.TotalShots {
		t.Fatalf("goals+saves exceeds total: %+v", got)
	}
	if got.TotalShots != 2 {
		t.Fatalf("off-target shot counted: %+v", got)
	}

	sum := 0.0
	for _, item := range got.TeamXG {
		sum += item.XG
	}
	if math.Abs(sum-got.TotalXG) > 0.01 {
		t.Fatalf("team xG sum %v differs from total %v", sum, got.TotalXG)
	}

	if len(got.TeamXG) != 2 || got.TeamXG[0].Team != "Croatia" || got.TeamXG[1].Team != "France" {
		t.Fatalf("team xG not sorted by team: %+v", got.TeamXG)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)
	if got.TotalShots != 0 || got.TotalXG != 0 || len(got.TeamXG) != 0 {
		t.Fatalf("unexpected summary for empty input: %+v", got)
	}
}
