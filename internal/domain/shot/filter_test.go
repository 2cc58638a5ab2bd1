package shot

import (
	"reflect"
	"testing"
)

func fixtureShots() []Shot {
	return []Shot{
		{MatchID: "France vs Croatia", Team: "France", X: Float(108), Y: Float(38), Outcome: OutcomeGoal, EndY: Float(39), EndZ: Float(0.5), XG: Float(0.3)},
		{MatchID: "France vs Croatia", Team: "Croatia", X: Float(100), Y: Float(44), Outcome: OutcomeSaved, EndY: Float(41), EndZ: Float(1.2), XG: Float(0.1)},
		{MatchID: "France vs Croatia", Team: "France", X: Float(95), Y: Float(30), Outcome: "Off T", XG: Float(0.05)},
		{MatchID: "France vs Croatia", Team: "Croatia", X: nil, Y: Float(40), Outcome: OutcomeGoal, XG: Float(0.7)},
		{MatchID: "Brazil vs Belgium", Team: "Brazil", X: Float(110), Y: Float(36), Outcome: OutcomeGoal, EndY: Float(37), EndZ: Float(0.2), XG: Float(0.4)},
		{MatchID: "Brazil vs Belgium", Team: "Belgium", X: Float(112), Y: Float(42), Outcome: "Blocked", XG: nil},
	}
}

func TestFilter(t *testing.T) {
	shots := fixtureShots()

	tests := []struct {
		name      string
		sel       Selection
		wantCount int
	}{
		{
			name:      "match and all teams",
			sel:       Selection{MatchID: "France vs Croatia", Teams: []string{"France", "Croatia"}, Outcome: FilterAll},
			wantCount: 3,
		},
		{
			name:      "single team",
			sel:       Selection{MatchID: "France vs Croatia", Teams: []string{"France"}, Outcome: FilterAll},
			wantCount: 2,
		},
		{
			name:      "goal only",
			sel:       Selection{MatchID: "France vs Croatia", Teams: []string{"France", "Croatia"}, Outcome: FilterGoal},
			wantCount: 1,
		},
		{
			name:      "no teams selected",
			sel:       Selection{MatchID: "France vs Croatia", Teams: []string{}, Outcome: FilterAll},
			wantCount: 0,
		},
		{
			name:      "drops rows missing xg",
			sel:       Selection{MatchID: "Brazil vs Belgium", Teams: []string{"Brazil", "Belgium"}, Outcome: FilterAll},
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(shots, tt.sel)
			if len(got) != tt.wantCount {
				t.Fatalf("unexpected count: got=%d want=%d", len(got), tt.wantCount)
			}

			allowed := make(map[string]bool, len(tt.sel.Teams))
			for _, team := range tt.sel.Teams {
				allowed[team] = true
			}
			for _, item := range got {
				if item.MatchID != tt.sel.MatchID {
					t.Fatalf("row from other match: %q", item.MatchID)
				}
				if !allowed[item.Team] {
					t.Fatalf("row from unselected team: %q", item.Team)
				}
				if !item.HasPitchFields() {
					t.Fatalf("row missing required fields kept: %+v", item)
				}
			}
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	shots := fixtureShots()
	before := len(shots)

	_ = Filter(shots, Selection{MatchID: "France vs Croatia", Teams: []string{"France"}, Outcome: FilterGoal})

	if len(shots) != before || shots[2].Outcome != "Off T" {
		t.Fatalf("input slice changed")
	}
}

func TestMatches_SortedUnique(t *testing.T) {
	got := Matches(append(fixtureShots(), Shot{MatchID: ""}))
	want := []string{"Brazil vs Belgium", "France vs Croatia"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected matches: got=%v want=%v", got, want)
	}
}

func TestTeamsInMatch_FirstAppearanceOrder(t *testing.T) {
	got := TeamsInMatch(fixtureShots(), "France vs Croatia")
	want := []string{"France", "Croatia"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected teams: got=%v want=%v", got, want)
	}

	if got := TeamsInMatch(fixtureShots(), "missing"); len(got) != 0 {
		t.Fatalf("expected no teams for unknown match, got %v", got)
	}
}

func TestParseOutcomeFilter(t *testing.T) {
	tests := []struct {
		in     string
		want   OutcomeFilter
		wantOK bool
	}{
		{in: "", want: FilterAll, wantOK: true},
		{in: "All", want: FilterAll, wantOK: true},
		{in: "goal", want: FilterGoal, wantOK: true},
		{in: " Saved ", want: FilterSaved, wantOK: true},
		{in: "Blocked", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseOutcomeFilter(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("ParseOutcomeFilter(%q)=(%q,%v) want=(%q,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	if CategoryOf(OutcomeGoal) != CategoryGoal {
		t.Fatalf("goal should map to goal category")
	}
	if CategoryOf(OutcomeSaved) != CategorySaved {
		t.Fatalf("saved should map to saved category")
	}
	if CategoryOf("Wayward") != CategoryOther {
		t.Fatalf("wayward should map to other category")
	}
}
