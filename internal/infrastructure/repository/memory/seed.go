package memory

import "github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"

const (
	MatchFinal      = "France vs Croatia"
	MatchOpening    = "Russia vs Saudi Arabia"
	MatchGroupStage = "Argentina vs Iceland"
)

// SeedShots is a small hand-picked sample of 2018 shot events covering every
// outcome category and a few rows with missing cells.
func SeedShots() []shot.Shot {
	f := shot.Float
	return []shot.Shot{
		{MatchID: MatchFinal, Team: "France", X: f(108.1), Y: f(37.9), Outcome: shot.OutcomeGoal, EndY: f(37.2), EndZ: f(0.4), XG: f(0.76)},
		{MatchID: MatchFinal, Team: "Croatia", X: f(103.4), Y: f(45.2), Outcome: shot.OutcomeGoal, EndY: f(43.6), EndZ: f(1.9), XG: f(0.05)},
		{MatchID: MatchFinal, Team: "France", X: f(97.0), Y: f(33.5), Outcome: shot.OutcomeSaved, EndY: f(40.3), EndZ: f(0.7), XG: f(0.04)},
		{MatchID: MatchFinal, Team: "Croatia", X: f(99.6), Y: f(41.0), Outcome: "Off T", XG: f(0.09)},
		{MatchID: MatchFinal, Team: "France", X: f(112.3), Y: f(42.1), Outcome: "Blocked", XG: f(0.21)},
		{MatchID: MatchFinal, Team: "Croatia", X: f(95.0), Y: f(50.0), Outcome: shot.OutcomeSaved, EndY: nil, EndZ: f(0.2), XG: f(0.03)},
		{MatchID: MatchFinal, Team: "France", X: nil, Y: f(40.0), Outcome: shot.OutcomeGoal, XG: f(0.3)},
		{MatchID: MatchOpening, Team: "Russia", X: f(110.2), Y: f(39.4), Outcome: shot.OutcomeGoal, EndY: f(38.8), EndZ: f(0.9), XG: f(0.33)},
		{MatchID: MatchOpening, Team: "Saudi Arabia", X: f(101.7), Y: f(30.6), Outcome: shot.OutcomeSaved, EndY: f(41.5), EndZ: f(0.3), XG: f(0.06)},
		{MatchID: MatchOpening, Team: "Russia", X: f(92.3), Y: f(44.8), Outcome: "Wayward", XG: f(0.02)},
		{MatchID: MatchGroupStage, Team: "Iceland", X: f(109.0), Y: f(41.2), Outcome: shot.OutcomeGoal, EndY: f(39.9), EndZ: f(0.1), XG: f(0.44)},
		{MatchID: MatchGroupStage, Team: "Argentina", X: f(108.0), Y: f(40.0), Outcome: shot.OutcomeSaved, EndY: f(40.2), EndZ: f(1.0), XG: f(0.76)},
	}
}
