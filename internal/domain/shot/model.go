package shot

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrDatasetUnavailable = errors.New("shot dataset unavailable")
	ErrDatasetMalformed   = errors.New("shot dataset malformed")
)

const (
	OutcomeGoal  = "Goal"
	OutcomeSaved = "Saved"
)

// Shot is one row of the shot events dataset. Numeric fields are nil when the
// source cell was empty or not a number; text fields are empty when missing.
type Shot struct {
	MatchID string
	Team    string
	X       *float64
	Y       *float64
	Outcome string
	EndY    *float64
	EndZ    *float64
	XG      *float64
}

// HasPitchFields reports whether the shot carries everything the filter stage
// requires: pitch coordinates, an outcome and an xG value.
func (s Shot) HasPitchFields() bool {
	return s.X != nil && s.Y != nil && s.Outcome != "" && s.XG != nil
}

// HasEndLocation reports whether the shot can be projected onto the goal mouth.
func (s Shot) HasEndLocation() bool {
	return s.EndY != nil && s.EndZ != nil
}

func (s Shot) IsOnTarget() bool {
	return s.Outcome == OutcomeGoal || s.Outcome == OutcomeSaved
}

// XGValue returns the xG value or zero when missing.
func (s Shot) XGValue() float64 {
	if s.XG == nil {
		return 0
	}
	return *s.XG
}

// Category groups outcomes into the three colour keys used by the charts.
type Category string

const (
	CategoryGoal  Category = "Goal"
	CategorySaved Category = "Saved"
	CategoryOther Category = "Other"
)

func CategoryOf(outcome string) Category {
	switch outcome {
	case OutcomeGoal:
		return CategoryGoal
	case OutcomeSaved:
		return CategorySaved
	default:
		return CategoryOther
	}
}

// OutcomeFilter is the outcome restriction chosen by the user.
type OutcomeFilter string

const (
	FilterGoal  OutcomeFilter = "Goal"
	FilterSaved OutcomeFilter = "Saved"
	FilterAll   OutcomeFilter = "All"
)

// OutcomeFilters lists the selectable filters in display order.
var OutcomeFilters = []OutcomeFilter{FilterGoal, FilterSaved, FilterAll}

func ParseOutcomeFilter(v string) (OutcomeFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all":
		return FilterAll, true
	case "goal":
		return FilterGoal, true
	case "saved":
		return FilterSaved, true
	default:
		return "", false
	}
}

// Round2 rounds a value to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Float returns a pointer to v. Handy for fixtures and seeds.
func Float(v float64) *float64 {
	return &v
}
