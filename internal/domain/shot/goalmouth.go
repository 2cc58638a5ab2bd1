package shot

// Goal-mouth geometry in chart units. The lateral band between the posts is
// fixed; end locations are remapped into it.
const (
	GoalPostLeft  = 36.0
	GoalPostRight = 44.0
	GoalHeight    = 2.44
	NetSpacing    = 0.3
)

// GoalMouthPoint is an on-target shot projected onto the goal plane.
type GoalMouthPoint struct {
	Shot    Shot
	Lateral float64
	Height  float64
}

// LateralRange is the observed [Min, Max] of end-location y.
type LateralRange struct {
	Min float64
	Max float64
}

// Normalize maps v from the observed range onto [GoalPostLeft, GoalPostRight].
// A zero-width range maps everything to the middle of the goal.
func (r LateralRange) Normalize(v float64) float64 {
	span := r.Max - r.Min
	if span == 0 {
		return (GoalPostLeft + GoalPostRight) / 2
	}
	return (v-r.Min)/span*(GoalPostRight-GoalPostLeft) + GoalPostLeft
}

// ProjectGoalMouth remaps the lateral coordinate of on-target shots into the
// goal band. The range is taken over every on-target shot with an end y; shots
// without an end z are left out of the result. Height is left unchanged.
func ProjectGoalMouth(shots []Shot) []GoalMouthPoint {
	rng, ok := lateralRange(shots)
	if !ok {
		return nil
	}

	out := make([]GoalMouthPoint, 0, len(shots))
	for _, item := range shots {
		if !item.IsOnTarget() || !item.HasEndLocation() {
			continue
		}
		out = append(out, GoalMouthPoint{
			Shot:    item,
			Lateral: rng.Normalize(*item.EndY),
			Height:  *item.EndZ,
		})
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

func lateralRange(shots []Shot) (LateralRange, bool) {
	var (
		rng   LateralRange
		found bool
	)
	for _, item := range shots {
		if !item.IsOnTarget() || item.EndY == nil {
			continue
		}
		v := *item.EndY
		if !found {
			rng = LateralRange{Min: v, Max: v}
			found = true
			continue
		}
		rng.Min = min(rng.Min, v)
		rng.Max = max(rng.Max, v)
	}
	return rng, found
}
