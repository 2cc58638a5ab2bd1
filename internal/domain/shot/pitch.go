package shot

// StatsBomb pitch dimensions. The pitch view shows the attacking half only.
const (
	PitchLength     = 120.0
	PitchWidth      = 80.0
	PitchHalfLength = PitchLength / 2

	// MarkerScale converts xG into marker area (square points).
	MarkerScale = 500.0
)

// MarkerArea is the pitch-view marker area for a shot, linear in xG.
func MarkerArea(s Shot) float64 {
	return MarkerScale * s.XGValue()
}
