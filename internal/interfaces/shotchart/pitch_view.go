package shotchart

import (
	"context"

	svg "github.com/ajstarks/svgo"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
)

const (
	PitchViewTitle = "Pitch View"

	pitchPxPerUnit = 8
	pitchPadding   = 24
	pitchOpacity   = "0.8"
)

// StatsBomb pitch markings, in pitch units.
const (
	penaltyAreaDepth = 18.0
	penaltyAreaLeft  = 18.0
	penaltyAreaRight = 62.0
	sixYardDepth     = 6.0
	sixYardLeft      = 30.0
	sixYardRight     = 50.0
	penaltySpotX     = 108.0
	circleRadius     = 10.0
	goalDepth        = 2.0
)

// pitchFrame shows the attacking half vertically: pitch y runs left to right
// and pitch x runs bottom (halfway line) to top (goal line).
func pitchFrame() frame {
	return frame{
		left:   pitchPadding,
		top:    pitchPadding,
		width:  pixels(shot.PitchWidth, pitchPxPerUnit),
		height: pixels(shot.PitchLength-shot.PitchHalfLength, pitchPxPerUnit),
		xMin:   0,
		xMax:   shot.PitchWidth,
		yMin:   shot.PitchHalfLength,
		yMax:   shot.PitchLength,
	}
}

// RenderPitchView draws a half pitch with one marker per shot at its pitch
// location. Marker area grows linearly with xG; colour follows the outcome.
func (r *Renderer) RenderPitchView(ctx context.Context, shots []shot.Shot) ([]byte, error) {
	f := pitchFrame()
	width, height := f.width+2*pitchPadding, f.height+2*pitchPadding

	return render(ctx, func(canvas *svg.SVG) {
		canvas.Start(width, height)
		canvas.Title(PitchViewTitle)
		canvas.Rect(0, 0, width, height, "fill:"+colorGround)

		drawHalfPitch(canvas, f)

		canvas.Gstyle("stroke:" + colorEdge + ";stroke-width:1;fill-opacity:" + pitchOpacity)
		for _, item := range shots {
			if item.X == nil || item.Y == nil {
				continue
			}
			radius := r.markerRadius(shot.MarkerArea(item))
			if radius == 0 {
				continue
			}
			canvas.Circle(f.px(*item.Y), f.py(*item.X), radius, "fill:"+categoryFill[shot.CategoryOf(item.Outcome)])
		}
		canvas.Gend()

		legend(canvas, f.left+f.width-160, f.top+10, "Shot Details", []legendEntry{
			{label: "Goal", fill: categoryFill[shot.CategoryGoal]},
			{label: "Saved", fill: categoryFill[shot.CategorySaved]},
			{label: "Other Outcomes", fill: categoryFill[shot.CategoryOther]},
		})

		canvas.End()
	})
}

func drawHalfPitch(canvas *svg.SVG, f frame) {
	const (
		length = shot.PitchLength
		half   = shot.PitchHalfLength
		width  = shot.PitchWidth
		centre = shot.PitchWidth / 2
	)
	radius := pixels(circleRadius, f.scale())

	canvas.Gstyle("fill:none;stroke:" + colorLine + ";stroke-width:2")

	// Touchlines, goal line and halfway line.
	canvas.Rect(f.px(0), f.py(length), f.px(width)-f.px(0), f.py(half)-f.py(length))

	// Centre circle, upper half only.
	canvas.Arc(f.px(centre-circleRadius), f.py(half), radius, radius, 0, false, true, f.px(centre+circleRadius), f.py(half))

	// Penalty area and six-yard box.
	canvas.Rect(
		f.px(penaltyAreaLeft),
		f.py(length),
		f.px(penaltyAreaRight)-f.px(penaltyAreaLeft),
		f.py(length-penaltyAreaDepth)-f.py(length),
	)
	canvas.Rect(
		f.px(sixYardLeft),
		f.py(length),
		f.px(sixYardRight)-f.px(sixYardLeft),
		f.py(length-sixYardDepth)-f.py(length),
	)

	// Penalty arc: the part of the circle around the spot outside the box.
	// It meets the box edge 8 units either side of the centre.
	arcEdge := length - penaltyAreaDepth
	canvas.Arc(f.px(centre-8), f.py(arcEdge), radius, radius, 0, false, false, f.px(centre+8), f.py(arcEdge))

	// Goal behind the goal line.
	canvas.Rect(
		f.px(shot.GoalPostLeft),
		f.py(length+goalDepth),
		f.px(shot.GoalPostRight)-f.px(shot.GoalPostLeft),
		f.py(length)-f.py(length+goalDepth),
	)

	canvas.Gend()

	canvas.Gstyle("fill:" + colorLine)
	canvas.Circle(f.px(centre), f.py(penaltySpotX), 3)
	canvas.Circle(f.px(centre), f.py(half), 3)
	canvas.Gend()
}
