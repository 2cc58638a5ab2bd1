package shotchart

import (
	"context"

	svg "github.com/ajstarks/svgo"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
)

const (
	GoalViewTitle = "Goal View - Shots on Target"

	goalPxPerUnit   = 80
	goalTitleHeight = 40
	goalMarkerArea  = 100.0
)

// Visible window around the goal frame, in chart units.
const (
	goalWindowXMin = shot.GoalPostLeft - 1
	goalWindowXMax = shot.GoalPostRight + 1
	goalWindowYMin = -0.5
	goalWindowYMax = shot.GoalHeight + 0.5
)

func goalFrame() frame {
	return frame{
		left:   0,
		top:    goalTitleHeight,
		width:  pixels(goalWindowXMax-goalWindowXMin, goalPxPerUnit),
		height: pixels(goalWindowYMax-goalWindowYMin, goalPxPerUnit),
		xMin:   goalWindowXMin,
		xMax:   goalWindowXMax,
		yMin:   goalWindowYMin,
		yMax:   goalWindowYMax,
	}
}

// RenderGoalView draws the goal frame with its netting and one marker per
// projected shot: blue for goals, yellow for saves.
func (r *Renderer) RenderGoalView(ctx context.Context, points []shot.GoalMouthPoint) ([]byte, error) {
	f := goalFrame()
	width, height := f.width, f.top+f.height

	return render(ctx, func(canvas *svg.SVG) {
		canvas.Start(width, height)
		canvas.Title(GoalViewTitle)
		canvas.Rect(0, 0, width, height, "fill:"+colorGround)
		canvas.Text(width/2, goalTitleHeight-12, GoalViewTitle, fontStyle+";font-size:18px;text-anchor:middle;fill:"+colorLine)

		drawNet(canvas, f)
		canvas.Rect(
			f.px(shot.GoalPostLeft),
			f.py(shot.GoalHeight),
			f.px(shot.GoalPostRight)-f.px(shot.GoalPostLeft),
			f.py(0)-f.py(shot.GoalHeight),
			"fill:none;stroke:"+colorLine+";stroke-width:3",
		)

		radius := r.markerRadius(goalMarkerArea)
		canvas.Gstyle("stroke:" + colorEdge + ";stroke-width:1")
		for _, p := range points {
			canvas.Circle(f.px(p.Lateral), f.py(p.Height), radius, "fill:"+categoryFill[shot.CategoryOf(p.Shot.Outcome)])
		}
		canvas.Gend()

		legend(canvas, f.left+10, f.top+10, "Shot Details", []legendEntry{
			{label: "Goal", fill: categoryFill[shot.CategoryGoal]},
			{label: "Saved", fill: categoryFill[shot.CategorySaved]},
		})

		canvas.End()
	})
}

// drawNet draws the horizontal and vertical net lines every NetSpacing units
// inside the goal frame.
func drawNet(canvas *svg.SVG, f frame) {
	spacing := shot.NetSpacing
	horizontal := int(shot.GoalHeight / spacing)
	vertical := int((shot.GoalPostRight - shot.GoalPostLeft) / spacing)

	canvas.Gstyle("stroke:" + colorLine + ";stroke-width:0.5")
	for i := 0; i <= horizontal; i++ {
		y := f.py(float64(i) * spacing)
		canvas.Line(f.px(shot.GoalPostLeft), y, f.px(shot.GoalPostRight), y)
	}
	for i := 0; i <= vertical; i++ {
		x := f.px(shot.GoalPostLeft + float64(i)*spacing)
		canvas.Line(x, f.py(0), x, f.py(shot.GoalHeight))
	}
	canvas.Gend()
}
