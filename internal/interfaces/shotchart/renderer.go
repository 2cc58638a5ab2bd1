package shotchart

import (
	"context"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
)

const ContentType = "image/svg+xml"

const (
	colorGround = "green"
	colorLine   = "white"
	colorEdge   = "black"

	fontStyle = "font-family:Helvetica,Arial,sans-serif"
)

var categoryFill = map[shot.Category]string{
	shot.CategoryGoal:  "blue",
	shot.CategorySaved: "yellow",
	shot.CategoryOther: "red",
}

// Renderer draws shot charts as SVG documents.
type Renderer struct {
	// pointPx converts marker sizes given in points to pixels.
	pointPx float64
}

func NewRenderer() *Renderer {
	return &Renderer{pointPx: 1.25}
}

func (r *Renderer) ContentType() string {
	return ContentType
}

// frame maps chart units onto a pixel rectangle. Y grows upwards in chart
// units and downwards on the canvas.
type frame struct {
	left, top, width, height int
	xMin, xMax, yMin, yMax   float64
}

func (f frame) px(x float64) int {
	return f.left + int(math.Round(vmap(x, f.xMin, f.xMax, 0, float64(f.width))))
}

func (f frame) py(y float64) int {
	return f.top + int(math.Round(vmap(y, f.yMin, f.yMax, float64(f.height), 0)))
}

// scale is the number of pixels per chart unit along x.
func (f frame) scale() float64 {
	return float64(f.width) / (f.xMax - f.xMin)
}

func pixels(units, perUnit float64) int {
	return int(math.Round(units * perUnit))
}

// vmap maps one range into another
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

// markerRadius converts a scatter marker area in square points to a radius
// in pixels.
func (r *Renderer) markerRadius(area float64) int {
	if area <= 0 || math.IsNaN(area) {
		return 0
	}
	radius := int(math.Round(math.Sqrt(area) / 2 * r.pointPx))
	if radius < 1 {
		radius = 1
	}
	return radius
}

type legendEntry struct {
	label string
	fill  string
}

// legend draws a boxed legend with its top-left corner at x,y.
func legend(canvas *svg.SVG, x, y int, title string, entries []legendEntry) {
	const (
		rowHeight = 20
		width     = 150
		padding   = 10
	)

	height := padding*2 + rowHeight*(len(entries)+1)
	canvas.Gstyle(fontStyle + ";font-size:12px")
	canvas.Rect(x, y, width, height, "fill:white;fill-opacity:0.85;stroke:#999999;stroke-width:1")
	canvas.Text(x+width/2, y+padding+12, title, "text-anchor:middle;font-weight:bold")
	for i, entry := range entries {
		cy := y + padding + rowHeight*(i+1) + rowHeight/2
		canvas.Circle(x+padding+6, cy, 6, "fill:"+entry.fill+";stroke:"+colorEdge+";stroke-width:1")
		canvas.Text(x+padding+20, cy+4, entry.label)
	}
	canvas.Gend()
}

func render(ctx context.Context, draw func(canvas *svg.SVG)) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	draw(svg.New(buf))

	return append([]byte(nil), buf.B...), nil
}
