package httpapi

import (
	"bytes"
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
	"github.com/riskibarqy/worldcup-shotmap/internal/usecase"
)

//go:embed dashboard.html
var dashboardHTML string

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardHTML))

var viewLabels = map[usecase.View]string{
	usecase.ViewPitch: "Pitch View",
	usecase.ViewGoal:  "Goal View",
}

type dashboardOption struct {
	Value    string
	Label    string
	Selected bool
}

type dashboardTeamXG struct {
	Team string
	XG   string
}

type dashboardPage struct {
	Match     string
	Matches   []dashboardOption
	Teams     []dashboardOption
	Outcomes  []dashboardOption
	Views     []dashboardOption
	Summary   shot.Summary
	TotalXG   string
	TeamXG    []dashboardTeamXG
	Chart     template.HTML
	ExportURL template.URL
	Error     string
}

// Dashboard serves the interactive HTML page. Every control change submits
// the form, so each request recomputes the whole pipeline.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Dashboard")
	defer span.End()

	status := http.StatusOK
	page := dashboardPage{}

	input, err := h.parseShotMapQuery(ctx, r)
	if err == nil {
		annotateSelection(ctx, input)
		var result usecase.ShotMap
		result, err = h.shotMapService.Render(ctx, input)
		if err == nil {
			page = buildDashboardPage(result)
		}
	}
	if err != nil {
		h.logger.WarnContext(ctx, "render dashboard failed", "error", err)
		status = mapError(ctx, err).HTTPStatus
		page = h.dashboardErrorPage(r, input, err)
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, page); err != nil {
		h.logger.ErrorContext(ctx, "execute dashboard template failed", "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func buildDashboardPage(result usecase.ShotMap) dashboardPage {
	sel := result.Selection

	page := dashboardPage{
		Match:     sel.MatchID,
		Matches:   options(result.Matches, []string{sel.MatchID}),
		Teams:     options(result.AvailableTeams, sel.Teams),
		Outcomes:  outcomeOptions(sel.Outcome),
		Views:     viewOptions(result.View),
		Summary:   result.Summary,
		TotalXG:   formatXG(result.Summary.TotalXG),
		Chart:     template.HTML(inlineSVG(result.Chart)),
		ExportURL: template.URL("/v1/shotmap/export.xlsx?" + selectionQuery(sel, result.View).Encode()),
	}
	for _, item := range result.Summary.TeamXG {
		page.TeamXG = append(page.TeamXG, dashboardTeamXG{Team: item.Team, XG: formatXG(item.XG)})
	}

	return page
}

// dashboardErrorPage keeps the controls usable when the selection fails.
func (h *Handler) dashboardErrorPage(r *http.Request, input usecase.RenderInput, err error) dashboardPage {
	page := dashboardPage{
		Match:    input.MatchID,
		Outcomes: outcomeOptions(input.Outcome),
		Views:    viewOptions(input.View),
		Error:    err.Error(),
	}
	if errors.Is(err, usecase.ErrDependencyUnavailable) {
		page.Error = "The shot dataset is unavailable."
		return page
	}

	matches, listErr := h.shotMapService.ListMatches(r.Context())
	if listErr == nil {
		page.Matches = options(matches, []string{input.MatchID})
	}
	return page
}

func options(values, selected []string) []dashboardOption {
	picked := make(map[string]struct{}, len(selected))
	for _, v := range selected {
		picked[v] = struct{}{}
	}

	out := make([]dashboardOption, 0, len(values))
	for _, v := range values {
		_, ok := picked[v]
		out = append(out, dashboardOption{Value: v, Label: v, Selected: ok})
	}
	return out
}

func outcomeOptions(selected shot.OutcomeFilter) []dashboardOption {
	if selected == "" {
		selected = shot.FilterAll
	}
	out := make([]dashboardOption, 0, len(shot.OutcomeFilters))
	for _, f := range shot.OutcomeFilters {
		out = append(out, dashboardOption{Value: string(f), Label: string(f), Selected: f == selected})
	}
	return out
}

func viewOptions(selected usecase.View) []dashboardOption {
	if selected == "" {
		selected = usecase.ViewPitch
	}
	out := make([]dashboardOption, 0, len(usecase.Views))
	for _, v := range usecase.Views {
		out = append(out, dashboardOption{Value: string(v), Label: viewLabels[v], Selected: v == selected})
	}
	return out
}

func selectionQuery(sel shot.Selection, view usecase.View) url.Values {
	q := url.Values{}
	q.Set("match", sel.MatchID)
	q.Set("outcome", string(sel.Outcome))
	q.Set("view", string(view))
	q.Set("teams_set", "1")
	for _, team := range sel.Teams {
		q.Add("team", team)
	}
	return q
}

func formatXG(v float64) string {
	return strconv.FormatFloat(shot.Round2(v), 'f', 2, 64)
}

// inlineSVG drops the XML prolog so the document can be embedded in HTML.
func inlineSVG(doc []byte) []byte {
	if i := bytes.Index(doc, []byte("<svg")); i > 0 {
		return doc[i:]
	}
	return doc
}
