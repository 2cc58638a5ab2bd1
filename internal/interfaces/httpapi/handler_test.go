package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
	"github.com/riskibarqy/worldcup-shotmap/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/worldcup-shotmap/internal/interfaces/shotchart"
	"github.com/riskibarqy/worldcup-shotmap/internal/interfaces/workbook"
	"github.com/riskibarqy/worldcup-shotmap/internal/platform/logging"
	"github.com/riskibarqy/worldcup-shotmap/internal/usecase"
)

func newTestHandler() *Handler {
	service := usecase.NewShotMapService(memory.NewShotRepository(memory.SeedShots()), shotchart.NewRenderer(), nil)
	return NewHandler(service, logging.NewNop())
}

func newTestRouter(opts RouterOptions) http.Handler {
	return NewRouter(newTestHandler(), logging.NewNop(), opts)
}

func serve(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       any    `json:"data"`
	}
	envelope.Data = out
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("unexpected apiVersion: %s", envelope.APIVersion)
	}
}

func TestHandler_Healthz(t *testing.T) {
	rec := serve(t, newTestRouter(RouterOptions{}), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestHandler_ListMatches(t *testing.T) {
	rec := serve(t, newTestRouter(RouterOptions{}), "/v1/matches")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var items []matchDTO
	decodeData(t, rec, &items)
	if len(items) != 3 || items[0].ID != memory.MatchGroupStage {
		t.Fatalf("unexpected matches: %+v", items)
	}
}

func TestHandler_ListTeamsByMatch(t *testing.T) {
	router := newTestRouter(RouterOptions{})

	rec := serve(t, router, "/v1/matches/"+url.PathEscape(memory.MatchFinal)+"/teams")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var teams []string
	decodeData(t, rec, &teams)
	if len(teams) != 2 || teams[0] != "France" || teams[1] != "Croatia" {
		t.Fatalf("unexpected teams: %v", teams)
	}

	rec = serve(t, router, "/v1/matches/"+url.PathEscape("Brazil vs Germany")+"/teams")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandler_GetShotMap(t *testing.T) {
	q := url.Values{}
	q.Set("match", memory.MatchFinal)
	q.Set("outcome", "Saved")

	rec := serve(t, newTestRouter(RouterOptions{}), "/v1/shotmap?"+q.Encode())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got analysisDTO
	decodeData(t, rec, &got)
	if got.Selection.Match != memory.MatchFinal || got.Selection.Outcome != "Saved" {
		t.Fatalf("unexpected selection: %+v", got.Selection)
	}
	if got.Summary.Goals != 0 || got.Summary.Saves != 2 || got.Summary.TotalShots != 2 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
	for _, item := range got.Shots {
		if item.Outcome != shot.OutcomeSaved {
			t.Fatalf("unexpected outcome in filtered shots: %s", item.Outcome)
		}
	}
}

func TestHandler_GetShotMap_InvalidQuery(t *testing.T) {
	router := newTestRouter(RouterOptions{})

	for _, target := range []string{
		"/v1/shotmap?outcome=Post",
		"/v1/shotmap?view=heatmap",
		"/v1/shotmap?match=" + url.QueryEscape(memory.MatchFinal) + "&team=Russia",
	} {
		rec := serve(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", target, rec.Code)
		}
	}
}

func TestHandler_GetShotMapChart(t *testing.T) {
	rec := serve(t, newTestRouter(RouterOptions{}), "/v1/shotmap/chart.svg?view=goal&match="+url.QueryEscape(memory.MatchFinal))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != shotchart.ContentType {
		t.Fatalf("unexpected content type: %s", got)
	}
	if !strings.Contains(rec.Body.String(), shotchart.GoalViewTitle) {
		t.Fatalf("goal view title missing from chart")
	}
}

func TestHandler_ExportShotMap(t *testing.T) {
	rec := serve(t, newTestRouter(RouterOptions{}), "/v1/shotmap/export.xlsx?match="+url.QueryEscape(memory.MatchFinal))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != workbook.ContentType {
		t.Fatalf("unexpected content type: %s", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "france-vs-croatia.xlsx") {
		t.Fatalf("unexpected content disposition: %s", got)
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("empty workbook")
	}
}

func TestHandler_Dashboard(t *testing.T) {
	rec := serve(t, newTestRouter(RouterOptions{}), "/?view=goal&match="+url.QueryEscape(memory.MatchFinal))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	for _, want := range []string{
		"2018 World Cup Shot Map",
		"Total Shots",
		"xG by Team",
		"<svg",
		"Goal View",
		`value="France" checked`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
	if strings.Contains(body, "<?xml") {
		t.Fatalf("inline chart must not carry an XML prolog")
	}
}

func TestHandler_Dashboard_MatchChangeResetsTeams(t *testing.T) {
	q := url.Values{}
	q.Set("match", memory.MatchFinal)
	q.Set("prev_match", memory.MatchGroupStage)
	q.Set("teams_set", "1")
	q.Add("team", "Iceland")

	rec := serve(t, newTestRouter(RouterOptions{}), "/?"+q.Encode())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `value="France" checked`) || !strings.Contains(body, `value="Croatia" checked`) {
		t.Fatalf("teams were not reset to the new match default")
	}
}

func TestHandler_Dashboard_UnknownPath(t *testing.T) {
	rec := serve(t, newTestRouter(RouterOptions{}), "/favicon.ico")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandler_SwaggerRoutes(t *testing.T) {
	rec := serve(t, newTestRouter(RouterOptions{}), "/openapi.yaml")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected docs to be disabled, got %d", rec.Code)
	}

	rec = serve(t, newTestRouter(RouterOptions{SwaggerEnabled: true}), "/openapi.yaml")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/v1/shotmap") {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}

	rec = serve(t, newTestRouter(RouterOptions{SwaggerEnabled: true}), "/docs")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "openapi.yaml") {
		t.Fatalf("expected swagger ui page, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_MetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("shotmap_renders_total 1\n"))
	})

	rec := serve(t, newTestRouter(RouterOptions{MetricsHandler: metrics}), "/metrics")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "shotmap_renders_total") {
		t.Fatalf("metrics handler not mounted: %d", rec.Code)
	}
}

func TestParseShotMapQuery(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name      string
		query     string
		wantTeams []string
		wantNil   bool
	}{
		{name: "default teams", query: "match=A", wantNil: true},
		{name: "explicit teams", query: "match=A&team=France&team=Croatia", wantTeams: []string{"France", "Croatia"}},
		{name: "explicit empty", query: "match=A&teams_set=1", wantTeams: []string{}},
		{name: "match changed", query: "match=A&prev_match=B&teams_set=1&team=Iceland", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/shotmap?"+tt.query, nil)
			got, err := h.parseShotMapQuery(context.Background(), req)
			if err != nil {
				t.Fatalf("parseShotMapQuery error: %v", err)
			}
			if tt.wantNil {
				if got.Teams != nil {
					t.Fatalf("expected default team selection, got %v", got.Teams)
				}
				return
			}
			if got.Teams == nil || len(got.Teams) != len(tt.wantTeams) {
				t.Fatalf("unexpected teams: %v", got.Teams)
			}
			for i := range tt.wantTeams {
				if got.Teams[i] != tt.wantTeams[i] {
					t.Fatalf("unexpected teams: %v", got.Teams)
				}
			}
		})
	}
}

func TestExportFilename(t *testing.T) {
	tests := map[string]string{
		"France vs Croatia": "france-vs-croatia.xlsx",
		"  ":                "shotmap.xlsx",
		"Côte d'Ivoire":     "c-te-d-ivoire.xlsx",
	}
	for in, want := range tests {
		if got := exportFilename(in); got != want {
			t.Fatalf("exportFilename(%q)=%q want=%q", in, got, want)
		}
	}
}
