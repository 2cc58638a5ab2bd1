package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/worldcup-shotmap/internal/interfaces/workbook"
	"github.com/riskibarqy/worldcup-shotmap/internal/platform/logging"
	"github.com/riskibarqy/worldcup-shotmap/internal/usecase"
)

type Handler struct {
	shotMapService *usecase.ShotMapService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(shotMapService *usecase.ShotMapService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		shotMapService: shotMapService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.shotMapService.ListMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchDTO{ID: m})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	teams, err := h.shotMapService.ListTeamsByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "match", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetShotMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetShotMap")
	defer span.End()

	input, err := h.parseShotMapQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotateSelection(ctx, input)

	analysis, err := h.shotMapService.Analyze(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze shot map failed", "match", input.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysisToDTO(analysis))
}

func (h *Handler) GetShotMapChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetShotMapChart")
	defer span.End()

	input, err := h.parseShotMapQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotateSelection(ctx, input)

	result, err := h.shotMapService.Render(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "render shot map failed", "match", input.MatchID, "view", input.View, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Chart)
}

func (h *Handler) ExportShotMap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportShotMap")
	defer span.End()

	input, err := h.parseShotMapQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotateSelection(ctx, input)

	analysis, err := h.shotMapService.Analyze(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "export shot map failed", "match", input.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf, workbook.Report{
		Selection: analysis.Selection,
		Summary:   analysis.Summary,
		Shots:     analysis.Shots,
	}); err != nil {
		h.logger.ErrorContext(ctx, "build workbook failed", "match", analysis.Selection.MatchID, "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", workbook.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(analysis.Selection.MatchID)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
