package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, opts RouterOptions) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}
	if !opts.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Dashboard)
}

func registerShotMapRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}/teams", handler.ListTeamsByMatch)
	mux.HandleFunc("GET /v1/shotmap", handler.GetShotMap)
	mux.HandleFunc("GET /v1/shotmap/chart.svg", handler.GetShotMapChart)
	mux.HandleFunc("GET /v1/shotmap/export.xlsx", handler.ExportShotMap)
}
