package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/worldcup-shotmap/internal/config"
	"github.com/riskibarqy/worldcup-shotmap/internal/domain/shot"
	cacherepo "github.com/riskibarqy/worldcup-shotmap/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/worldcup-shotmap/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/worldcup-shotmap/internal/interfaces/httpapi"
	"github.com/riskibarqy/worldcup-shotmap/internal/interfaces/shotchart"
	"github.com/riskibarqy/worldcup-shotmap/internal/observability"
	basecache "github.com/riskibarqy/worldcup-shotmap/internal/platform/cache"
	"github.com/riskibarqy/worldcup-shotmap/internal/platform/logging"
	"github.com/riskibarqy/worldcup-shotmap/internal/usecase"
)

// NewHTTPServer wires the dataset, the shot map pipeline and the router. The
// dataset is read once up front so a missing or malformed file fails startup.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var shotRepo shot.Repository = csvfile.NewShotRepository(cfg.ShotsDatasetPath, logger)
	if cfg.CacheEnabled {
		shotRepo = cacherepo.NewShotRepository(shotRepo, basecache.NewStore(cfg.CacheTTL))
	}

	shots, err := shotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shot dataset %q: %w", cfg.ShotsDatasetPath, err)
	}
	logger.Info("shot dataset loaded",
		"path", cfg.ShotsDatasetPath,
		"rows", len(shots),
		"matches", len(shot.Matches(shots)),
		"cache_enabled", cfg.CacheEnabled,
	)

	var (
		observer       usecase.RenderObserver
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		metrics := observability.NewMetrics()
		metrics.ObserveDatasetLoad(len(shots), nil)
		observer = metrics
		metricsHandler = metrics.Handler()
	}

	shotMapSvc := usecase.NewShotMapService(shotRepo, shotchart.NewRenderer(), observer)

	handler := httpapi.NewHandler(shotMapSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsHandler:     metricsHandler,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
