package usecase

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"vendor-message-analysis/internal/analysis"
	"vendor-message-analysis/internal/analysis/cache"
	"vendor-message-analysis/internal/analysis/fallback"
	"vendor-message-analysis/internal/analysis/primary"
	pkgLog "vendor-message-analysis/pkg/log"
)

const tracerName = "vendor-message-analysis/internal/analysis/usecase"

// Config tunes the engine. Zero values pick the defaults.
type Config struct {
	CacheSize      int
	CacheTTL       time.Duration
	PrimaryTimeout time.Duration

	// Now overrides the cache clock in tests.
	Now func() time.Time
}

type implUseCase struct {
	l              pkgLog.Logger
	primary        analysis.PrimaryAnalyzer
	fallback       *fallback.Analyzer
	cache          *cache.Store
	group          singleflight.Group
	metrics        *Metrics
	tracer         trace.Tracer
	primaryTimeout time.Duration
}

// New creates the analysis engine. primary may be nil, in which case every message goes to the fallback analyzer.
func New(l pkgLog.Logger, primaryAnalyzer analysis.PrimaryAnalyzer, cfg Config) *implUseCase {
	if cfg.PrimaryTimeout <= 0 {
		cfg.PrimaryTimeout = primary.DefaultTimeout
	}
	return &implUseCase{
		l:        l,
		primary:  primaryAnalyzer,
		fallback: fallback.New(),
		cache: cache.New(cache.Config{
			Size: cfg.CacheSize,
			TTL:  cfg.CacheTTL,
			Now:  cfg.Now,
		}),
		metrics:        NewMetrics(),
		tracer:         otel.Tracer(tracerName),
		primaryTimeout: cfg.PrimaryTimeout,
	}
}

var _ analysis.UseCase = (*implUseCase)(nil)
