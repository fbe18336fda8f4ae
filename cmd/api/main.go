package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendor-message-analysis/config"
	_ "vendor-message-analysis/docs" // Swagger docs
	"vendor-message-analysis/internal/analysis"
	analysisHTTP "vendor-message-analysis/internal/analysis/delivery/http"
	"vendor-message-analysis/internal/analysis/primary"
	"vendor-message-analysis/internal/analysis/session"
	"vendor-message-analysis/internal/analysis/usecase"
	"vendor-message-analysis/internal/httpserver"
	"vendor-message-analysis/internal/middleware"
	"vendor-message-analysis/pkg/llmprovider"
	"vendor-message-analysis/pkg/log"
)

// @title       Vendor Message Analysis API
// @description Turns vendor messages into suggested wedding-planning todos, updates and completions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Vendor Message Analysis...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Analysis backend: %s", cfg.Analysis.Backend)

	// 3. Primary analyzer. Without one every message goes to the keyword fallback.
	primaryAnalyzer, err := newPrimaryAnalyzer(ctx, cfg, logger)
	if err != nil {
		logger.Warnf(ctx, "Primary analyzer unavailable, using keyword fallback only: %v", err)
	}

	// 4. Analysis domain
	analysisUC := usecase.New(logger, primaryAnalyzer, usecase.Config{
		CacheSize:      cfg.Analysis.CacheSize,
		CacheTTL:       cfg.Analysis.CacheTTL,
		PrimaryTimeout: cfg.Analysis.PrimaryTimeout,
	})
	sessions := session.NewRegistry(logger, analysisUC, cfg.Analysis.SessionCapacity, cfg.Analysis.SessionTTL)
	defer sessions.Close()

	mw := middleware.New(logger, cfg.RateLimit.PerMin)
	analysisHandler := analysisHTTP.New(logger, analysisUC, sessions)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AnalysisHandler: analysisHandler,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newPrimaryAnalyzer(ctx context.Context, cfg *config.Config, logger log.Logger) (analysis.PrimaryAnalyzer, error) {
	switch cfg.Analysis.Backend {
	case config.BackendLLM:
		providers, err := llmprovider.InitializeProviders(&cfg.LLM)
		if err != nil {
			return nil, err
		}
		for _, p := range providers {
			logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
		}

		retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("llm.retry_delay: %w", err)
		}
		maxTotal, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		if err != nil {
			return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
		}

		manager := llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTotal,
		}, logger)
		return primary.NewLLMClient(manager), nil

	default:
		client, err := primary.NewHTTPClient(primary.HTTPConfig{
			URL:    cfg.Analysis.ServiceURL,
			APIKey: cfg.Analysis.ServiceAPIKey,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
