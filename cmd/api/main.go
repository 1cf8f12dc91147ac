// ABOUTME: Main entry point for the Realify News API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realify-news-api/api"
	"realify-news-api/api/handlers"
	"realify-news-api/core/interfaces"
	"realify-news-api/core/scraper"
	"realify-news-api/core/summary"
	rodbrowser "realify-news-api/infrastructure/browser/rod"
	stdhttp "realify-news-api/infrastructure/http/standard"
	openaillm "realify-news-api/infrastructure/llm/openai"
	logruslogger "realify-news-api/infrastructure/logger/logrus"
	"realify-news-api/infrastructure/storage/sqlite"
	"realify-news-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.Server.LogLevel)
	logger.Info("Starting Realify News API", map[string]interface{}{
		"port":     cfg.Server.Port,
		"database": cfg.Database.Path,
	})

	// Create headline store
	store, err := sqlite.NewHeadlineStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open headline store: %v", err)
	}
	defer store.Close()

	requestTimeout := time.Duration(cfg.Scraper.RequestTimeout) * time.Second

	// Create HTTP client and page renderer
	httpClient := stdhttp.NewStandardHTTPClient(requestTimeout)
	renderer := rodbrowser.NewRenderer(cfg.Scraper.BrowserPath, requestTimeout, logger)

	// Create summarizer; without an API key it runs on its truncation fallback
	summarizer := summary.NewService(func() (interfaces.SummaryEngine, error) {
		engine, err := openaillm.NewEngine(openaillm.Config{
			APIKey:  cfg.Summarizer.APIKey,
			BaseURL: cfg.Summarizer.BaseURL,
			Model:   cfg.Summarizer.Model,
		})
		if err != nil {
			return nil, err
		}
		return engine, nil
	}, logger)

	// Create source adapters in fixed search order
	fetcher := scraper.NewDocumentFetcher(httpClient, logger)
	adapters := []scraper.Adapter{
		scraper.NewGeoAdapter(renderer, fetcher, summarizer, logger),
		scraper.NewBBCAdapter(fetcher, summarizer, logger),
		scraper.NewARYAdapter(fetcher, summarizer, logger),
		scraper.NewSamaaAdapter(fetcher, summarizer, logger),
		scraper.NewDawnAdapter(fetcher, summarizer, logger),
	}
	searchService := scraper.NewService(adapters, store, logger)

	// Create router with middleware and handlers
	handler := api.NewServer(api.Config{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
	},
		handlers.NewSearchHandler(searchService, logger),
		handlers.NewNewsHandler(store, logger),
		handlers.NewHealthHandler(),
	)

	// Live searches render pages and call the summarization backend, so the
	// write timeout has to cover a full multi-source pipeline run.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
