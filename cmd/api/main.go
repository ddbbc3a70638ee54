package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	hhttp "docdigest/internal/handler/http"
	"docdigest/internal/infra/db"
	"docdigest/internal/infra/extractor"
	"docdigest/internal/infra/summarizer"
	"docdigest/internal/observability/logging"
	"docdigest/internal/repository"
	"docdigest/internal/usecase/document"
	"docdigest/internal/usecase/summarize"
	"docdigest/pkg/config"

	pgRepo "docdigest/internal/infra/adapter/persistence/postgres"
)

func main() {
	logger := logging.New(os.Stdout)

	database, reports := initPersistence(logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	ocr := initOCR(logger)
	documents := document.NewService(extractor.NewService(ocr), pipelineFactory, reports)

	handler := hhttp.NewRouter(logger, hhttp.RouterConfig{
		Documents:      documents,
		Reports:        reports,
		DB:             database,
		Version:        getVersion(),
		OCRAvailable:   ocr != nil,
		Parallelism:    config.GetEnvInt("SUMMARIZE_PARALLELISM", 4),
		RequestTimeout: config.GetEnvDuration("REQUEST_TIMEOUT", 5*time.Minute),
		MaxUploadBytes: int64(config.GetEnvInt("MAX_UPLOAD_BYTES", 50<<20)),
		RateLimitRPS:   float64(config.GetEnvInt("RATE_LIMIT_RPS", 5)),
		RateLimitBurst: config.GetEnvInt("RATE_LIMIT_BURST", 10),
	})

	runServer(logger, handler)
}

// initPersistence opens the database and runs migrations when DATABASE_URL
// is set. Without it the API serves summaries without storing reports.
func initPersistence(logger *slog.Logger) (*sql.DB, repository.ReportRepository) {
	if os.Getenv("DATABASE_URL") == "" {
		logger.Warn("DATABASE_URL not set, report persistence disabled")
		return nil, nil
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database, pgRepo.NewReportRepo(database)
}

// initOCR probes for the external OCR binaries. A nil runner disables the
// OCR fallback for image-only PDFs.
func initOCR(logger *slog.Logger) extractor.OCRRunner {
	ocr := extractor.NewTesseractOCR(extractor.LoadOCRConfig())
	if !ocr.Available() {
		logger.Warn("pdftoppm/tesseract not found, OCR fallback disabled")
		return nil
	}
	return ocr
}

// pipelineFactory builds a summarization pipeline per request so that a
// per-request model override reaches the provider client.
func pipelineFactory(model string) (document.Pipeline, error) {
	cfg := summarizer.LoadConfig()
	if model != "" {
		cfg.Model = model
	}
	s, err := summarizer.New(cfg)
	if err != nil {
		return nil, err
	}
	return summarize.NewService(s), nil
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
