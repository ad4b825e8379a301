package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"polystat/internal/api"
	"polystat/internal/command"
	"polystat/internal/config"
	"polystat/internal/export"
	"polystat/internal/logger"
	"polystat/internal/metrics"
	"polystat/internal/model"
	"polystat/internal/parser"
	"polystat/internal/report"

	"github.com/gin-gonic/gin"
)

// loadPolygons reads a polygon file, logging and counting every skipped record
func loadPolygons(path string, log *logger.Logger) ([]model.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open polygons file: %w", err)
	}
	defer f.Close()

	batch, err := parser.ReadPolygons(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, skipped := range batch.Skipped {
		log.Warn("Skipped malformed record", "file", path, "line", skipped.Line, "error", skipped.Err)
	}
	metrics.ObserveSkipped(len(batch.Skipped))

	log.Debug("Polygons loaded", "file", path, "polygons", len(batch.Polygons), "skipped", len(batch.Skipped))
	return batch.Polygons, nil
}

func runQuery(ctx context.Context, path string, in io.Reader, out io.Writer, log *logger.Logger) error {
	polygons, err := loadPolygons(path, log)
	if err != nil {
		return err
	}

	session := command.NewSession(polygons, log)
	if err := session.Run(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("command session failed: %w", err)
	}
	return nil
}

func runReport(path, format string, out io.Writer, log *logger.Logger) error {
	polygons, err := loadPolygons(path, log)
	if err != nil {
		return err
	}
	return report.Render(out, report.Summarize(polygons), format)
}

func runExport(path, output string, stdout io.Writer, log *logger.Logger) error {
	polygons, err := loadPolygons(path, log)
	if err != nil {
		return err
	}

	if output == "" {
		return export.Write(stdout, polygons)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := export.Write(f, polygons); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", output, err)
	}

	log.Info("GeoJSON exported", "file", output, "features", len(polygons))
	return nil
}

func runServe(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	if cfg.LogMode == "production" || cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	api.SetupRouter(r, cfg, log)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
