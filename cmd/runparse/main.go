// runparse parses a single document against a local SQLite database and
// prints the result as JSON. With no endpoint configured it replays the
// deterministic sample pages, so it runs offline.
//
//	runparse [document-url]
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/parsewell/invoice-parser/internal/common"
	"github.com/parsewell/invoice-parser/internal/pipeline"
	"github.com/parsewell/invoice-parser/internal/provider"
	repo "github.com/parsewell/invoice-parser/internal/repository"
	"github.com/parsewell/invoice-parser/internal/trace"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	documentURL := "sample://invoice"
	if len(os.Args) > 1 {
		documentURL = os.Args[1]
	}

	cfg := common.LoadConfig()
	ctx := context.Background()

	entc, err := repo.OpenSQLite(ctx, cfg.Database.SQLitePath, logger)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}()

	extractor := provider.NewClient(provider.Config{
		Endpoint: cfg.Provider.Endpoint,
		ModelID:  cfg.Provider.ModelID,
		APIKey:   cfg.Provider.APIKey,
		Timeout:  cfg.Provider.CallTimeout,
	}, logger)

	var pages provider.PageImageSource = provider.NewImageDocumentSource(cfg.Provider.FetchTimeout, logger)
	if extractor.MockMode() {
		pages = provider.MockSource{}
	}

	pipe := pipeline.New(
		repo.NewParseJobRepository(entc, logger),
		repo.NewInvoiceRepository(entc, logger),
		pages, extractor,
		trace.NewLogObserver(logger), logger,
	)

	jobID, result, err := pipe.Run(ctx, documentURL)
	if err != nil {
		logger.Error("parse failed", "job_id", jobID, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
}
