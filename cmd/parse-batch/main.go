// parse-batch parses a list of document URLs (one per line, # comments
// allowed) through the bounded worker queue against a local SQLite database.
//
//	parse-batch urls.txt
package main

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/parsewell/invoice-parser/internal/async"
	"github.com/parsewell/invoice-parser/internal/common"
	"github.com/parsewell/invoice-parser/internal/pipeline"
	"github.com/parsewell/invoice-parser/internal/provider"
	repo "github.com/parsewell/invoice-parser/internal/repository"
	"github.com/parsewell/invoice-parser/internal/trace"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: parse-batch <url-list-file>")
		os.Exit(2)
	}

	urls, err := readURLList(os.Args[1])
	if err != nil {
		logger.Error("failed to read url list", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
	if len(urls) == 0 {
		logger.Warn("url list is empty, nothing to do", "path", os.Args[1])
		return
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

	queue := async.NewParserQueue(pipe, logger,
		async.WithWorkers(4),
		async.WithQueueSize(len(urls)),
		async.WithProcessTimeout(5*time.Minute),
	)

	submittedAt := time.Now()
	for _, u := range urls {
		_ = queue.Enqueue(ctx, async.Job{DocumentURL: u, SubmittedAt: submittedAt})
	}
	queue.Shutdown(ctx)

	logger.Info("batch complete", "documents", len(urls),
		"elapsed_ms", time.Since(submittedAt).Milliseconds())
}

func readURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, sc.Err()
}
