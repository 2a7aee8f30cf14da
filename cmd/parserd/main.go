package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/parsewell/invoice-parser/gen/proto/parser/v1"
	"github.com/parsewell/invoice-parser/internal/common"
	"github.com/parsewell/invoice-parser/internal/export"
	"github.com/parsewell/invoice-parser/internal/pipeline"
	"github.com/parsewell/invoice-parser/internal/provider"
	repo "github.com/parsewell/invoice-parser/internal/repository"
	svc "github.com/parsewell/invoice-parser/internal/server"
	"github.com/parsewell/invoice-parser/internal/trace"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	jobsRepo := repo.NewParseJobRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)

	extractor := provider.NewClient(provider.Config{
		Endpoint: cfg.Provider.Endpoint,
		ModelID:  cfg.Provider.ModelID,
		APIKey:   cfg.Provider.APIKey,
		Timeout:  cfg.Provider.CallTimeout,
	}, logger)
	if extractor.MockMode() {
		logger.Warn("NIM_ENDPOINT not set, using deterministic sample pages")
	}

	var pages provider.PageImageSource = provider.NewImageDocumentSource(cfg.Provider.FetchTimeout, logger)
	if extractor.MockMode() {
		pages = provider.MockSource{}
	}

	pipe := pipeline.New(jobsRepo, invoicesRepo, pages, extractor,
		trace.NewLogObserver(logger), logger)

	parserService := svc.NewParserService(pipe, jobsRepo, invoicesRepo, logger)
	v1.RegisterParserServiceServer(grpcServer, parserService)

	exportService := export.NewService(invoicesRepo, logger)
	exportServer := svc.NewExportServer(exportService, logger)
	v1.RegisterExportServiceServer(grpcServer, exportServer)

	// gRPC health service; empty string means overall server health
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("parserd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
