package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/supplierdesk/internal/ap"
	"github.com/odyssey-erp/supplierdesk/internal/app"
	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/masterdata/suppliers"
	"github.com/odyssey-erp/supplierdesk/internal/observability"
	"github.com/odyssey-erp/supplierdesk/internal/platform/cache"
	"github.com/odyssey-erp/supplierdesk/internal/procurement"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/view"
	"github.com/odyssey-erp/supplierdesk/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, pdf cache disabled", slog.Any("error", err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
		}
	}

	templates, err := view.NewEngine(cfg.CurrencySymbol)
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	engine, closeEngine := newEngine(cfg, logger)
	defer closeEngine()
	if err := engine.Ping(ctx); err != nil {
		logger.Warn("pdf engine ping", slog.String("engine", cfg.PDFEngine), slog.Any("error", err))
	}
	pdfSink := export.NewPDFSink(cfg.PDFEngine, engine, templates, export.NewArtifactCache(redisClient, cfg.ExportCacheTTL, logger)).
		WithTimeout(cfg.PDFTimeout)

	metrics := observability.NewMetrics()

	supplierStore := records.NewStore(records.SupplierSchema(), time.Now, logger)
	purchaseStore := records.NewStore(records.PurchaseSchema(), time.Now, logger)
	paymentStore := records.NewStore(records.PaymentSchema(), time.Now, logger)
	if cfg.SeedSample {
		if err := seedSample(supplierStore, purchaseStore, paymentStore); err != nil {
			logger.Error("seed sample data", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("sample data loaded",
			slog.Int("suppliers", supplierStore.Len()),
			slog.Int("purchases", purchaseStore.Len()),
			slog.Int("payments", paymentStore.Len()),
		)
	}

	supplierService := suppliers.NewService(supplierStore, pdfSink, metrics, logger)
	procurementService := procurement.NewService(purchaseStore, pdfSink, metrics, logger)
	paymentService := ap.NewService(paymentStore, pdfSink, metrics, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:    logger,
		Config:    cfg,
		Templates: templates,
		Counts: func() app.Counts {
			return app.Counts{
				Suppliers: supplierStore.Len(),
				Purchases: purchaseStore.Len(),
				Payments:  paymentStore.Len(),
			}
		},
		SupplierHandler:    suppliers.NewHandler(logger, supplierService, templates),
		SupplierAPI:        suppliers.NewAPIHandler(supplierService),
		ProcurementHandler: procurement.NewHandler(logger, procurementService, templates, supplierService, time.Now),
		ProcurementAPI:     procurement.NewAPIHandler(procurementService, time.Now),
		PaymentHandler:     ap.NewHandler(logger, paymentService, templates, supplierService, time.Now),
		PaymentAPI:         ap.NewAPIHandler(paymentService, time.Now),
		ReportHandler:      report.NewHandler(cfg.PDFEngine, engine, logger),
		Metrics:            metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("pdf_engine", cfg.PDFEngine))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

func newEngine(cfg *app.Config, logger *slog.Logger) (report.Engine, func()) {
	if cfg.PDFEngine == app.EngineChromedp {
		chrome := report.NewChromeRenderer(report.ChromeConfig{
			RemoteURL: cfg.ChromeRemoteURL,
			Timeout:   cfg.PDFTimeout,
			NoSandbox: cfg.ChromeNoSandbox,
			Logger:    logger,
		})
		return chrome, chrome.Close
	}
	return report.NewClient(cfg.GotenbergURL, cfg.PDFTimeout), func() {}
}

func seedSample(supplierStore *suppliers.Store, purchaseStore *procurement.Store, paymentStore *ap.Store) error {
	if err := supplierStore.Seed(suppliers.SampleDrafts()...); err != nil {
		return err
	}
	if err := purchaseStore.Seed(procurement.SampleDrafts()...); err != nil {
		return err
	}
	return paymentStore.Seed(ap.SampleDrafts()...)
}
