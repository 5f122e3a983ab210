package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"repair-ads/internal/adapter/cache"
	httpadapter "repair-ads/internal/adapter/http"
	"repair-ads/internal/adapter/postgres"
	pricingadapter "repair-ads/internal/adapter/pricing"
	"repair-ads/internal/adapter/usecase"
	"repair-ads/internal/config"
	"repair-ads/internal/core/port"
	"repair-ads/internal/db"
	"repair-ads/internal/metrics"
)

// main is the entry point of the campaign planner. It loads configuration,
// optionally migrates and seeds the database, connects Postgres and Redis,
// picks the price quote source and starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout, cfg.Env)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded")
	}

	rdb, err := cache.Connect(ctx, cfg.Redis.Addr)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		return
	}
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("repair_ads", reg)

	catalogRepo := postgres.NewCatalogRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	checkout := cache.NewCheckoutStore(rdb, cfg.Redis.CheckoutTTL)

	localQuoter := pricingadapter.NewCatalogQuoter(catalogRepo)
	var upstream port.PriceQuoter = localQuoter
	if cfg.Pricing.URL != "" {
		upstream = pricingadapter.NewHTTPQuoter(cfg.Pricing.URL, cfg.Pricing.Timeout)
		logger.Info("using remote pricing service", slog.String("url", cfg.Pricing.URL))
	}
	quoter := pricingadapter.NewCachingQuoter(upstream, cache.NewQuoteCache(rdb, cfg.Redis.QuoteTTL), logger)

	svc := usecase.NewCampaignUseCase(catalogRepo, campaignRepo, quoter, checkout, logger,
		usecase.Settings{
			MinLeadDays:     cfg.Campaign.MinLeadDays,
			DefaultCurrency: cfg.Campaign.DefaultCurrency,
			AllowZeroPrice:  cfg.Campaign.AllowZeroPrice,
			DebounceWindow:  cfg.Pricing.DebounceWindow,
			SessionTTL:      cfg.Campaign.SessionTTL,
		},
		usecase.WithMetrics(m))

	handler := httpadapter.NewHandler(svc, localQuoter, metrics.Handler(reg), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
