package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shopstack/storefront/internal/auth"
	"github.com/shopstack/storefront/internal/checkout"
	"github.com/shopstack/storefront/internal/config"
	"github.com/shopstack/storefront/internal/httpapi"
	"github.com/shopstack/storefront/internal/messaging"
	"github.com/shopstack/storefront/internal/seed"
	"github.com/shopstack/storefront/internal/store"
	"github.com/shopstack/storefront/internal/telemetry"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadServer()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, "storefront", "0.1.0")
	if err != nil {
		logger.Error("failed to initialize tracer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownTracer(ctx) }()

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider("storefront", "0.1.0")
	if err != nil {
		logger.Error("failed to initialize meter", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdownMeter(ctx) }()

	catalog := store.NewCatalog()
	carts := store.NewCartStore()
	wishlists := store.NewWishlistStore()
	orders := store.NewOrderStore()
	addresses := store.NewAddressStore()

	seed.Apply(catalog)

	if cfg.SeedRemote {
		seeder := seed.NewRemoteSeeder(cfg.FakestoreURL, &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}, catalog, logger)

		// Best-effort enrichment: allowed to race with early requests,
		// failure keeps the static catalog.
		go func() {
			if err := seeder.Run(context.Background()); err != nil {
				logger.Error("remote catalog seeding failed", "error", err)
			}
		}()
	}

	var producer *messaging.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = messaging.NewProducer(cfg.KafkaBrokers, messaging.TopicOrderPlaced)
		defer func() { _ = producer.Close() }()
	}

	var publisher checkout.EventPublisher
	if producer != nil {
		publisher = producer
	}
	checkoutSvc := checkout.NewService(catalog, carts, orders, publisher, logger)

	verifier := auth.NewJWTVerifier([]byte(cfg.JWTSecret))
	mw := auth.NewMiddleware(verifier, logger)

	handler := httpapi.NewHandler(catalog, carts, wishlists, orders, addresses, checkoutSvc, logger)

	mux := http.NewServeMux()
	handler.Register(mux, mw)
	mux.Handle("GET /metrics", metricsHandler)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: otelhttp.NewHandler(mux, "storefront",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				if r.Pattern != "" {
					return r.Pattern
				}
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting storefront service", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
