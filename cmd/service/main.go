package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "fastship/internal/app"
	"fastship/internal/handlers/rest/healthcheck_head"
	"fastship/internal/handlers/rest/logout_get"
	"fastship/internal/handlers/rest/partner_patch"
	"fastship/internal/handlers/rest/partner_signup_post"
	"fastship/internal/handlers/rest/partner_token_post"
	"fastship/internal/handlers/rest/partner_verify_get"
	"fastship/internal/handlers/rest/ping_get"
	"fastship/internal/handlers/rest/seller_signup_post"
	"fastship/internal/handlers/rest/seller_token_post"
	"fastship/internal/handlers/rest/seller_verify_get"
	"fastship/internal/handlers/rest/shipment_cancel_post"
	"fastship/internal/handlers/rest/shipment_get"
	"fastship/internal/handlers/rest/shipment_patch"
	"fastship/internal/handlers/rest/shipment_post"
	"fastship/internal/handlers/rest/shipment_rate_post"
	"fastship/internal/handlers/rest/shipment_tag_delete"
	"fastship/internal/handlers/rest/shipment_tag_post"
	"fastship/internal/pkg/config"
	"fastship/internal/pkg/dotenv"
	"fastship/internal/pkg/kafka"
	metrics_system "fastship/internal/pkg/metrics"
	"fastship/internal/pkg/migrate"
	authmw "fastship/internal/pkg/middlewares/auth"
	"fastship/internal/pkg/middlewares/graceful_shutdown"
	"fastship/internal/pkg/middlewares/metrics"
	"fastship/internal/pkg/middlewares/rate_limiter"
	"fastship/internal/pkg/middlewares/timeout"
	"fastship/internal/pkg/postgres"
	redispkg "fastship/internal/pkg/redis"
	"fastship/pkg/logger"
	"fastship/pkg/logger/zap_adapter"
	"fastship/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting fastship application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // inheriting from context.Background() is part of the graceful shutdown flow
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	err = migrate.Up(ctx, log, pool)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	redisClient, err := redispkg.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(ctx, log, cfg.Kafka.Sarama.Version, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM. It is
	// cancelled only after server.Shutdown() so in-flight requests finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// main http server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// main http server

	// pprof http server
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http server

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not derive from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/shipment/{id}", shipment_get.New(log, app.ServiceShipment)).Methods("GET")
	router.Handle("/shipment/rate", shipment_rate_post.New(log, app.ServiceShipment)).Methods("POST")

	router.Handle("/seller/signup", seller_signup_post.New(log, app.ServiceSeller)).Methods("POST")
	router.Handle("/seller/token", seller_token_post.New(log, app.ServiceSeller)).Methods("POST")
	router.Handle("/seller/verify", seller_verify_get.New(log, app.ServiceSeller)).Methods("GET")

	router.Handle("/partner/signup", partner_signup_post.New(log, app.ServicePartner)).Methods("POST")
	router.Handle("/partner/token", partner_token_post.New(log, app.ServicePartner)).Methods("POST")
	router.Handle("/partner/verify", partner_verify_get.New(log, app.ServicePartner)).Methods("GET")

	authed := router.NewRoute().Subrouter()
	authed.Use(authmw.Middleware(log, app.AccessTokens, app.Denylist))

	authed.Handle("/shipment", shipment_post.New(log, app.ServiceShipment)).Methods("POST")
	authed.Handle("/shipment/{id}", shipment_patch.New(log, app.ServiceShipment)).Methods("PATCH")
	authed.Handle("/shipment/{id}/cancel", shipment_cancel_post.New(log, app.ServiceShipment)).Methods("POST")
	authed.Handle("/shipment/{id}/tag/{tag}", shipment_tag_post.New(log, app.ServiceShipment)).Methods("POST")
	authed.Handle("/shipment/{id}/tag/{tag}", shipment_tag_delete.New(log, app.ServiceShipment)).Methods("DELETE")

	authed.Handle("/partner", partner_patch.New(log, app.ServicePartner)).Methods("PATCH")
	authed.Handle("/logout", logout_get.New(log, app.Denylist)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
