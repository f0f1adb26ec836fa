package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carelink-api/internal/auth"
	"carelink-api/internal/availability"
	"carelink-api/internal/config"
	"carelink-api/internal/grpcweb"
	"carelink-api/internal/handler"
	"carelink-api/internal/httpapi"
	"carelink-api/internal/logging"
	"carelink-api/internal/metrics"
	"carelink-api/internal/middleware"
	"carelink-api/internal/model"
	"carelink-api/internal/server"
	"carelink-api/internal/store"
)

func runServer(ctx context.Context, envFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var files []string
	if _, err := os.Stat(envFile); err == nil {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// storage backend
	backend, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.close()
	logger.Info().Str("backend", cfg.StorageBackend).Msg("storage ready")

	m := metrics.New(nil)
	st := store.New(backend.storage, logger.With().Str("component", "store").Logger(), m)
	var seed []model.User
	if cfg.SeedDemo {
		if seed, err = store.DemoUsers(auth.HashPassword); err != nil {
			return err
		}
	}
	st.Init(ctx, seed)

	slots := availability.NewResolver(func() time.Time { return time.Now().In(loc) })
	h := handler.New(st, cfg.JWTSecret, slots, m)

	// grpc server
	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rl.Close()
	srv := server.New(h, server.Options{
		Secret:  cfg.JWTSecret,
		Limiter: rl,
		Logger:  logger.With().Str("component", "grpc").Logger(),
		Metrics: m,
	})

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	errc := make(chan error, 2)
	go func() {
		logger.Info().Str("port", cfg.GRPCPort).Msg("grpc listening")
		errc <- srv.Serve(lis)
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := grpcweb.New("localhost:"+cfg.GRPCPort, logger.With().Str("component", "grpcweb").Logger())
	if err != nil {
		srv.Stop()
		return err
	}
	defer bridge.Close()

	httpSrv := &http.Server{
		Addr: ":" + cfg.WebPort,
		Handler: httpapi.New(&httpapi.Config{
			Logger:         logger.With().Str("component", "http").Logger(),
			Bridge:         bridge.Handler(),
			MetricsHandler: promhttp.Handler(),
			Ready:          backend.ready,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info().Str("port", cfg.WebPort).Msg("grpc-web listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// graceful shutdown
	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err := <-errc:
		logger.Error().Err(err).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	srv.GracefulStop()
	return nil
}
