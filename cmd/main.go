package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/users-server/internal/api/grpc/middleware"
	"github.com/dtroode/users-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/users-server/internal/api/grpc/server"
	"github.com/dtroode/users-server/internal/config"
	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/model"
	"github.com/dtroode/users-server/internal/password"
	"github.com/dtroode/users-server/internal/repository/memory"
	"github.com/dtroode/users-server/internal/repository/postgres"
	"github.com/dtroode/users-server/internal/server"
	"github.com/dtroode/users-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	userStore, closeStore := openUserStore(ctx, cfg, logger)
	defer closeStore()

	userService := service.NewUser(userStore, password.NewBcrypt(cfg.Password.BcryptCost), logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled {
		metrics = middleware.NewMetrics(registry)
	}

	r := router.New(userService, metrics, logger)
	s := r.Register()
	reflection.Register(s)

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	servers := []model.Server{grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port))}
	if cfg.Metrics.Enabled {
		handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
		servers = append(servers, server.NewHTTPServer(fmt.Sprintf(":%s", cfg.Metrics.Port), handler))
	}

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(listenerFor(s, sl)); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(srv)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GRPC.ShutdownTimeout)
	defer shutdownCancel()

	for _, srv := range servers {
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", srv.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// openUserStore returns the configured store and a function releasing it.
func openUserStore(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.UserStore, func()) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Info("using in-memory user store")
		return memory.NewUserRepository(), func() {}
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, postgres.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}

	return postgres.NewUserRepository(db), func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}
}

// listenerFor keeps the metrics endpoint on plain TCP even when gRPC uses TLS.
func listenerFor(s model.Server, grpcLayer model.SecurityLayer) model.SecurityLayer {
	if _, ok := s.(*server.HTTPServer); ok {
		return server.NewPlainListener()
	}
	return grpcLayer
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
