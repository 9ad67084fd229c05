package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lsbets/config"
	"lsbets/internal/database"
	"lsbets/internal/logger"
	"lsbets/internal/metrics"
	"lsbets/internal/router"
	"lsbets/pkg/gateway"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New("lsbets", cfg.Server.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
	database.SeedAdmin(db, &cfg.Admin, log)

	// Deposits cannot run without the gateway; refuse to start half-configured.
	gw, err := gateway.NewClient(cfg.Gateway.GatewayURL, cfg.Gateway.TokenURL, cfg.Gateway.AuthKey, cfg.Gateway.Timeout)
	if err != nil {
		log.Fatal("payment gateway", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, match cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	engine := router.Setup(cfg, db, log, gw, rdb)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	metricsSrv := metrics.StartServer(cfg.Server.MetricsPort, func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	_ = metricsSrv.Shutdown(ctx)
}
