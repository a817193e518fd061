package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cardbazaar/order-service/internal/app"
	"github.com/cardbazaar/order-service/internal/config"
	"github.com/cardbazaar/order-service/internal/handler"
	"github.com/cardbazaar/order-service/internal/postgres"
	"github.com/cardbazaar/order-service/internal/repo"
	"github.com/cardbazaar/order-service/internal/service"
	"github.com/cardbazaar/order-service/pkg/cache"
	"github.com/cardbazaar/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Card Bazaar Order Service API
// @version         1.0
// @description     Order lifecycle and seller contact profile HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache)
	profileService := service.NewProfileService(logger, orderRepo)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, profileService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
