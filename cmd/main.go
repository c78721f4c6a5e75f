package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/agro-market/docs"
	"github.com/SergeyBogomolovv/agro-market/internal/app"
	"github.com/SergeyBogomolovv/agro-market/internal/auth"
	"github.com/SergeyBogomolovv/agro-market/internal/config"
	"github.com/SergeyBogomolovv/agro-market/internal/events"
	"github.com/SergeyBogomolovv/agro-market/internal/handler"
	"github.com/SergeyBogomolovv/agro-market/internal/postgres"
	"github.com/SergeyBogomolovv/agro-market/internal/redisx"
	"github.com/SergeyBogomolovv/agro-market/internal/repo"
	"github.com/SergeyBogomolovv/agro-market/internal/service"
	"github.com/SergeyBogomolovv/agro-market/pkg/trm"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/joho/godotenv"
)

// @title           Agro Market API
// @version         1.0
// @description     Marketplace for farm produce: catalog, checkout and order fulfilment.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	rdb, err := redisx.New(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	txManager := trm.NewManager(db, trm.Options{
		Timeout:     conf.Postgres.TxTimeout,
		LockTimeout: conf.Postgres.LockTimeout,
	})
	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	accountRepo := repo.NewAccountRepo(db)
	idempotency := repo.NewIdempotencyStore(rdb, conf.Redis.IdempotencyTTL, conf.Redis.IdempotencyPendingTTL)

	publisher := events.NewPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, service.OrderDeps{
		TxManager:   txManager,
		Orders:      orderRepo,
		Catalog:     productRepo,
		Accounts:    accountRepo,
		Publisher:   publisher,
		Idempotency: idempotency,
	}, conf.Checkout)
	catalogService := service.NewCatalogService(logger, txManager, productRepo)

	resolver := auth.NewResolver(logger, conf.Auth, accountRepo)

	httpHandler := handler.NewHTTPHandler(logger, orderService, catalogService, resolver)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, uuid.MustParse(conf.Auth.PaymentProcessorID), orderService)
	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	app := app.New(logger, conf, prometheus.DefaultGatherer)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(resolver)
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
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
