package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyeonwoo-dev/atelier-shop/internal/app"
	"github.com/hyeonwoo-dev/atelier-shop/internal/config"
	"github.com/hyeonwoo-dev/atelier-shop/internal/events"
	"github.com/hyeonwoo-dev/atelier-shop/internal/handler"
	"github.com/hyeonwoo-dev/atelier-shop/internal/payment"
	"github.com/hyeonwoo-dev/atelier-shop/internal/postgres"
	"github.com/hyeonwoo-dev/atelier-shop/internal/repo"
	"github.com/hyeonwoo-dev/atelier-shop/internal/service"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/cache"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	txManager := trm.NewManager(db)
	orderRepo := repo.NewOrderRepo(db)
	inventoryRepo := repo.NewInventoryRepo(db)
	sequenceRepo := repo.NewSequenceRepo(db)
	productRepo := repo.NewProductRepo(db)
	cartRepo := repo.NewCartRepo(db)

	productCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	verifier := payment.NewVerifier(conf.Payment)
	publisher := events.NewPublisher(conf.Kafka)

	productService := service.NewProductService(logger, txManager, productRepo, productCache)
	cartService := service.NewCartService(logger, cartRepo, productService)
	orderService := service.NewOrderService(
		logger, txManager,
		orderRepo, inventoryRepo, sequenceRepo,
		productService, cartRepo,
		verifier, publisher,
	)

	handler.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewProductHandler(logger, productService),
		handler.NewCartHandler(logger, cartService),
	)
	application.SetStarters(productCache)
	application.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
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
