package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/poster-shop/checkout-service/internal/app"
	"github.com/poster-shop/checkout-service/internal/catalog"
	"github.com/poster-shop/checkout-service/internal/config"
	"github.com/poster-shop/checkout-service/internal/handler"
	"github.com/poster-shop/checkout-service/internal/provider"
	"github.com/poster-shop/checkout-service/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	products, zones := catalog.Default()
	if conf.CatalogPath != "" {
		var err error
		products, zones, err = catalog.LoadFile(conf.CatalogPath)
		panicIfErr("failed to load catalog", err)
		logger.Info("catalog loaded", slog.String("path", conf.CatalogPath))
	}

	if conf.Stripe.SecretKey == "" {
		logger.Warn("stripe secret key is not set, checkout requests will fail")
	}

	stripeProvider := provider.NewStripeProvider(conf.Stripe)
	checkoutService := service.NewCheckoutService(logger, products, zones, stripeProvider)
	httpHandler := handler.NewHTTPHandler(logger, checkoutService)

	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHttpHandlers(httpHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to run app", app.Run(ctx))
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
