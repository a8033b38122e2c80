package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/app"
	"github.com/CryptoCardia/pilotroom-web/internal/config"
	"github.com/CryptoCardia/pilotroom-web/internal/lambdax"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connections stay open for the lifetime of the execution environment.
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lambda.Start(lambdax.Handler(a.Router))
}
