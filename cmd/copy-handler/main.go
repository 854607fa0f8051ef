package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ATenderholt/rainbow-copy/internal/logging"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/ATenderholt/rainbow-copy/internal/tracing"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger()
}

func main() {
	cfg, err := settings.Load()
	if err != nil {
		fmt.Println("unable to load configuration:", err)
		os.Exit(1)
	}

	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logger.Warnf("Ignoring LOG_LEVEL: %v", err)
	}

	ctx := context.Background()

	shutdown, err := tracing.Init(ctx, tracingConfig(cfg))
	if err != nil {
		logger.Fatalf("Unable to initialize tracing: %v", err)
	}

	handler, cleanup, err := InjectHandler(ctx, cfg)
	if err != nil {
		logger.Fatalf("Unable to initialize handler: %v", err)
	}

	logger.Infof("Starting copy handler with %s storage", cfg.Storage.Provider)

	lambda.StartWithOptions(handler.Handle, lambda.WithEnableSIGTERM(func() {
		logger.Info("Shutting down ...")
		cleanup()
		if err := shutdown(ctx); err != nil {
			logger.Errorf("Unable to flush traces: %v", err)
		}
		_ = logger.Sync()
	}))
}
