package main

import (
	"github.com/ATenderholt/rainbow-copy/internal/notify"
	"github.com/ATenderholt/rainbow-copy/internal/service"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/ATenderholt/rainbow-copy/internal/storage"
	"github.com/ATenderholt/rainbow-copy/internal/tracing"
)

func storageConfig(cfg *settings.Config) storage.Config {
	return storage.Config(cfg.Storage)
}

func notifyConfig(cfg *settings.Config) notify.Config {
	return notify.Config(cfg.Notify)
}

func handlerOptions(cfg *settings.Config) service.Options {
	return service.Options{CopyTimeout: cfg.CopyTimeout}
}

func tracingConfig(cfg *settings.Config) tracing.Config {
	return tracing.Config{
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	}
}
