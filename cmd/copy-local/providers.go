package main

import (
	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/ATenderholt/rainbow-copy/internal/notify"
	"github.com/ATenderholt/rainbow-copy/internal/service"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/ATenderholt/rainbow-copy/internal/storage"
)

func storageConfig(cfg *settings.LocalConfig) storage.Config {
	return storage.Config(cfg.Storage)
}

func notifyConfig(cfg *settings.LocalConfig) notify.Config {
	return notify.Config(cfg.Notify)
}

func handlerOptions(cfg *settings.LocalConfig) service.Options {
	return service.Options{CopyTimeout: cfg.Timeout}
}

func lookup(cfg *settings.LocalConfig) settings.Lookup {
	return cfg.Lookup()
}

func filter(cfg *settings.LocalConfig) (domain.Filter, error) {
	if cfg.FilterPath == "" {
		return domain.Filter{}, nil
	}

	return settings.LoadFilter(cfg.FilterPath)
}
