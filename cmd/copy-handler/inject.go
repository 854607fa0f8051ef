//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/ATenderholt/rainbow-copy/internal/notify"
	"github.com/ATenderholt/rainbow-copy/internal/service"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/ATenderholt/rainbow-copy/internal/storage"
	"github.com/google/wire"
)

func InjectHandler(ctx context.Context, cfg *settings.Config) (*service.CopyHandler, func(), error) {
	wire.Build(
		storageConfig,
		notifyConfig,
		handlerOptions,
		settings.NewEnvironment,
		storage.New,
		notify.New,
		service.NewCopyHandler,
	)
	return nil, nil, nil
}
