//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/ATenderholt/rainbow-copy/internal/http"
	"github.com/ATenderholt/rainbow-copy/internal/notify"
	"github.com/ATenderholt/rainbow-copy/internal/service"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/ATenderholt/rainbow-copy/internal/storage"
	"github.com/google/wire"
)

var api = wire.NewSet(
	http.NewChiMux,
	http.NewInvokeHandler,
	http.NewDispatcher,
	http.NewMetrics,
	wire.Bind(new(http.CopyHandler), new(*service.CopyHandler)),
)

var copier = wire.NewSet(
	storageConfig,
	notifyConfig,
	handlerOptions,
	lookup,
	filter,
	storage.New,
	notify.New,
	service.NewCopyHandler,
)

func InjectApp(ctx context.Context, cfg *settings.LocalConfig) (App, func(), error) {
	wire.Build(
		NewApp,
		api,
		copier,
	)
	return App{}, nil, nil
}
