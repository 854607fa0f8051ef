package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	rainbowHttp "github.com/ATenderholt/rainbow-copy/internal/http"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/go-chi/chi/v5"
)

type App struct {
	cfg        *settings.LocalConfig
	srv        *http.Server
	dispatcher *rainbowHttp.Dispatcher
}

func NewApp(cfg *settings.LocalConfig, mux *chi.Mux, dispatcher *rainbowHttp.Dispatcher) App {
	return App{
		cfg: cfg,
		srv: &http.Server{
			Addr:    cfg.Address(),
			Handler: mux,
		},
		dispatcher: dispatcher,
	}
}

func (app App) Start() (err error) {
	app.dispatcher.Start()

	go func() {
		logger.Infof("Listening for invocations on %s", app.cfg.Address())
		if err := app.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Unable to serve invocations: %v", err)
		}
	}()

	return nil
}

func (app App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	err := app.srv.Shutdown(ctx)
	app.dispatcher.Stop()

	return err
}
