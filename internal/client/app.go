// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/tui"
	"github.com/MKhiriev/go-ride-docs/internal/workers"
)

var errNoServices = errors.New("client services are not configured")

type App struct {
	sessions service.ClientSessionService
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil || services.DeleteWorker == nil || ui == nil {
		return nil, errNoServices
	}

	return &App{
		sessions: services.SessionService,
		ui:       ui,
		workers:  workers.NewWorkers(services.DeleteWorker),
		logger:   logger,
	}, nil
}

// Run starts the background workers and shows the UI. A logout restarts the
// sign-in flow; quitting stops the workers after the queued deletes finish.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.workers.Run()
	defer a.workers.Stop()

	for {
		session, err := a.sessions.Restore(ctx)
		if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}
		if session.IsAuthenticated() {
			a.logger.Info().Str("user_id", session.User.ID).Msg("session restored")
		}

		logout, err := a.ui.Run(ctx, session)
		switch {
		case errors.Is(err, tui.ErrUserQuit):
			return nil
		case err != nil:
			return fmt.Errorf("run ui: %w", err)
		case !logout:
			return nil
		}

		a.logger.Info().Msg("signed out")
	}
}
