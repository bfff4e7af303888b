package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context, page flow.Page) error
}

type App struct {
	ui       UI
	storages *store.ClientStorages
	page     flow.Page

	logger *logger.Logger
}

// NewApp validates the start page from appCfg. storages is closed when Run
// returns.
func NewApp(ui UI, storages *store.ClientStorages, appCfg config.ClientApp, logger *logger.Logger) (*App, error) {
	page, err := flow.ParsePage(appCfg.StartPage)
	if err != nil {
		return nil, fmt.Errorf("start page: %w", err)
	}

	return &App{ui: ui, storages: storages, page: page, logger: logger}, nil
}

// Run shows the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("failed to close storages")
		}
	}()

	a.logger.Info().Stringer("page", a.page).Msg("client started")
	if err := a.ui.Run(ctx, a.page); err != nil {
		return err
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
