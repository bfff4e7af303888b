// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the notes client.
//
// The screens are thin views over [controller.Controller]: key presses become
// [flow.Event] values, the controller folds them into its state, and the
// resulting effects run as Bubble Tea commands whose outcomes come back as
// further events.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/controller"
	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	controller *controller.Controller
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(ctrl *controller.Controller, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{controller: ctrl, buildInfo: buildInfo, logger: logger}
}

// Run shows page first and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context, page flow.Page) error {
	t.logger.Info().Stringer("page", page).Msg("starting terminal ui")

	model := newRootModel(ctx, t.controller, page, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
