// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	editor    *service.DocumentEditor
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		editor:    services.NewEditor(logger),
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the program until the user quits or logs out. With an
// authenticated session it opens on the documents page, otherwise on the
// sign-in page.
func (t *TUI) Run(ctx context.Context, session models.Session) (logout bool, err error) {
	pages := map[string]tea.Model{
		pagePhone:     NewPhoneModel(ctx, t.services.AuthService),
		pageOTP:       NewOTPModel(ctx, t.services.AuthService),
		pageDocuments: NewDocumentsModel(ctx, t.editor, t.services.SessionService, session),
		pageRegister:  NewRegisterModel(ctx, t.editor),
	}

	startPage := pagePhone
	if session.IsAuthenticated() {
		startPage = pageDocuments
	}

	root := NewRootModel(pages, startPage, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.editor.OnChange(func(_ models.DocumentCollection, ready bool) {
		program.Send(documentsChangedMsg{ready: ready})
	})
	defer t.editor.OnChange(nil)

	finalModel, runErr := program.Run()
	if runErr != nil {
		t.logger.Err(runErr).Msg("tui stopped with error")
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}
	return result.logout, nil
}
