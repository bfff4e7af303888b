// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func renderAlert(message string) string {
	return appStyle.Render(overlayBoxStyle.Render(
		errorStyle.Render("Error") + "\n\n" + message + "\n\n" + helpStyle.Render("enter / esc: close"),
	))
}

func renderConfirm(title string) string {
	return appStyle.Render(overlayBoxStyle.Render(
		app.MsgConfirmDelete + "\n\n\"" + fitText(title, 50) + "\"\n\n" + helpStyle.Render("y: yes    n: no"),
	))
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-notes-keeper\n")
	b.WriteString(info.String())

	return renderPage("ABOUT", b.String(), "esc: back")
}
