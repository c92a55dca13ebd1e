// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const statusTTL = 2 * time.Second

// documentEditor is the part of [service.DocumentEditor] the pages use.
type documentEditor interface {
	Snapshot() models.DocumentCollection
	Ready() bool
	Missing() []validators.Reason
	Load(ctx context.Context) error
	AddImages(ctx context.Context, target models.Target, images []models.Image) (models.UploadReport, error)
	RemoveDocument(ctx context.Context, target models.Target, item int)
	RemoveVehicle(ctx context.Context, vehicle int)
	AddVehicle()
	Submit(ctx context.Context) (models.SubmitResult, error)
	CompleteRegistration(ctx context.Context, form models.ProfileForm) (models.Session, error)
}

type rowKind int

const (
	rowTarget rowKind = iota
	rowVehicle
	rowURL
)

// docRow is one selectable line of the documents page.
type docRow struct {
	kind   rowKind
	target models.Target
	item   int
	url    string
	count  int
	filled bool
}

// buildRows flattens c into display order: identity documents first, then
// every vehicle with its certificates and photos. URL rows follow the target
// they belong to.
func buildRows(c models.DocumentCollection) []docRow {
	rows := make([]docRow, 0, 16)

	for _, t := range []models.DocumentType{models.DrivingLicense, models.NationalID} {
		urls := c.Identity(t)
		rows = append(rows, docRow{
			kind:   rowTarget,
			target: models.IdentityTarget(t),
			count:  len(urls),
			filled: len(urls) == models.MaxIdentityImages,
		})
		rows = appendURLRows(rows, models.IdentityTarget(t), urls)
	}

	for i, v := range c.Vehicles {
		rows = append(rows, docRow{kind: rowVehicle, target: models.VehicleTarget("", i)})

		for _, t := range []models.DocumentType{
			models.RegistrationCertificate,
			models.InsuranceCertificate,
			models.PollutionCertificate,
		} {
			target := models.VehicleTarget(t, i)
			url := v.Slot(t)
			row := docRow{kind: rowTarget, target: target}
			if url != "" {
				row.count, row.filled = 1, true
			}
			rows = append(rows, row)
			if url != "" {
				rows = append(rows, docRow{kind: rowURL, target: target, url: url})
			}
		}

		photos := models.VehicleTarget(models.VehiclePhoto, i)
		rows = append(rows, docRow{
			kind:   rowTarget,
			target: photos,
			count:  len(v.PhotoURLs),
			filled: len(v.PhotoURLs) > 0,
		})
		rows = appendURLRows(rows, photos, v.PhotoURLs)
	}

	return rows
}

func appendURLRows(rows []docRow, target models.Target, urls []string) []docRow {
	for i, url := range urls {
		rows = append(rows, docRow{kind: rowURL, target: target, item: i, url: url})
	}
	return rows
}

// parseImagePaths splits a comma separated list of file paths. Targets that
// take a single image accept exactly one path.
func parseImagePaths(input string, target models.Target) ([]models.Image, error) {
	var images []models.Image
	for _, p := range strings.Split(input, ",") {
		if p = strings.TrimSpace(p); p != "" {
			images = append(images, models.FileImage{Path: p})
		}
	}

	if len(images) == 0 {
		return nil, service.ErrNoImagesSelected
	}
	if !target.Type.AllowsMultiSelect() && len(images) > 1 {
		return nil, fmt.Errorf("%s takes a single image", target.Type.Title())
	}
	return images, nil
}

// DocumentsModel shows the document collection of the signed-in user and
// drives uploads, removals and submission.
type DocumentsModel struct {
	ctx      context.Context
	editor   documentEditor
	sessions service.ClientSessionService

	session    models.Session
	loadOnInit bool
	rows       []docRow
	cursor     int
	ready      bool
	missing    []validators.Reason

	picking bool
	paths   textinput.Model

	busy   bool
	status string
	errMsg string
}

// NewDocumentsModel returns the documents page. With an authenticated
// session the stored documents are loaded when the page opens.
func NewDocumentsModel(ctx context.Context, editor documentEditor, sessions service.ClientSessionService, session models.Session) DocumentsModel {
	paths := textinput.New()
	paths.Placeholder = "/path/front.jpg, /path/back.jpg"
	paths.CharLimit = 1024
	paths.Width = 60

	m := DocumentsModel{
		ctx:        ctx,
		editor:     editor,
		sessions:   sessions,
		session:    session,
		loadOnInit: session.IsAuthenticated(),
		busy:       session.IsAuthenticated(),
		paths:      paths,
	}
	return m.refresh()
}

func (m DocumentsModel) Init() tea.Cmd {
	if m.loadOnInit {
		return m.loadCmd()
	}
	return nil
}

func (m DocumentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signedInMsg:
		m.session = msg.session
		m.loadOnInit = false
		m.busy = true
		m.errMsg = ""
		return m, m.loadCmd()

	case documentsLoadedMsg:
		m.loadOnInit = false
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m.refresh(), nil

	case documentsChangedMsg:
		m = m.refresh()
		m.ready = msg.ready
		return m, nil

	case uploadDoneMsg:
		m.busy = false
		m.status = uploadSummary(msg.report)
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else if msg.report.HasFailures() {
			m.errMsg = humanizeError(errors.Join(failedImagesErrors(msg.report)...))
		}
		return m.refresh(), clearStatusCmd()

	case submitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = submitSummary(msg.result)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard is unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = "URL copied"
		return m, clearStatusCmd()

	case logoutFailedMsg:
		m.errMsg = humanizeError(msg.err)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		if m.busy {
			return m, nil
		}
		return m.updateBrowser(msg)
	}

	return m, nil
}

func (m DocumentsModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.picking = false
		m.paths.Blur()
		return m, nil

	case key.Matches(msg, keys.enter):
		target := m.rows[m.cursor].target
		images, err := parseImagePaths(m.paths.Value(), target)
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.picking = false
		m.paths.Blur()
		m.busy = true
		m.errMsg = ""
		m.status = fmt.Sprintf("Uploading %d image(s) to %s...", len(images), target.Type.Title())
		return m, m.uploadCmd(target, images)
	}

	var cmd tea.Cmd
	m.paths, cmd = m.paths.Update(msg)
	return m, cmd
}

func (m DocumentsModel) updateBrowser(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.add), key.Matches(msg, keys.enter):
		row, ok := m.selected()
		if !ok || row.kind == rowVehicle {
			return m, nil
		}
		m.picking = true
		m.errMsg = ""
		m.paths.Reset()
		m.paths.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.remove):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		switch row.kind {
		case rowURL:
			return m, m.editCmd(func(e documentEditor) { e.RemoveDocument(m.ctx, row.target, row.item) })
		case rowVehicle:
			return m, m.editCmd(func(e documentEditor) { e.RemoveVehicle(m.ctx, row.target.Vehicle) })
		}

	case key.Matches(msg, keys.addVehicle):
		return m, m.editCmd(func(e documentEditor) { e.AddVehicle() })

	case key.Matches(msg, keys.copy):
		row, ok := m.selected()
		if !ok || row.kind != rowURL {
			return m, nil
		}
		return m, copyCmd(row.url)

	case key.Matches(msg, keys.submit):
		if !m.ready {
			if len(m.missing) > 0 {
				m.errMsg = humanizeError(&service.NotReadyError{Reasons: m.missing[:1]})
			}
			return m, nil
		}
		m.busy = true
		m.status = "Submitting documents..."
		m.errMsg = ""
		return m, m.submitCmd()

	case key.Matches(msg, keys.register):
		return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }

	case key.Matches(msg, keys.reload):
		m.busy = true
		m.errMsg = ""
		return m, m.loadCmd()

	case key.Matches(msg, keys.logout):
		return m, m.logoutCmd()
	}

	return m, nil
}

// refresh rebuilds the rows from the editor and keeps the cursor in range.
func (m DocumentsModel) refresh() DocumentsModel {
	m.rows = buildRows(m.editor.Snapshot())
	m.missing = m.editor.Missing()
	m.ready = len(m.missing) == 0
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
	return m
}

func (m DocumentsModel) selected() (docRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return docRow{}, false
	}
	return m.rows[m.cursor], true
}

func (m DocumentsModel) View() string {
	var b strings.Builder

	if m.session.IsAuthenticated() {
		b.WriteString("Driver: ")
		b.WriteString(valueOrNA(m.session.User.MobileNumber))
		b.WriteString("\n\n")
	}

	for i, row := range m.rows {
		line := renderRow(row)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.ready {
		b.WriteString(okStyle.Render("Ready to submit"))
		b.WriteString("\n")
	} else {
		for _, title := range missingTitles(m.missing) {
			b.WriteString(missingStyle.Render("• " + title))
			b.WriteString("\n")
		}
	}

	if m.picking {
		b.WriteString("\nImage files (comma separated): ")
		b.WriteString(m.paths.View())
		b.WriteString("\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	hotKeys := "↑/↓: move • a: add images • d: remove • v: add vehicle • c: copy url • s: submit • r: register • ctrl+r: reload • L: logout"
	if m.picking {
		hotKeys = "enter: upload • esc: cancel"
	}
	return renderPage("DOCUMENTS", b.String(), hotKeys)
}

// missingTitles lists reason titles once each, in rule order.
func missingTitles(reasons []validators.Reason) []string {
	return lo.Uniq(lo.Map(reasons, func(r validators.Reason, _ int) string { return r.Title }))
}

func renderRow(row docRow) string {
	switch row.kind {
	case rowVehicle:
		return fmt.Sprintf("Vehicle %d", row.target.Vehicle+1)
	case rowURL:
		return indent(row.target) + "    " + fitText(row.url, 64)
	}

	mark := missingStyle.Render("[ ]")
	if row.filled {
		mark = okStyle.Render("[x]")
	}

	label := row.target.Type.Title()
	switch {
	case row.target.Type.IsIdentity():
		label = fmt.Sprintf("%s (%d/%d)", label, row.count, models.MaxIdentityImages)
	case row.target.Type == models.VehiclePhoto:
		label = fmt.Sprintf("%s (%d)", label, row.count)
	}
	return indent(row.target) + mark + " " + label
}

func indent(target models.Target) string {
	if target.Vehicle == models.NoVehicle {
		return ""
	}
	return "  "
}

func uploadSummary(report models.UploadReport) string {
	if len(report.Succeeded) == 0 && len(report.Failed) == 0 {
		return ""
	}
	return fmt.Sprintf("%d uploaded, %d failed", len(report.Succeeded), len(report.Failed))
}

func failedImagesErrors(report models.UploadReport) []error {
	errs := make([]error, 0, len(report.Failed))
	for _, f := range report.Failed {
		errs = append(errs, f)
	}
	return errs
}

func submitSummary(result models.SubmitResult) string {
	message := result.Message
	if message == "" {
		message = "Documents submitted"
	}
	if status := result.Verification.Status; status != "" {
		message += fmt.Sprintf(" (verification: %s)", status)
	}
	return message
}

func (m DocumentsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return documentsLoadedMsg{err: m.editor.Load(m.ctx)}
	}
}

func (m DocumentsModel) uploadCmd(target models.Target, images []models.Image) tea.Cmd {
	return func() tea.Msg {
		report, err := m.editor.AddImages(m.ctx, target, images)
		return uploadDoneMsg{report: report, err: err}
	}
}

// editCmd runs a mutation off the event loop; the editor listener reports
// the change.
func (m DocumentsModel) editCmd(fn func(documentEditor)) tea.Cmd {
	return func() tea.Msg {
		fn(m.editor)
		return nil
	}
}

func (m DocumentsModel) submitCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.editor.Submit(m.ctx)
		return submitDoneMsg{result: result, err: err}
	}
}

func (m DocumentsModel) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.sessions.End(m.ctx); err != nil {
			return logoutFailedMsg{err: err}
		}
		return loggedOutMsg{}
	}
}

func copyCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(url)}
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
