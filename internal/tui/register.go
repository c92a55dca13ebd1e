// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultRole = "work"

const (
	fieldFullName = iota
	fieldEmail
	fieldPassword
	fieldRole
)

var registerLabels = []string{"Full name", "Email", "Password", "Role"}

// RegisterModel collects the profile form and registers the driver together
// with the current documents.
type RegisterModel struct {
	ctx    context.Context
	editor documentEditor

	inputs  []textinput.Model
	focus   int
	loading bool
	errMsg  string
}

func NewRegisterModel(ctx context.Context, editor documentEditor) RegisterModel {
	inputs := make([]textinput.Model, len(registerLabels))
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 128
		in.Width = 40
		inputs[i] = in
	}
	inputs[fieldEmail].Placeholder = "optional"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'
	inputs[fieldPassword].Placeholder = "optional"
	inputs[fieldRole].SetValue(defaultRole)
	inputs[fieldFullName].Focus()

	return RegisterModel{
		ctx:    ctx,
		editor: editor,
		inputs: inputs,
	}
}

func (m RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageDocuments} }
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			return m.moveFocus(1), nil
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			return m.moveFocus(-1), nil
		case key.Matches(msg, keys.enter):
			form := m.form()
			if form.FullName == "" {
				m.errMsg = "Enter your full name"
				return m, nil
			}
			m.loading = true
			m.errMsg = ""
			return m, m.registerCmd(form)
		}

	case registeredMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageDocuments, Payload: signedInMsg{session: msg.session}}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m RegisterModel) moveFocus(delta int) RegisterModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m RegisterModel) form() models.ProfileForm {
	role := strings.TrimSpace(m.inputs[fieldRole].Value())
	if role == "" {
		role = defaultRole
	}
	return models.ProfileForm{
		FullName: strings.TrimSpace(m.inputs[fieldFullName].Value()),
		Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Password: m.inputs[fieldPassword].Value(),
		Role:     role,
	}
}

func (m RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Complete your profile. All documents must be uploaded first.\n\n")

	for i, in := range m.inputs {
		label := registerLabels[i] + ":"
		if i == m.focus {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\nRegistering...\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("REGISTRATION", b.String(), "tab/↑/↓: switch field • enter: register • esc: back")
}

func (m RegisterModel) registerCmd(form models.ProfileForm) tea.Cmd {
	return func() tea.Msg {
		session, err := m.editor.CompleteRegistration(m.ctx, form)
		return registeredMsg{session: session, err: err}
	}
}
