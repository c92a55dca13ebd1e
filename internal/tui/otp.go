// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// OTPModel confirms the code sent to the number entered on the phone page.
type OTPModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	mobileNumber string
	code         textinput.Model
	loading      bool
	status       string
	errMsg       string
}

func NewOTPModel(ctx context.Context, auth service.ClientAuthService) OTPModel {
	code := textinput.New()
	code.Placeholder = "123456"
	code.CharLimit = 6
	code.Width = 8
	code.Focus()

	return OTPModel{
		ctx:  ctx,
		auth: auth,
		code: code,
	}
}

func (m OTPModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m OTPModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case onboardedMsg:
		m.mobileNumber = msg.mobileNumber
		m.code.Reset()
		m.code.Focus()
		m.status = "Code sent to " + msg.mobileNumber
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pagePhone} }
		case key.Matches(msg, keys.enter):
			code := strings.TrimSpace(m.code.Value())
			if code == "" {
				m.errMsg = "Enter the code from the SMS"
				return m, nil
			}
			m.loading = true
			m.status = ""
			m.errMsg = ""
			return m, m.verifyCmd(code)
		}

	case verifiedMsg:
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
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func (m OTPModel) View() string {
	var b strings.Builder
	b.WriteString("Mobile number: ")
	b.WriteString(valueOrNA(m.mobileNumber))
	b.WriteString("\n\n")
	b.WriteString("Verification code: ")
	b.WriteString(m.code.View())
	b.WriteString("\n")

	if m.loading {
		b.WriteString("\nChecking code...\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("VERIFY NUMBER", b.String(), "enter: verify • esc: change number")
}

func (m OTPModel) verifyCmd(code string) tea.Cmd {
	mobileNumber := m.mobileNumber
	return func() tea.Msg {
		session, err := m.auth.Verify(m.ctx, mobileNumber, code)
		return verifiedMsg{session: session, err: err}
	}
}
