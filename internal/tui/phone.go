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

// PhoneModel asks for the mobile number and requests a verification code.
type PhoneModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	mobile  textinput.Model
	loading bool
	errMsg  string
}

func NewPhoneModel(ctx context.Context, auth service.ClientAuthService) PhoneModel {
	mobile := textinput.New()
	mobile.Placeholder = "+919876543210"
	mobile.CharLimit = 16
	mobile.Width = 24
	mobile.Focus()

	return PhoneModel{
		ctx:    ctx,
		auth:   auth,
		mobile: mobile,
	}
}

func (m PhoneModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PhoneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		if key.Matches(msg, keys.enter) {
			number := strings.TrimSpace(m.mobile.Value())
			if number == "" {
				m.errMsg = "Enter your mobile number"
				return m, nil
			}
			m.loading = true
			m.errMsg = ""
			return m, m.onboardCmd(number)
		}

	case onboardedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageOTP, Payload: msg}
		}
	}

	var cmd tea.Cmd
	m.mobile, cmd = m.mobile.Update(msg)
	return m, cmd
}

func (m PhoneModel) View() string {
	var b strings.Builder
	b.WriteString("Sign in with your mobile number.\n")
	b.WriteString("We will send a verification code by SMS.\n\n")
	b.WriteString("Mobile number: ")
	b.WriteString(m.mobile.View())
	b.WriteString("\n")

	if m.loading {
		b.WriteString("\nSending code...\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("SIGN IN", b.String(), "enter: send code • ctrl+v: version")
}

func (m PhoneModel) onboardCmd(number string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.auth.Onboard(m.ctx, number)
		return onboardedMsg{mobileNumber: number, err: err}
	}
}
