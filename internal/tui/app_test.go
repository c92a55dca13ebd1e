// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/go-ride-docs/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageMsg struct{ name string }

// stubPage records the messages it receives.
type stubPage struct {
	name     string
	received []tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	return func() tea.Msg { return pageMsg{name: p.name} }
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

func (p *stubPage) View() string {
	return "page " + p.name
}

func newRootFixture() (RootModel, *stubPage, *stubPage) {
	phone := &stubPage{name: pagePhone}
	docs := &stubPage{name: pageDocuments}
	root := NewRootModel(map[string]tea.Model{
		pagePhone:     phone,
		pageDocuments: docs,
	}, pagePhone, models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123"))
	return root, phone, docs
}

func TestRootModel_Init(t *testing.T) {
	root, _, _ := newRootFixture()

	assert.Equal(t, []tea.Msg{pageMsg{name: pagePhone}}, run(root.Init()))
	assert.Equal(t, "page phone", root.View())
}

func TestRootModel_NavigateTo(t *testing.T) {
	root, _, _ := newRootFixture()
	payload := signedInMsg{session: signedInSession()}

	root, cmd := update(t, root, NavigateTo{Page: pageDocuments, Payload: payload})

	assert.Equal(t, pageDocuments, root.current)
	assert.ElementsMatch(t, []tea.Msg{pageMsg{name: pageDocuments}, payload}, run(cmd))
	assert.Equal(t, "page documents", root.View())
}

func TestRootModel_NavigateToUnknownPage(t *testing.T) {
	root, _, _ := newRootFixture()

	root, cmd := update(t, root, NavigateTo{Page: "nowhere"})

	assert.Nil(t, cmd)
	assert.Equal(t, pagePhone, root.current)
}

func TestRootModel_DelegatesToCurrentPage(t *testing.T) {
	root, phone, docs := newRootFixture()

	root, _ = update(t, root, runes("x"))
	root, _ = update(t, root, clearStatusMsg{})

	require.Len(t, phone.received, 2)
	assert.Equal(t, clearStatusMsg{}, phone.received[1])
	assert.Empty(t, docs.received)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newRootFixture()

	root, cmd := update(t, root, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, root.quitByUser)
	assert.Equal(t, []tea.Msg{tea.QuitMsg{}}, run(cmd))
}

func TestRootModel_LoggedOutQuits(t *testing.T) {
	root, _, _ := newRootFixture()

	root, cmd := update(t, root, loggedOutMsg{})

	assert.True(t, root.logout)
	assert.False(t, root.quitByUser)
	assert.Equal(t, []tea.Msg{tea.QuitMsg{}}, run(cmd))
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	root, phone, _ := newRootFixture()

	root, _ = update(t, root, tea.KeyMsg{Type: tea.KeyCtrlV})
	require.True(t, root.showBuildInfo)

	view := root.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "v1.2.0")
	assert.Contains(t, view, "abc123")

	root, _ = update(t, root, runes("x"))
	assert.Empty(t, phone.received)

	root, _ = update(t, root, escKey)
	assert.False(t, root.showBuildInfo)
	assert.Equal(t, "page phone", root.View())
}
