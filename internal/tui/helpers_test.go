// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type fakeEditor struct {
	collection models.DocumentCollection
	missing    []validators.Reason

	loads   int
	loadErr error

	uploadTarget models.Target
	uploaded     []models.Image
	report       models.UploadReport
	uploadErr    error

	removedTarget  models.Target
	removedItem    int
	removedVehicle int
	vehiclesAdded  int

	submits      int
	submitResult models.SubmitResult
	submitErr    error

	form        models.ProfileForm
	session     models.Session
	registerErr error
}

func newFakeEditor(c models.DocumentCollection) *fakeEditor {
	return &fakeEditor{collection: c, removedItem: -1, removedVehicle: -1}
}

func (f *fakeEditor) Snapshot() models.DocumentCollection { return f.collection.Clone() }
func (f *fakeEditor) Ready() bool { return len(f.missing) == 0 }
func (f *fakeEditor) Missing() []validators.Reason { return f.missing }
func (f *fakeEditor) AddVehicle() { f.vehiclesAdded++ }
func (f *fakeEditor) RemoveVehicle(_ context.Context, v int) { f.removedVehicle = v }

func (f *fakeEditor) Load(context.Context) error {
	f.loads++
	return f.loadErr
}

func (f *fakeEditor) AddImages(_ context.Context, target models.Target, images []models.Image) (models.UploadReport, error) {
	f.uploadTarget = target
	f.uploaded = images
	return f.report, f.uploadErr
}

func (f *fakeEditor) RemoveDocument(_ context.Context, target models.Target, item int) {
	f.removedTarget = target
	f.removedItem = item
}

func (f *fakeEditor) Submit(context.Context) (models.SubmitResult, error) {
	f.submits++
	return f.submitResult, f.submitErr
}

func (f *fakeEditor) CompleteRegistration(_ context.Context, form models.ProfileForm) (models.Session, error) {
	f.form = form
	return f.session, f.registerErr
}

type fakeSessions struct {
	current models.Session
	ended   int
	endErr  error
}

func (f *fakeSessions) Restore(context.Context) (models.Session, error) { return f.current, nil }
func (f *fakeSessions) Current() models.Session { return f.current }

func (f *fakeSessions) Begin(_ context.Context, user models.User, token string) (models.Session, error) {
	f.current = models.Session{User: user, Token: token}
	return f.current, nil
}

func (f *fakeSessions) End(context.Context) error {
	f.ended++
	f.current = models.Session{}
	return f.endErr
}

type fakeAuth struct {
	onboarded string
	verified  [2]string
	session   models.Session
	err       error
}

func (f *fakeAuth) Onboard(_ context.Context, mobileNumber string) (models.User, error) {
	f.onboarded = mobileNumber
	return models.User{MobileNumber: mobileNumber}, f.err
}

func (f *fakeAuth) Verify(_ context.Context, mobileNumber, code string) (models.Session, error) {
	f.verified = [2]string{mobileNumber, code}
	return f.session, f.err
}

func (f *fakeAuth) CompleteRegistration(context.Context, models.ProfileForm, models.DocumentCollection) (models.Session, error) {
	return f.session, f.err
}

func (f *fakeAuth) Profile(context.Context) (models.User, error) {
	return f.session.User, f.err
}

func (f *fakeAuth) UpdateProfile(context.Context, models.ProfileUpdateRequest) (models.User, error) {
	return f.session.User, f.err
}

func update[M tea.Model](t *testing.T, m M, msg tea.Msg) (M, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(M)
	require.True(t, ok, "unexpected model type %T", updated)
	return next, cmd
}

// run executes cmd and flattens batches into their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, run(c)...)
	}
	return msgs
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func signedInSession() models.Session {
	return models.Session{
		User:  models.User{ID: "user-1", MobileNumber: "+919876543210"},
		Token: "token",
	}
}
