// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/tui"
	"github.com/MKhiriev/go-ride-docs/internal/workers"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	session    models.Session
	restoreErr error
	restores   int
}

func (f *fakeSessions) Restore(context.Context) (models.Session, error) {
	f.restores++
	return f.session, f.restoreErr
}

func (f *fakeSessions) Begin(_ context.Context, user models.User, token string) (models.Session, error) {
	f.session = models.Session{User: user, Token: token}
	return f.session, nil
}

func (f *fakeSessions) End(context.Context) error {
	f.session = models.Session{}
	return nil
}

func (f *fakeSessions) Current() models.Session {
	return f.session
}

type uiResult struct {
	logout bool
	err    error
}

// scriptedUI returns the scripted results in order and records the sessions
// it was started with.
type scriptedUI struct {
	results  []uiResult
	sessions []models.Session
	onRun    func()
}

func (u *scriptedUI) Run(_ context.Context, session models.Session) (bool, error) {
	u.sessions = append(u.sessions, session)
	if u.onRun != nil {
		u.onRun()
	}
	r := u.results[0]
	u.results = u.results[1:]
	return r.logout, r.err
}

type recordingDeleter struct {
	mu   sync.Mutex
	urls []string
}

func (d *recordingDeleter) DeleteImage(_ context.Context, url string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.urls = append(d.urls, url)
	return nil
}

func newAppFixture(t *testing.T, sessions *fakeSessions, ui *scriptedUI) (*App, *workers.BlobDeleteWorker, *recordingDeleter) {
	t.Helper()

	deleter := &recordingDeleter{}
	worker := workers.NewBlobDeleteWorker(deleter, config.ClientWorkers{DeleteWorkers: 1, DeleteQueueSize: 4}, logger.Nop())
	app, err := NewApp(&service.ClientServices{SessionService: sessions, DeleteWorker: worker}, ui, logger.Nop())
	require.NoError(t, err)
	return app, worker, deleter
}

func TestNewApp_RequiresServices(t *testing.T) {
	_, err := NewApp(nil, &scriptedUI{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	_, err = NewApp(&service.ClientServices{}, &scriptedUI{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)
}

func TestApp_RunWithoutSavedSession(t *testing.T) {
	sessions := &fakeSessions{restoreErr: store.ErrSessionNotFound}
	ui := &scriptedUI{results: []uiResult{{}}}
	app, _, _ := newAppFixture(t, sessions, ui)

	require.NoError(t, app.run(context.Background()))

	require.Len(t, ui.sessions, 1)
	assert.False(t, ui.sessions[0].IsAuthenticated())
}

func TestApp_RunWithRestoredSession(t *testing.T) {
	session := models.Session{User: models.User{ID: "user-1"}, Token: "token"}
	sessions := &fakeSessions{session: session}
	ui := &scriptedUI{results: []uiResult{{}}}
	app, _, _ := newAppFixture(t, sessions, ui)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, []models.Session{session}, ui.sessions)
}

func TestApp_LogoutRestartsSignIn(t *testing.T) {
	sessions := &fakeSessions{restoreErr: store.ErrSessionNotFound}
	ui := &scriptedUI{results: []uiResult{{logout: true}, {logout: false}}}
	app, _, _ := newAppFixture(t, sessions, ui)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, 2, sessions.restores)
	assert.Len(t, ui.sessions, 2)
}

func TestApp_UserQuit(t *testing.T) {
	sessions := &fakeSessions{restoreErr: store.ErrSessionNotFound}
	ui := &scriptedUI{results: []uiResult{{err: tui.ErrUserQuit}}}
	app, _, _ := newAppFixture(t, sessions, ui)

	assert.NoError(t, app.run(context.Background()))
}

func TestApp_UIError(t *testing.T) {
	sessions := &fakeSessions{restoreErr: store.ErrSessionNotFound}
	uiErr := errors.New("could not open a new TTY")
	ui := &scriptedUI{results: []uiResult{{err: uiErr}}}
	app, _, _ := newAppFixture(t, sessions, ui)

	err := app.run(context.Background())
	assert.ErrorIs(t, err, uiErr)
}

func TestApp_RestoreError(t *testing.T) {
	dbErr := errors.New("database disk image is malformed")
	sessions := &fakeSessions{restoreErr: dbErr}
	ui := &scriptedUI{}
	app, _, _ := newAppFixture(t, sessions, ui)

	err := app.run(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, ui.sessions)
}

func TestApp_QueuedDeletesFinishBeforeExit(t *testing.T) {
	sessions := &fakeSessions{restoreErr: store.ErrSessionNotFound}
	ui := &scriptedUI{results: []uiResult{{}}}
	app, worker, deleter := newAppFixture(t, sessions, ui)

	target := models.VehicleTarget(models.VehiclePhoto, 0)
	ui.onRun = func() {
		worker.Enqueue(target, "https://blob/a", "https://blob/b")
	}

	require.NoError(t, app.run(context.Background()))
	assert.ElementsMatch(t, []string{"https://blob/a", "https://blob/b"}, deleter.urls)
}
