// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/models"
)

type sessionService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	mu      sync.RWMutex
	current models.Session
}

// NewSessionService creates a [ClientSessionService] persisting sessions in
// sessions and activating their tokens on serverAdapter.
func NewSessionService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &sessionService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

// Restore implements [ClientSessionService].
func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.LoadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if !session.IsAuthenticated() {
		return models.Session{}, store.ErrSessionNotFound
	}

	s.activate(session)
	s.logger.Debug().Str("user_id", session.User.ID).Msg("session restored")
	return session, nil
}

// Begin implements [ClientSessionService].
func (s *sessionService) Begin(ctx context.Context, user models.User, token string) (models.Session, error) {
	session := models.Session{User: user, Token: token, UpdatedAt: time.Now().UTC()}
	if !session.IsAuthenticated() {
		return models.Session{}, ErrNotSignedIn
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.activate(session)
	return session, nil
}

// End implements [ClientSessionService]. The in-memory session is dropped
// even when the saved one cannot be cleared.
func (s *sessionService) End(ctx context.Context) error {
	s.activate(models.Session{})

	if err := s.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current implements [ClientSessionService].
func (s *sessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *sessionService) activate(session models.Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	s.adapter.SetToken(session.Token)
}
