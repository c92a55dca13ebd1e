// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
)

type clientAuthService struct {
	users    adapter.ServerAdapter
	sessions ClientSessionService
	logger   *logger.Logger
}

// NewClientAuthService creates a [ClientAuthService].
func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions ClientSessionService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{users: serverAdapter, sessions: sessions, logger: logger}
}

// Onboard implements [ClientAuthService]. The server only sends a code; the
// session starts in Verify.
func (a *clientAuthService) Onboard(ctx context.Context, mobileNumber string) (models.User, error) {
	if _, err := a.users.Onboard(ctx, mobileNumber); err != nil {
		return models.User{}, fmt.Errorf("onboard: %w", mapAdapterError(err))
	}

	a.logger.Info().Str("mobile_number", mobileNumber).Msg("verification code requested")
	return models.User{MobileNumber: mobileNumber}, nil
}

// Verify implements [ClientAuthService]. The session starts with the token
// issued for the confirmed number.
func (a *clientAuthService) Verify(ctx context.Context, mobileNumber, code string) (models.Session, error) {
	resp, err := a.users.Verify(ctx, mobileNumber, code)
	if err != nil {
		return models.Session{}, fmt.Errorf("verify: %w", mapAdapterError(err))
	}
	if resp.User == nil || resp.Token == "" {
		return models.Session{}, fmt.Errorf("verify: %w", adapter.ErrUnexpectedResponse)
	}

	return a.sessions.Begin(ctx, *resp.User, resp.Token)
}

// CompleteRegistration implements [ClientAuthService].
func (a *clientAuthService) CompleteRegistration(ctx context.Context, form models.ProfileForm, documents models.DocumentCollection) (models.Session, error) {
	current := a.sessions.Current()
	if !current.IsAuthenticated() {
		return models.Session{}, ErrNotSignedIn
	}

	resp, err := a.users.CompleteRegistration(ctx, models.RegistrationRequest{
		FormData:  form,
		Documents: documents,
		UserID:    current.User.ID,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("complete registration: %w", mapAdapterError(err))
	}
	if resp.User == nil || resp.Token == "" {
		return models.Session{}, fmt.Errorf("complete registration: %w", adapter.ErrUnexpectedResponse)
	}

	a.logger.Info().Str("user_id", resp.User.ID).Msg("registration completed")
	return a.sessions.Begin(ctx, *resp.User, resp.Token)
}

// Profile implements [ClientAuthService]. The saved session is refreshed with
// the returned profile.
func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	current := a.sessions.Current()
	if !current.IsAuthenticated() {
		return models.User{}, ErrNotSignedIn
	}

	user, err := a.users.GetProfile(ctx, current.User.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", mapAdapterError(err))
	}

	if _, err = a.sessions.Begin(ctx, user, current.Token); err != nil {
		a.logger.Warn().Err(err).Msg("failed to refresh saved session")
	}
	return user, nil
}

// UpdateProfile implements [ClientAuthService].
func (a *clientAuthService) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.User, error) {
	current := a.sessions.Current()
	if !current.IsAuthenticated() {
		return models.User{}, ErrNotSignedIn
	}

	user, err := a.users.UpdateProfile(ctx, current.User.ID, req)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", mapAdapterError(err))
	}

	if _, err = a.sessions.Begin(ctx, user, current.Token); err != nil {
		a.logger.Warn().Err(err).Msg("failed to refresh saved session")
	}
	return user, nil
}
