// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/mock"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuthSvc(t *testing.T) (ClientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	repo := mock.NewMockSessionRepository(ctrl)
	sessions := NewSessionService(repo, serverAdapter, logger.Nop())
	return NewClientAuthService(serverAdapter, sessions, logger.Nop()), serverAdapter, repo
}

// signIn starts a session for testDriver through Verify.
func signIn(t *testing.T, svc ClientAuthService, serverAdapter *mock.MockServerAdapter, repo *mock.MockSessionRepository) {
	t.Helper()
	serverAdapter.EXPECT().Verify(gomock.Any(), testDriver.MobileNumber, "1234").
		Return(models.AuthResponse{Success: true, Token: "verified-jwt", User: &testDriver}, nil)
	serverAdapter.EXPECT().SetToken("verified-jwt")
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Verify(context.Background(), testDriver.MobileNumber, "1234")
	require.NoError(t, err)
}

func TestClientAuthService_Onboard(t *testing.T) {
	svc, serverAdapter, _ := newTestClientAuthSvc(t)

	serverAdapter.EXPECT().Onboard(gomock.Any(), "+919876543210").
		Return(models.AuthResponse{Success: true, Message: app.MsgVerificationCodeSent}, nil)

	user, err := svc.Onboard(context.Background(), "+919876543210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", user.MobileNumber)
	assert.Empty(t, user.ID)
}

func TestClientAuthService_Onboard_Failed(t *testing.T) {
	svc, serverAdapter, _ := newTestClientAuthSvc(t)

	serverAdapter.EXPECT().Onboard(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided))

	_, err := svc.Onboard(context.Background(), "+91")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Verify_BeginsSession(t *testing.T) {
	svc, serverAdapter, repo := newTestClientAuthSvc(t)

	serverAdapter.EXPECT().Verify(gomock.Any(), testDriver.MobileNumber, "1234").
		Return(models.AuthResponse{Success: true, Token: "verified-jwt", User: &testDriver}, nil)
	serverAdapter.EXPECT().SetToken("verified-jwt")
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	session, err := svc.Verify(context.Background(), testDriver.MobileNumber, "1234")
	require.NoError(t, err)
	assert.Equal(t, testDriver, session.User)
	assert.Equal(t, "verified-jwt", session.Token)
}

func TestClientAuthService_Verify_MissingToken(t *testing.T) {
	svc, serverAdapter, _ := newTestClientAuthSvc(t)

	serverAdapter.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{Success: true, User: &testDriver}, nil)

	_, err := svc.Verify(context.Background(), testDriver.MobileNumber, "1234")
	assert.ErrorIs(t, err, adapter.ErrUnexpectedResponse)
}

func TestClientAuthService_Verify_WrongCode(t *testing.T) {
	svc, serverAdapter, _ := newTestClientAuthSvc(t)

	serverAdapter.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidVerificationCode))

	_, err := svc.Verify(context.Background(), testDriver.MobileNumber, "0000")
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

func TestClientAuthService_CompleteRegistration(t *testing.T) {
	svc, serverAdapter, repo := newTestClientAuthSvc(t)
	signIn(t, svc, serverAdapter, repo)

	form := models.ProfileForm{FullName: "Ravi Kumar", Role: "work", Password: "secret"}
	docs := completeDocuments()
	registered := testDriver
	registered.FullName = form.FullName
	registered.VerificationStatus = models.VerificationPending

	serverAdapter.EXPECT().CompleteRegistration(gomock.Any(), models.RegistrationRequest{
		FormData: form, Documents: docs, UserID: testDriver.ID,
	}).Return(models.AuthResponse{Success: true, Token: "registered-jwt", User: &registered}, nil)
	serverAdapter.EXPECT().SetToken("registered-jwt")
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	session, err := svc.CompleteRegistration(context.Background(), form, docs)
	require.NoError(t, err)
	assert.Equal(t, "registered-jwt", session.Token)
	assert.Equal(t, models.VerificationPending, session.User.VerificationStatus)
}

func TestClientAuthService_CompleteRegistration_NotSignedIn(t *testing.T) {
	svc, _, _ := newTestClientAuthSvc(t)

	_, err := svc.CompleteRegistration(context.Background(), models.ProfileForm{}, completeDocuments())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestClientAuthService_CompleteRegistration_NumberNotVerified(t *testing.T) {
	svc, serverAdapter, repo := newTestClientAuthSvc(t)
	signIn(t, svc, serverAdapter, repo)

	serverAdapter.EXPECT().CompleteRegistration(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgNumberNotVerified))

	_, err := svc.CompleteRegistration(context.Background(), models.ProfileForm{}, completeDocuments())
	assert.ErrorIs(t, err, ErrNumberNotVerified)
}

func TestClientAuthService_Profile(t *testing.T) {
	svc, serverAdapter, repo := newTestClientAuthSvc(t)
	signIn(t, svc, serverAdapter, repo)

	fresh := testDriver
	fresh.IsDocumentVerified = true
	serverAdapter.EXPECT().GetProfile(gomock.Any(), testDriver.ID).Return(fresh, nil)
	serverAdapter.EXPECT().SetToken("verified-jwt")
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.True(t, user.IsDocumentVerified)
}

func TestClientAuthService_UpdateProfile(t *testing.T) {
	svc, serverAdapter, repo := newTestClientAuthSvc(t)
	signIn(t, svc, serverAdapter, repo)

	name := "Ravi K."
	updated := testDriver
	updated.FullName = name
	serverAdapter.EXPECT().UpdateProfile(gomock.Any(), testDriver.ID, models.ProfileUpdateRequest{FullName: &name}).Return(updated, nil)
	serverAdapter.EXPECT().SetToken("verified-jwt")
	repo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.UpdateProfile(context.Background(), models.ProfileUpdateRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, user.FullName)
}

func TestClientAuthService_Profile_NotSignedIn(t *testing.T) {
	svc, _, _ := newTestClientAuthSvc(t)

	_, err := svc.Profile(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}
