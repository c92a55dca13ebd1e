// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/mock"
	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func executeAuth(t *testing.T, authSvc service.AuthService, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()
	h := &Handler{logger: logger.Nop(), services: &service.Services{AuthService: authSvc}}

	var (
		userID string
		called bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, _ = utils.GetUserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	return rr, userID, called
}

func TestAuth_ValidToken(t *testing.T) {
	authSvc := mock.NewMockAuthService(gomock.NewController(t))
	authSvc.EXPECT().ParseToken(gomock.Any(), "abc.def.ghi").Return(models.Token{UserID: testUserID}, nil)

	rr, userID, called := executeAuth(t, authSvc, "Bearer abc.def.ghi")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
	assert.Equal(t, testUserID, userID)
}

func TestAuth_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(m *mock.MockAuthService)
	}{
		{name: "no header"},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer "},
		{
			name:   "expired token",
			header: "Bearer expired",
			setup: func(m *mock.MockAuthService) {
				m.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mock.NewMockAuthService(gomock.NewController(t))
			if tt.setup != nil {
				tt.setup(authSvc)
			}

			rr, _, called := executeAuth(t, authSvc, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, called)
		})
	}
}
