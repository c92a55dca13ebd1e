// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/documents"
	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "too many identity images wins over invalid request",
			err:         fmt.Errorf("%w: %w", validators.ErrInvalidRequest, documents.ErrTooManyIdentityImages),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgTooManyIdentityImages,
		},
		{
			name:        "undecodable data url",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, models.ErrInvalidDataURL),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "wrapped forbidden",
			err:         fmt.Errorf("get documents: %w", service.ErrUnauthorizedAccessToDifferentUserData),
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgForbidden,
		},
		{
			name:        "duplicate mobile number",
			err:         store.ErrMobileNumberAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgMobileNumberAlreadyExists,
		},
		{
			name:        "body too large",
			err:         fmt.Errorf("%w: %w", ErrInvalidJSON, &http.MaxBytesError{Limit: maxBodyBytes}),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: app.MsgRequestTooLarge,
		},
		{
			name:        "sql failure",
			err:         fmt.Errorf("%w: boom", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:        "unknown",
			err:         errors.New("something else"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rr, req, store.ErrDocumentsNotFound, "lookup failed")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"documents not found","success":false}`, rr.Body.String())
}
