// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/mock"
	"github.com/MKhiriev/go-ride-docs/internal/service"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = "0190d6f4-0000-7000-8000-000000000001"
	otherUser  = "0190d6f4-0000-7000-8000-000000000002"
	testToken  = "valid-token"
	testOrigin = "http://localhost:8081"
	testMobile = "+919876543210"
)

type handlerFixture struct {
	auth   *mock.MockAuthService
	docs   *mock.MockDocumentService
	blobs  *mock.MockBlobService
	info   *mock.MockAppInfoService
	router http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		auth:  mock.NewMockAuthService(ctrl),
		docs:  mock.NewMockDocumentService(ctrl),
		blobs: mock.NewMockBlobService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:     f.auth,
		DocumentService: f.docs,
		BlobService:     f.blobs,
		AppInfoService:  f.info,
	}, config.Server{HTTPAddress: ":8080", AllowedOrigins: []string{testOrigin}}, logger.Nop())
	f.router = h.Init()

	return f
}

// signedIn makes testToken resolve to testUserID.
func (f *handlerFixture) signedIn() {
	f.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: testUserID}, nil).
		AnyTimes()
}

func (f *handlerFixture) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func messageOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.MessageResponse](t, rr).Message
}
