// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func sampleCollection() models.DocumentCollection {
	return models.DocumentCollection{
		DrivingLicense: []string{"dl1", "dl2"},
		NationalID:     []string{"id1", "id2"},
		Vehicles: []models.VehicleDocumentSet{{
			RegistrationCertificateURL: "rc",
			InsuranceCertificateURL:    "ins",
			PollutionCertificateURL:    "puc",
			PhotoURLs:                  []string{"p1"},
		}},
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Blobs ────────────────────────────────────────────────────────────────────

func TestUploadImage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/azure/blob/upload", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body models.BlobUploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "data:image/jpeg;base64,aGk=", body.Base64Image)
		assert.Equal(t, "cardocument", body.ContainerName)

		writeJSON(t, w, http.StatusOK, models.BlobUploadResponse{URL: "http://blobs/cardocument/1.jpg"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	url, err := a.UploadImage(context.Background(), "data:image/jpeg;base64,aGk=", "cardocument")
	require.NoError(t, err)
	assert.Equal(t, "http://blobs/cardocument/1.jpg", url)
}

func TestUploadImage_EmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.BlobUploadResponse{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UploadImage(context.Background(), "aGk=", "cardocument")
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestUploadImage_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusRequestEntityTooLarge, models.MessageResponse{Message: "image too large"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UploadImage(context.Background(), "aGk=", "cardocument")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
	assert.Contains(t, err.Error(), "image too large")
}

func TestDeleteImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/azure/blob/delete", r.URL.Path)

		var body models.BlobDeleteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.BlobURL == "http://blobs/missing.jpg" {
			writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "blob not found"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.DeleteImage(context.Background(), "http://blobs/1.jpg"))
	assert.ErrorIs(t, a.DeleteImage(context.Background(), "http://blobs/missing.jpg"), ErrNotFound)
}

// ── Documents ────────────────────────────────────────────────────────────────

func TestCreateDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/car-docs/create", r.URL.Path)

		var body models.DocumentRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user-1", body.UserID)

		body.ID = "doc-1"
		writeJSON(t, w, http.StatusCreated, models.DocumentsResponse{Success: true, Documents: &body})
	}))
	defer srv.Close()

	record, err := newTestAdapter(t, srv.URL).CreateDocuments(context.Background(), "user-1", sampleCollection())
	require.NoError(t, err)
	assert.Equal(t, "doc-1", record.ID)
	assert.Equal(t, sampleCollection(), record.Documents)
}

func TestFetchDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path == "/api/car-docs/get-user/nobody" {
			writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "documents not found"})
			return
		}
		assert.Equal(t, "/api/car-docs/get-user/user-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.DocumentsResponse{
			Success:   true,
			Documents: &models.DocumentRecord{ID: "doc-1", UserID: "user-1", Documents: sampleCollection()},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	record, err := a.FetchDocuments(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, sampleCollection(), record.Documents)

	_, err = a.FetchDocuments(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/car-docs/update/user-1", r.URL.Path)

		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Contains(t, raw, "addhar")
		assert.Contains(t, raw, "pollutionPaper")

		writeJSON(t, w, http.StatusOK, models.DocumentsResponse{
			Success:      true,
			Documents:    &models.DocumentRecord{ID: "doc-1", UserID: "user-1", Documents: sampleCollection()},
			Verification: &models.VerificationState{Status: models.VerificationPending},
		})
	}))
	defer srv.Close()

	result, err := newTestAdapter(t, srv.URL).UpdateDocuments(context.Background(), "user-1", sampleCollection())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.VerificationPending, result.Verification.Status)
	assert.Equal(t, "doc-1", result.Record.ID)
}

func TestUpdateDocuments_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UpdateDocuments(context.Background(), "user-1", sampleCollection())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestDeleteDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/car-docs/delete/doc-1", r.URL.Path)
		writeJSON(t, w, http.StatusForbidden, models.MessageResponse{Message: "forbidden"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteDocuments(context.Background(), "doc-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Users ────────────────────────────────────────────────────────────────────

func TestOnboard_CodeOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/auth-boarding", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body models.OnboardRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "+919876543210", body.MobileNumber)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{Success: true, Message: "OTP sent"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Onboard(context.Background(), "+919876543210")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, a.Token())
}

func TestVerify_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/users/verify", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Success: true, Message: "Number verified", Token: "tok-1",
			User: &models.User{ID: "user-1", MobileNumber: "+919876543210"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Verify(context.Background(), "+919876543210", "123456")
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "tok-1", a.Token())
}

func TestVerify_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/users/verify", r.URL.Path)
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "invalid code"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("keep")

	_, err := a.Verify(context.Background(), "+919876543210", "000000")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "keep", a.Token())
}

func TestCompleteRegistration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/auth", r.URL.Path)

		var body models.RegistrationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "work", body.FormData.Role)
		assert.Equal(t, sampleCollection(), body.Documents)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{Success: true, Token: "tok-2", User: &models.User{ID: body.UserID}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.CompleteRegistration(context.Background(), models.RegistrationRequest{
		UserID:    "user-1",
		FormData:  models.ProfileForm{FullName: "Asha", Role: "work"},
		Documents: sampleCollection(),
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "tok-2", a.Token())
}

func TestGetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/profile/user-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ProfileResponse{Success: true, User: models.User{ID: "user-1", IsDocumentVerified: true}})
	}))
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL).GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, user.IsDocumentVerified)
}

func TestUpdateProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/users/profile/update/user-1", r.URL.Path)

		var req models.ProfileUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Email)
		assert.Equal(t, "asha@example.com", *req.Email)

		writeJSON(t, w, http.StatusOK, models.ProfileUpdateResponse{Success: true, User: models.User{ID: "user-1", Email: *req.Email}})
	}))
	defer srv.Close()

	email := "asha@example.com"
	user, err := newTestAdapter(t, srv.URL).UpdateProfile(context.Background(), "user-1", models.ProfileUpdateRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
}
