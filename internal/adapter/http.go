// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter]
// for the server at adapterCfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// UploadImage implements [BlobStorage]. It POSTs the data URL to
// POST /api/azure/blob/upload and returns the URL of the stored blob.
func (h *httpServerAdapter) UploadImage(ctx context.Context, dataURL, container string) (string, error) {
	var result models.BlobUploadResponse

	resp, err := h.authedRequest(ctx).
		SetBody(models.BlobUploadRequest{Base64Image: dataURL, ContainerName: container}).
		SetResult(&result).
		Post("/api/azure/blob/upload")
	if err != nil {
		return "", fmt.Errorf("upload image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.URL == "" {
		return "", fmt.Errorf("%w: empty blob url", ErrUnexpectedResponse)
	}

	h.logger.Debug().Str("container", container).Str("url", result.URL).Msg("image uploaded")
	return result.URL, nil
}

// DeleteImage implements [BlobStorage]. It sends the blob URL to
// DELETE /api/azure/blob/delete.
func (h *httpServerAdapter) DeleteImage(ctx context.Context, url string) error {
	resp, err := h.authedRequest(ctx).
		SetBody(models.BlobDeleteRequest{BlobURL: url}).
		Delete("/api/azure/blob/delete")
	if err != nil {
		return fmt.Errorf("delete image request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateDocuments implements [DocumentGateway] via POST /api/car-docs/create.
func (h *httpServerAdapter) CreateDocuments(ctx context.Context, userID string, documents models.DocumentCollection) (models.DocumentRecord, error) {
	var result models.DocumentsResponse

	resp, err := h.authedRequest(ctx).
		SetBody(models.DocumentRecord{UserID: userID, Documents: documents}).
		SetResult(&result).
		Post("/api/car-docs/create")
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("create documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentRecord{}, err
	}

	return recordFrom(result)
}

// FetchDocuments implements [DocumentGateway] via
// GET /api/car-docs/get-user/{userId}.
func (h *httpServerAdapter) FetchDocuments(ctx context.Context, userID string) (models.DocumentRecord, error) {
	var result models.DocumentsResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("userId", userID).
		SetResult(&result).
		Get("/api/car-docs/get-user/{userId}")
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("fetch documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentRecord{}, err
	}

	return recordFrom(result)
}

// UpdateDocuments implements [DocumentGateway] via
// PATCH /api/car-docs/update/{userId}. The stored collection is replaced.
func (h *httpServerAdapter) UpdateDocuments(ctx context.Context, userID string, documents models.DocumentCollection) (models.SubmitResult, error) {
	var result models.DocumentsResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("userId", userID).
		SetBody(documents).
		SetResult(&result).
		Patch("/api/car-docs/update/{userId}")
	if err != nil {
		return models.SubmitResult{}, fmt.Errorf("update documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubmitResult{}, err
	}

	record, err := recordFrom(result)
	if err != nil {
		return models.SubmitResult{}, err
	}

	submitResult := models.SubmitResult{
		Success: result.Success,
		Message: result.Message,
		Record:  record,
	}
	if result.Verification != nil {
		submitResult.Verification = *result.Verification
	}
	return submitResult, nil
}

// DeleteDocuments implements [DocumentGateway] via
// DELETE /api/car-docs/delete/{id}.
func (h *httpServerAdapter) DeleteDocuments(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/car-docs/delete/{id}")
	if err != nil {
		return fmt.Errorf("delete documents request: %w", err)
	}

	return mapHTTPError(resp)
}

// Onboard implements [UserGateway] via POST /api/users/auth-boarding.
func (h *httpServerAdapter) Onboard(ctx context.Context, mobileNumber string) (models.AuthResponse, error) {
	return h.authCall(ctx, "onboard", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(models.OnboardRequest{MobileNumber: mobileNumber}).Post("/api/users/auth-boarding")
	})
}

// Verify implements [UserGateway] via PATCH /api/users/verify.
func (h *httpServerAdapter) Verify(ctx context.Context, mobileNumber, code string) (models.AuthResponse, error) {
	return h.authCall(ctx, "verify", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(models.VerifyRequest{MobileNumber: mobileNumber, VerifyCode: code}).Patch("/api/users/verify")
	})
}

// CompleteRegistration implements [UserGateway] via POST /api/users/auth.
func (h *httpServerAdapter) CompleteRegistration(ctx context.Context, req models.RegistrationRequest) (models.AuthResponse, error) {
	return h.authCall(ctx, "complete registration", func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).Post("/api/users/auth")
	})
}

// GetProfile implements [UserGateway] via GET /api/users/profile/{userId}.
func (h *httpServerAdapter) GetProfile(ctx context.Context, userID string) (models.User, error) {
	var result models.ProfileResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("userId", userID).
		SetResult(&result).
		Get("/api/users/profile/{userId}")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// UpdateProfile implements [UserGateway] via
// PATCH /api/users/profile/update/{userId}.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (models.User, error) {
	var result models.ProfileUpdateResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("userId", userID).
		SetBody(req).
		SetResult(&result).
		Patch("/api/users/profile/update/{userId}")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// authCall runs an onboarding or registration request and stores the token
// returned by the server.
func (h *httpServerAdapter) authCall(ctx context.Context, name string, send func(*resty.Request) (*resty.Response, error)) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := send(h.authedRequest(ctx).SetResult(&result))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if result.Token != "" {
		h.SetToken(result.Token)
	}
	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func recordFrom(result models.DocumentsResponse) (models.DocumentRecord, error) {
	if result.Documents == nil {
		return models.DocumentRecord{}, fmt.Errorf("%w: missing documents", ErrUnexpectedResponse)
	}
	return *result.Documents, nil
}
