// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-ride-docs API server.
//
// The client core depends on three narrow interfaces: [BlobStorage] for image
// blobs, [DocumentGateway] for document persistence and [UserGateway] for
// onboarding and profile calls. [ServerAdapter] bundles them together with
// bearer token management and is implemented over HTTP/REST with resty
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// BlobStorage stores and deletes document images.
type BlobStorage interface {
	// UploadImage stores a base64 "data:" URL in container and returns the
	// public URL of the stored blob.
	UploadImage(ctx context.Context, dataURL, container string) (string, error)

	// DeleteImage removes the blob addressed by its public URL.
	DeleteImage(ctx context.Context, url string) error
}

// DocumentGateway persists document collections on the server.
type DocumentGateway interface {
	// CreateDocuments stores the first document collection of userID.
	CreateDocuments(ctx context.Context, userID string, documents models.DocumentCollection) (models.DocumentRecord, error)

	// FetchDocuments returns the stored collection of userID. Returns
	// [ErrNotFound] (wrapped) when the user has none.
	FetchDocuments(ctx context.Context, userID string) (models.DocumentRecord, error)

	// UpdateDocuments replaces the stored collection of userID and returns
	// the resulting verification state.
	UpdateDocuments(ctx context.Context, userID string, documents models.DocumentCollection) (models.SubmitResult, error)

	// DeleteDocuments removes the stored collection with the given id.
	DeleteDocuments(ctx context.Context, id string) error
}

// UserGateway performs onboarding, registration and profile calls.
type UserGateway interface {
	// Onboard starts phone-number onboarding; the server sends an OTP.
	Onboard(ctx context.Context, mobileNumber string) (models.AuthResponse, error)

	// Verify confirms the OTP sent to mobileNumber.
	Verify(ctx context.Context, mobileNumber, code string) (models.AuthResponse, error)

	// CompleteRegistration submits the profile form and documents of a
	// driver and returns the registered user with a fresh token.
	CompleteRegistration(ctx context.Context, req models.RegistrationRequest) (models.AuthResponse, error)

	// GetProfile returns the profile of userID.
	GetProfile(ctx context.Context, userID string) (models.User, error)

	// UpdateProfile changes the name or email of userID.
	UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (models.User, error)
}

// ServerAdapter is the full client view of the API server.
type ServerAdapter interface {
	BlobStorage
	DocumentGateway
	UserGateway

	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string
}
