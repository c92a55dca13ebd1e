// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Onboard finds or creates the user of mobileNumber and sends a new
	// verification code.
	Onboard(ctx context.Context, mobileNumber string) (models.User, error)
	Login(ctx context.Context, mobileNumber, password string) (models.User, error)
	Verify(ctx context.Context, mobileNumber, code string) (models.User, error)
	CompleteRegistration(ctx context.Context, req models.RegistrationRequest) (models.User, error)

	GetProfile(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type DocumentService interface {
	Create(ctx context.Context, userID string, documents models.DocumentCollection) (models.DocumentRecord, error)
	GetByUser(ctx context.Context, userID string) (models.DocumentRecord, error)
	GetByID(ctx context.Context, id string) (models.DocumentRecord, error)

	// Update replaces the documents of userID and sends them back to review.
	Update(ctx context.Context, userID string, documents models.DocumentCollection) (models.SubmitResult, error)

	// Save updates the documents of userID or creates them when none exist.
	Save(ctx context.Context, userID string, documents models.DocumentCollection) (models.DocumentRecord, error)
	Delete(ctx context.Context, id string) error
}

type BlobService interface {
	// Upload stores a base64 image and returns its public URL.
	Upload(ctx context.Context, req models.BlobUploadRequest) (string, error)
	// Delete removes the blob addressed by a URL returned from Upload.
	Delete(ctx context.Context, url string) error
	Open(ctx context.Context, container, key string) (models.Blob, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// CodeSender delivers verification codes to a mobile number.
type CodeSender interface {
	Send(ctx context.Context, mobileNumber, code string) error
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// access checks.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService // returns a decorated DocumentService applying additional behavior
}
