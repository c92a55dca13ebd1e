// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByMobile(ctx context.Context, mobileNumber string) (models.User, error)

	// UpdateUser overwrites the mutable profile and verification fields of
	// the user with user.ID.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// SetVerificationStatus moves the document review of userID to status
	// and clears the document verified flag unless status is approved.
	SetVerificationStatus(ctx context.Context, userID string, status models.VerificationStatus) error
}

// OTPRepository keeps at most one pending verification code per number.
type OTPRepository interface {
	SaveOTP(ctx context.Context, otp models.OTP) error
	GetOTP(ctx context.Context, mobileNumber string) (models.OTP, error)
	DeleteOTP(ctx context.Context, mobileNumber string) error
}

// DocumentRepository persists one document record per user.
type DocumentRepository interface {
	CreateDocuments(ctx context.Context, record models.DocumentRecord) (models.DocumentRecord, error)
	GetDocumentsByUserID(ctx context.Context, userID string) (models.DocumentRecord, error)
	GetDocumentsByID(ctx context.Context, id string) (models.DocumentRecord, error)
	UpdateDocuments(ctx context.Context, userID string, documents models.DocumentCollection) (models.DocumentRecord, error)
	DeleteDocuments(ctx context.Context, id string) error
}

// BlobStore keeps image blobs addressed by container and key.
type BlobStore interface {
	PutBlob(ctx context.Context, blob models.Blob) error
	GetBlob(ctx context.Context, container, key string) (models.Blob, error)
	DeleteBlob(ctx context.Context, container, key string) error
}

// BlobOwnerRepository remembers the uploader of every blob.
type BlobOwnerRepository interface {
	SaveBlobOwner(ctx context.Context, owner models.BlobOwner) error
	GetBlobOwner(ctx context.Context, container, key string) (models.BlobOwner, error)
	DeleteBlobOwner(ctx context.Context, container, key string) error
}

// SessionRepository stores the single signed-in session of the client.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession returns [ErrSessionNotFound] when nobody is signed in.
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
