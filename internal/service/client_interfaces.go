// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/models"
)

// BlobDeleteQueue schedules fire-and-forget blob deletions. It is
// implemented by workers.BlobDeleteWorker.
type BlobDeleteQueue interface {
	Enqueue(target models.Target, urls ...string)
}

// ClientUploadService uploads selected images and merges their URLs into a
// document collection.
type ClientUploadService interface {
	// AddImages uploads images concurrently and merges the successful URLs
	// into the place addressed by target. Results are reported in selection
	// order. On a precondition error c is returned unchanged.
	AddImages(ctx context.Context, c models.DocumentCollection, target models.Target, images []models.Image) (models.DocumentCollection, models.UploadReport, error)

	// Upload checks the preconditions against c and uploads images without
	// touching any collection. Under the strict policy a partial failure
	// returns [ErrUploadIncomplete] and schedules the uploaded blobs for
	// deletion.
	Upload(ctx context.Context, c models.DocumentCollection, target models.Target, images []models.Image) (models.UploadReport, error)

	// Apply merges the URLs of report into c. When the target no longer
	// exists the uploaded blobs are scheduled for deletion.
	Apply(c models.DocumentCollection, report models.UploadReport) (models.DocumentCollection, error)
}

// ClientRemovalService removes documents and vehicles. Remote blobs are
// deleted in the background; the returned collection never waits for them.
type ClientRemovalService interface {
	RemoveDocument(ctx context.Context, c models.DocumentCollection, target models.Target, item int) models.DocumentCollection
	RemoveVehicle(ctx context.Context, c models.DocumentCollection, vehicle int) models.DocumentCollection
	AddVehicle(c models.DocumentCollection) models.DocumentCollection
}

// ClientSubmissionService loads and submits the document collection of the
// signed-in user.
type ClientSubmissionService interface {
	// Fetch returns the stored record of userID. A user without documents
	// gets store.ErrDocumentsNotFound.
	Fetch(ctx context.Context, userID string) (models.DocumentRecord, error)

	// Submit sends a complete collection, replacing the stored one or
	// creating it on first submission. An incomplete collection fails with a
	// [*NotReadyError] before any network call.
	Submit(ctx context.Context, userID string, c models.DocumentCollection) (models.SubmitResult, error)
}

// ClientSessionService owns the authenticated session of the client.
type ClientSessionService interface {
	// Restore loads the saved session at startup and hands its token to the
	// adapter. Returns store.ErrSessionNotFound when nobody is signed in.
	Restore(ctx context.Context) (models.Session, error)

	// Begin stores a new session and activates its token.
	Begin(ctx context.Context, user models.User, token string) (models.Session, error)

	// End signs out: clears the saved session and the adapter token.
	End(ctx context.Context) error

	// Current returns the active session; zero when signed out.
	Current() models.Session
}

// ClientAuthService performs phone onboarding and registration against the
// server and keeps the session up to date.
type ClientAuthService interface {
	// Onboard requests a verification code for mobileNumber.
	Onboard(ctx context.Context, mobileNumber string) (models.User, error)

	// Verify confirms the code and begins the session.
	Verify(ctx context.Context, mobileNumber, code string) (models.Session, error)

	// CompleteRegistration submits the profile form together with the
	// documents of the signed-in user.
	CompleteRegistration(ctx context.Context, form models.ProfileForm, documents models.DocumentCollection) (models.Session, error)

	// Profile fetches the current profile of the signed-in user.
	Profile(ctx context.Context) (models.User, error)

	// UpdateProfile changes the name or email of the signed-in user.
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.User, error)
}
