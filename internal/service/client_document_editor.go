// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
)

// ChangeFunc is called after every mutation of a [DocumentEditor] with the
// new collection and its readiness.
type ChangeFunc func(c models.DocumentCollection, ready bool)

// DocumentEditor owns the document collection shown on one screen. All
// mutations are serialised; uploads run outside the lock and merge into
// whatever the collection is when they finish, so overlapping batches land
// in completion order.
//
// Network calls ignore the cancellation of the caller's context.
type DocumentEditor struct {
	upload     ClientUploadService
	removal    ClientRemovalService
	submission ClientSubmissionService
	auth       ClientAuthService
	sessions   ClientSessionService
	validator  *validators.CompletenessValidator
	logger     *logger.Logger

	mu         sync.Mutex
	collection models.DocumentCollection
	onChange   ChangeFunc
}

// NewDocumentEditor returns an editor holding an empty collection.
func NewDocumentEditor(s *ClientServices, logger *logger.Logger) *DocumentEditor {
	return &DocumentEditor{
		upload:     s.UploadService,
		removal:    s.RemovalService,
		submission: s.SubmissionService,
		auth:       s.AuthService,
		sessions:   s.SessionService,
		validator:  s.Validator,
		logger:     logger,
		collection: models.NewDocumentCollection(),
	}
}

// OnChange registers fn as the change listener, replacing any previous one.
func (e *DocumentEditor) OnChange(fn ChangeFunc) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// Snapshot returns a copy of the current collection.
func (e *DocumentEditor) Snapshot() models.DocumentCollection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.collection.Clone()
}

// Ready reports whether the current collection may be submitted.
func (e *DocumentEditor) Ready() bool {
	return e.validator.IsSubmitReady(e.Snapshot())
}

// Missing lists every completeness rule the current collection fails.
func (e *DocumentEditor) Missing() []validators.Reason {
	return e.validator.DescribeMissing(e.Snapshot())
}

// Load replaces the collection with the one stored for the signed-in user.
// A user without stored documents starts with an empty collection.
func (e *DocumentEditor) Load(ctx context.Context) error {
	record, err := e.submission.Fetch(context.WithoutCancel(ctx), e.sessions.Current().User.ID)
	switch {
	case errors.Is(err, store.ErrDocumentsNotFound):
		record.Documents = models.NewDocumentCollection()
	case err != nil:
		return fmt.Errorf("load documents: %w", err)
	}

	e.mutate(func(models.DocumentCollection) models.DocumentCollection {
		return record.Documents
	})
	return nil
}

// AddImages uploads images for target and merges the successful ones.
// Preconditions are checked against the collection at call time.
func (e *DocumentEditor) AddImages(ctx context.Context, target models.Target, images []models.Image) (models.UploadReport, error) {
	report, err := e.upload.Upload(context.WithoutCancel(ctx), e.Snapshot(), target, images)
	if err != nil {
		return report, err
	}

	var applyErr error
	e.mutate(func(c models.DocumentCollection) models.DocumentCollection {
		merged, err := e.upload.Apply(c, report)
		if err != nil {
			applyErr = err
			return c
		}
		return merged
	})
	return report, applyErr
}

// RemoveDocument removes one document; see [ClientRemovalService].
func (e *DocumentEditor) RemoveDocument(ctx context.Context, target models.Target, item int) {
	e.mutate(func(c models.DocumentCollection) models.DocumentCollection {
		return e.removal.RemoveDocument(ctx, c, target, item)
	})
}

// RemoveVehicle removes the vehicle at index together with its documents.
func (e *DocumentEditor) RemoveVehicle(ctx context.Context, vehicle int) {
	e.mutate(func(c models.DocumentCollection) models.DocumentCollection {
		return e.removal.RemoveVehicle(ctx, c, vehicle)
	})
}

// AddVehicle appends an empty vehicle.
func (e *DocumentEditor) AddVehicle() {
	e.mutate(e.removal.AddVehicle)
}

// Submit sends the current collection of the signed-in user.
func (e *DocumentEditor) Submit(ctx context.Context) (models.SubmitResult, error) {
	return e.submission.Submit(context.WithoutCancel(ctx), e.sessions.Current().User.ID, e.Snapshot())
}

// CompleteRegistration registers the signed-in user with form and the
// current collection, which must be complete.
func (e *DocumentEditor) CompleteRegistration(ctx context.Context, form models.ProfileForm) (models.Session, error) {
	snapshot := e.Snapshot()
	if reasons := e.validator.DescribeMissing(snapshot); len(reasons) > 0 {
		return models.Session{}, &NotReadyError{Reasons: reasons}
	}
	return e.auth.CompleteRegistration(context.WithoutCancel(ctx), form, snapshot)
}

func (e *DocumentEditor) mutate(fn func(models.DocumentCollection) models.DocumentCollection) {
	e.mu.Lock()
	e.collection = fn(e.collection)
	snapshot := e.collection.Clone()
	listener := e.onChange
	e.mu.Unlock()

	if listener != nil {
		listener(snapshot, e.validator.IsSubmitReady(snapshot))
	}
}
