// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
)

// DocumentAccessService rejects calls for documents owned by anyone but the
// user stored in the request context.
type DocumentAccessService struct {
	inner DocumentService
}

func NewDocumentAccessService() DocumentServiceWrapper {
	return &DocumentAccessService{}
}

func (v *DocumentAccessService) Create(ctx context.Context, userID string, docs models.DocumentCollection) (models.DocumentRecord, error) {
	if err := checkOwner(ctx, userID); err != nil {
		return models.DocumentRecord{}, err
	}
	return v.inner.Create(ctx, userID, docs)
}

func (v *DocumentAccessService) GetByUser(ctx context.Context, userID string) (models.DocumentRecord, error) {
	if err := checkOwner(ctx, userID); err != nil {
		return models.DocumentRecord{}, err
	}
	return v.inner.GetByUser(ctx, userID)
}

func (v *DocumentAccessService) GetByID(ctx context.Context, id string) (models.DocumentRecord, error) {
	record, err := v.inner.GetByID(ctx, id)
	if err != nil {
		return models.DocumentRecord{}, err
	}
	if err = checkOwner(ctx, record.UserID); err != nil {
		return models.DocumentRecord{}, err
	}
	return record, nil
}

func (v *DocumentAccessService) Update(ctx context.Context, userID string, docs models.DocumentCollection) (models.SubmitResult, error) {
	if err := checkOwner(ctx, userID); err != nil {
		return models.SubmitResult{}, err
	}
	return v.inner.Update(ctx, userID, docs)
}

func (v *DocumentAccessService) Save(ctx context.Context, userID string, docs models.DocumentCollection) (models.DocumentRecord, error) {
	if err := checkOwner(ctx, userID); err != nil {
		return models.DocumentRecord{}, err
	}
	return v.inner.Save(ctx, userID, docs)
}

func (v *DocumentAccessService) Delete(ctx context.Context, id string) error {
	if _, err := v.GetByID(ctx, id); err != nil {
		return err
	}
	return v.inner.Delete(ctx, id)
}

func (v *DocumentAccessService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}

func checkOwner(ctx context.Context, ownerID string) error {
	requester, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrTokenIsExpiredOrInvalid
	}
	if requester != ownerID {
		logger.FromContext(ctx).Warn().
			Str("requester_id", requester).
			Str("owner_id", ownerID).
			Msg("access to another user's documents")
		return ErrUnauthorizedAccessToDifferentUserData
	}
	return nil
}
