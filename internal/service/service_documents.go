// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ride-docs/internal/documents"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
)

type documentService struct {
	documentRepository store.DocumentRepository
	userRepository     store.UserRepository
	ids                utils.IDGenerator

	logger *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, userRepository store.UserRepository, ids utils.IDGenerator, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		userRepository:     userRepository,
		ids:                ids,
		logger:             logger,
	}
}

func (d *documentService) Create(ctx context.Context, userID string, docs models.DocumentCollection) (models.DocumentRecord, error) {
	log := logger.FromContext(ctx)

	if err := documents.CheckLimits(docs); err != nil {
		return models.DocumentRecord{}, err
	}

	record, err := d.documentRepository.CreateDocuments(ctx, models.DocumentRecord{
		ID:        d.ids.Generate(),
		UserID:    userID,
		Documents: docs,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("documents creation ended with error")
		return models.DocumentRecord{}, fmt.Errorf("documents creation ended with error: %w", err)
	}

	if err = d.resetVerification(ctx, userID); err != nil {
		return models.DocumentRecord{}, err
	}
	return record, nil
}

func (d *documentService) GetByUser(ctx context.Context, userID string) (models.DocumentRecord, error) {
	return d.documentRepository.GetDocumentsByUserID(ctx, userID)
}

func (d *documentService) GetByID(ctx context.Context, id string) (models.DocumentRecord, error) {
	return d.documentRepository.GetDocumentsByID(ctx, id)
}

func (d *documentService) Update(ctx context.Context, userID string, docs models.DocumentCollection) (models.SubmitResult, error) {
	log := logger.FromContext(ctx)

	if err := documents.CheckLimits(docs); err != nil {
		return models.SubmitResult{}, err
	}

	record, err := d.documentRepository.UpdateDocuments(ctx, userID, docs)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("documents update ended with error")
		return models.SubmitResult{}, fmt.Errorf("documents update ended with error: %w", err)
	}

	if err = d.resetVerification(ctx, userID); err != nil {
		return models.SubmitResult{}, err
	}

	return models.SubmitResult{
		Success: true,
		Record:  record,
		Verification: models.VerificationState{
			DocumentVerified: false,
			Status:           models.VerificationPending,
		},
	}, nil
}

func (d *documentService) Save(ctx context.Context, userID string, docs models.DocumentCollection) (models.DocumentRecord, error) {
	result, err := d.Update(ctx, userID, docs)
	if err == nil {
		return result.Record, nil
	}
	if !errors.Is(err, store.ErrDocumentsNotFound) {
		return models.DocumentRecord{}, err
	}
	return d.Create(ctx, userID, docs)
}

func (d *documentService) Delete(ctx context.Context, id string) error {
	if err := d.documentRepository.DeleteDocuments(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("documents deletion ended with error")
		return fmt.Errorf("documents deletion ended with error: %w", err)
	}
	return nil
}

// resetVerification sends the documents of userID back to review.
func (d *documentService) resetVerification(ctx context.Context, userID string) error {
	if err := d.userRepository.SetVerificationStatus(ctx, userID, models.VerificationPending); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("verification reset ended with error")
		return fmt.Errorf("verification reset ended with error: %w", err)
	}
	return nil
}
