// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/models"
)

type submissionService struct {
	gateway   adapter.DocumentGateway
	validator *validators.CompletenessValidator
	logger    *logger.Logger
}

// NewSubmissionService creates a [ClientSubmissionService] that checks
// collections with validator before sending them through gateway.
func NewSubmissionService(gateway adapter.DocumentGateway, validator *validators.CompletenessValidator, logger *logger.Logger) ClientSubmissionService {
	return &submissionService{gateway: gateway, validator: validator, logger: logger}
}

// Fetch implements [ClientSubmissionService].
func (s *submissionService) Fetch(ctx context.Context, userID string) (models.DocumentRecord, error) {
	if userID == "" {
		return models.DocumentRecord{}, ErrNotSignedIn
	}

	record, err := s.gateway.FetchDocuments(ctx, userID)
	if err != nil {
		return models.DocumentRecord{}, mapAdapterError(err)
	}
	return record, nil
}

// Submit implements [ClientSubmissionService].
func (s *submissionService) Submit(ctx context.Context, userID string, c models.DocumentCollection) (models.SubmitResult, error) {
	if reasons := s.validator.DescribeMissing(c); len(reasons) > 0 {
		return models.SubmitResult{}, &NotReadyError{Reasons: reasons}
	}
	if userID == "" {
		return models.SubmitResult{}, ErrNotSignedIn
	}

	result, err := s.gateway.UpdateDocuments(ctx, userID, c)
	if err == nil {
		s.logger.Info().Str("user_id", userID).Str("status", string(result.Verification.Status)).Msg("documents submitted")
		return result, nil
	}
	if !errors.Is(err, adapter.ErrNotFound) {
		return models.SubmitResult{}, fmt.Errorf("submit documents: %w", mapAdapterError(err))
	}

	// first submission of this user
	record, err := s.gateway.CreateDocuments(ctx, userID, c)
	if err != nil {
		return models.SubmitResult{}, fmt.Errorf("create documents: %w", mapAdapterError(err))
	}

	s.logger.Info().Str("user_id", userID).Msg("documents created")
	return models.SubmitResult{
		Success: true,
		Record:  record,
		Verification: models.VerificationState{
			Status: models.VerificationPending,
		},
	}, nil
}
