// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/validators"
	"github.com/MKhiriev/go-ride-docs/internal/workers"
)

// ClientServices bundles the services of the client application.
type ClientServices struct {
	SessionService    ClientSessionService
	AuthService       ClientAuthService
	UploadService     ClientUploadService
	RemovalService    ClientRemovalService
	SubmissionService ClientSubmissionService

	Validator    *validators.CompletenessValidator
	DeleteWorker *workers.BlobDeleteWorker
}

// NewClientServices wires the client services. The delete worker is created
// idle; the caller starts and stops it.
func NewClientServices(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	deleteWorker := workers.NewBlobDeleteWorker(serverAdapter, cfg.Workers, logger)
	validator := validators.NewCompletenessValidator(validators.CompletenessPolicy{
		RequireVehicle: cfg.Documents.RequireVehicle,
	})

	sessionSvc := NewSessionService(sessions, serverAdapter, logger)

	return &ClientServices{
		SessionService:    sessionSvc,
		AuthService:       NewClientAuthService(serverAdapter, sessionSvc, logger),
		UploadService:     NewUploadService(serverAdapter, deleteWorker, cfg.Documents, logger),
		RemovalService:    NewRemovalService(deleteWorker, logger),
		SubmissionService: NewSubmissionService(serverAdapter, validator, logger),
		Validator:         validator,
		DeleteWorker:      deleteWorker,
	}
}

// NewEditor returns a [DocumentEditor] backed by these services.
func (s *ClientServices) NewEditor(logger *logger.Logger) *DocumentEditor {
	return NewDocumentEditor(s, logger)
}
