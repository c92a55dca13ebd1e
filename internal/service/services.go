// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	BlobService     BlobService
	AppInfoService  AppInfoService
}

// NewServices wires the server services. The exported DocumentService only
// lets users touch their own records.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	ids := utils.NewUUIDGenerator()
	documentSvc := NewDocumentService(storages.DocumentRepository, storages.UserRepository, ids, logger)

	appInfoSvc, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, storages.OTPRepository, documentSvc, NewLogCodeSender(logger), ids, cfg.App, logger),
		DocumentService: NewDocumentAccessService().Wrap(documentSvc),
		BlobService:     NewBlobService(storages.BlobStore, storages.BlobOwnerRepository, ids, cfg.Storage.Blob, logger),
		AppInfoService:  appInfoSvc,
	}, nil
}
