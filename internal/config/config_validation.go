// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ride-docs/models"
)

// validate checks the settings shared by the server and the client.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParsePartialFailurePolicy(cfg.Documents.PartialFailurePolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocumentsConfigs, err)
	}

	switch cfg.Storage.Blob.Backend {
	case BlobBackendFile, BlobBackendS3:
	default:
		return fmt.Errorf("%w: unknown blob backend %q", ErrInvalidStorageConfigs, cfg.Storage.Blob.Backend)
	}

	return nil
}

// ValidateServer checks the settings the API server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Blob.Backend == BlobBackendS3 && cfg.Storage.S3.Bucket == "" {
		return fmt.Errorf("%w: empty S3 bucket", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.Blob.PublicURL == "" {
		return fmt.Errorf("%w: empty blob public URL", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.OTPLength < 4 || cfg.App.OTPTTL <= 0 {
		return fmt.Errorf("%w: invalid OTP settings", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Documents.ContainerName == "" || cfg.Documents.UploadConcurrency < 1 {
		return ErrInvalidDocumentsConfigs
	}

	if _, err := models.ParsePartialFailurePolicy(string(cfg.Documents.PartialFailurePolicy)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocumentsConfigs, err)
	}

	if cfg.Workers.DeleteWorkers < 1 || cfg.Workers.DeleteQueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
