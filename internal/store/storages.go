// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
)

// Storages groups the server repositories and the blob store.
type Storages struct {
	UserRepository     UserRepository
	OTPRepository      OTPRepository
	DocumentRepository DocumentRepository
	BlobStore          BlobStore

	BlobOwnerRepository BlobOwnerRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and opens the blob
// backend selected by cfg.Blob.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewBlobStore(ctx, cfg, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		OTPRepository:      NewOTPRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		BlobStore:          blobs,

		BlobOwnerRepository: NewBlobOwnerRepository(db, logger),
		db:                  db,
	}, nil
}

// NewBlobStore opens the configured blob backend.
func NewBlobStore(ctx context.Context, cfg config.Storage, logger *logger.Logger) (BlobStore, error) {
	switch cfg.Blob.Backend {
	case config.BlobBackendS3:
		return NewS3BlobStore(ctx, cfg.S3, logger)
	case config.BlobBackendFile, "":
		return NewFileBlobStore(cfg.Blob.Dir, logger)
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.Blob.Backend)
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
