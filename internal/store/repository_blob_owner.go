// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	sq "github.com/Masterminds/squirrel"
)

type blobOwnerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlobOwnerRepository constructs a PostgreSQL-backed [BlobOwnerRepository].
func NewBlobOwnerRepository(db *DB, logger *logger.Logger) BlobOwnerRepository {
	logger.Debug().Msg("creating blob owner repository")
	return &blobOwnerRepository{db: db, logger: logger}
}

func (r *blobOwnerRepository) SaveBlobOwner(ctx context.Context, owner models.BlobOwner) error {
	query, args, err := psql.Insert(owner.TableName()).
		Columns("container", "blob_key", "user_id", "created_at").
		Values(owner.Container, owner.Key, owner.UserID, owner.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blobOwnerRepository.SaveBlobOwner").Msg("error saving blob owner")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// GetBlobOwner returns the owner of a blob or [ErrBlobNotFound].
func (r *blobOwnerRepository) GetBlobOwner(ctx context.Context, container, key string) (models.BlobOwner, error) {
	query, args, err := psql.Select("container", "blob_key", "user_id", "created_at").
		From(models.BlobOwner{}.TableName()).
		Where(sq.Eq{"container": container, "blob_key": key}).
		ToSql()
	if err != nil {
		return models.BlobOwner{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owner models.BlobOwner
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&owner.Container, &owner.Key, &owner.UserID, &owner.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BlobOwner{}, ErrBlobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blobOwnerRepository.GetBlobOwner").Msg("error selecting blob owner")
		return models.BlobOwner{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return owner, nil
}

// DeleteBlobOwner forgets the owner of a blob. Deleting a missing row is not
// an error.
func (r *blobOwnerRepository) DeleteBlobOwner(ctx context.Context, container, key string) error {
	query, args, err := psql.Delete(models.BlobOwner{}.TableName()).
		Where(sq.Eq{"container": container, "blob_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blobOwnerRepository.DeleteBlobOwner").Msg("error deleting blob owner")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
