// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

const documentsTable = "car_documents"

var documentColumns = []string{"id", "user_id", "documents", "created_at", "updated_at"}

// documentRepository stores each user's collection as one JSONB column in
// the API wire shape.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a PostgreSQL-backed [DocumentRepository].
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{db: db, logger: logger}
}

// CreateDocuments inserts record. A second record for the same user fails
// with [ErrDocumentsAlreadyExist].
func (r *documentRepository) CreateDocuments(ctx context.Context, record models.DocumentRecord) (models.DocumentRecord, error) {
	payload, err := json.Marshal(record.Documents)
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("%w: %w", ErrEncodingDocuments, err)
	}

	query, args, err := psql.Insert(documentsTable).
		Columns("id", "user_id", "documents").
		Values(record.ID, record.UserID, payload).
		Suffix("RETURNING " + joinColumns(documentColumns)).
		ToSql()
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanDocuments(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentRepository.CreateDocuments").Msg("error inserting documents")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.DocumentRecord{}, ErrDocumentsAlreadyExist
		}
		return models.DocumentRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return created, nil
}

// GetDocumentsByUserID implements [DocumentRepository].
func (r *documentRepository) GetDocumentsByUserID(ctx context.Context, userID string) (models.DocumentRecord, error) {
	return r.getDocuments(ctx, sq.Eq{"user_id": userID})
}

// GetDocumentsByID implements [DocumentRepository].
func (r *documentRepository) GetDocumentsByID(ctx context.Context, id string) (models.DocumentRecord, error) {
	return r.getDocuments(ctx, sq.Eq{"id": id})
}

func (r *documentRepository) getDocuments(ctx context.Context, where sq.Eq) (models.DocumentRecord, error) {
	query, args, err := psql.Select(documentColumns...).From(documentsTable).Where(where).ToSql()
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	record, err := scanDocuments(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DocumentRecord{}, ErrDocumentsNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentRepository.getDocuments").Msg("error selecting documents")
		return models.DocumentRecord{}, err
	}
	return record, nil
}

// UpdateDocuments replaces the whole collection of userID.
func (r *documentRepository) UpdateDocuments(ctx context.Context, userID string, documents models.DocumentCollection) (models.DocumentRecord, error) {
	payload, err := json.Marshal(documents)
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("%w: %w", ErrEncodingDocuments, err)
	}

	query, args, err := psql.Update(documentsTable).
		Set("documents", payload).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + joinColumns(documentColumns)).
		ToSql()
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanDocuments(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DocumentRecord{}, ErrDocumentsNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentRepository.UpdateDocuments").Msg("error updating documents")
		return models.DocumentRecord{}, err
	}
	return updated, nil
}

// DeleteDocuments removes the record with id or returns
// [ErrDocumentsNotFound].
func (r *documentRepository) DeleteDocuments(ctx context.Context, id string) error {
	query, args, err := psql.Delete(documentsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*documentRepository.DeleteDocuments").Msg("error deleting documents")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return expectAffected(res, ErrDocumentsNotFound)
}

func scanDocuments(row sq.RowScanner) (models.DocumentRecord, error) {
	var (
		record  models.DocumentRecord
		payload []byte
	)
	if err := row.Scan(&record.ID, &record.UserID, &payload, &record.CreatedAt, &record.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DocumentRecord{}, err
		}
		return models.DocumentRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(payload, &record.Documents); err != nil {
		return models.DocumentRecord{}, fmt.Errorf("%w: %w", ErrEncodingDocuments, err)
	}
	return record, nil
}
