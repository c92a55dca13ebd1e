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
)

// the table holds a single row
const sessionRowID = 1

// sessionRepository is the SQLite-backed [SessionRepository] of the client.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] on the client
// database.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger}
}

// SaveSession replaces the stored session.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	query, args, err := sq.Replace(session.TableName()).
		Columns("id", "user_data", "token", "updated_at").
		Values(sessionRowID, string(user), session.Token, session.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// LoadSession implements [SessionRepository].
func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	query, args, err := sq.Select("user_data", "token", "updated_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session models.Session
		user    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user, &session.Token, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(user), &session.User); err != nil {
		return models.Session{}, fmt.Errorf("decode session user: %w", err)
	}
	return session, nil
}

// ClearSession removes the stored session, if any.
func (r *sessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := sq.Delete(models.Session{}.TableName()).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
