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
	"github.com/jackc/pgerrcode"
)

var userColumns = []string{
	"id", "mobile_number", "full_name", "email", "role", "password_hash",
	"is_verified", "is_document_verified", "verification_status", "created_at",
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrMobileNumberAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(user.TableName()).
		Columns("id", "mobile_number", "full_name", "email", "role", "password_hash", "is_verified", "is_document_verified", "verification_status").
		Values(user.ID, user.MobileNumber, user.FullName, user.Email, user.Role, user.PasswordHash, user.IsVerified, user.IsDocumentVerified, string(user.VerificationStatus)).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrMobileNumberAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetUserByID returns the user with id or [ErrNoUserWasFound].
func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

// GetUserByMobile returns the user onboarded with mobileNumber or
// [ErrNoUserWasFound].
func (r *userRepository) GetUserByMobile(ctx context.Context, mobileNumber string) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"mobile_number": mobileNumber})
}

func (r *userRepository) getUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(userColumns...).From(models.User{}.TableName()).Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.getUser").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser overwrites the profile and verification columns of user.ID.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(user.TableName()).
		SetMap(map[string]any{
			"full_name":            user.FullName,
			"email":                user.Email,
			"role":                 user.Role,
			"password_hash":        user.PasswordHash,
			"is_verified":          user.IsVerified,
			"is_document_verified": user.IsDocumentVerified,
			"verification_status":  string(user.VerificationStatus),
		}).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// SetVerificationStatus implements [UserRepository].
func (r *userRepository) SetVerificationStatus(ctx context.Context, userID string, status models.VerificationStatus) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(models.User{}.TableName()).
		Set("verification_status", string(status)).
		Set("is_document_verified", status == models.VerificationApproved).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetVerificationStatus").Msg("error updating verification status")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrNoUserWasFound)
}

func scanUser(row sq.RowScanner) (models.User, error) {
	var (
		user   models.User
		status string
	)
	err := row.Scan(&user.ID, &user.MobileNumber, &user.FullName, &user.Email, &user.Role, &user.PasswordHash,
		&user.IsVerified, &user.IsDocumentVerified, &status, &user.CreatedAt)
	user.VerificationStatus = models.VerificationStatus(status)
	return user, err
}
