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

type otpRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOTPRepository constructs a PostgreSQL-backed [OTPRepository].
func NewOTPRepository(db *DB, logger *logger.Logger) OTPRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{db: db, logger: logger}
}

// SaveOTP stores otp, replacing any code pending for the same number.
func (r *otpRepository) SaveOTP(ctx context.Context, otp models.OTP) error {
	query, args, err := psql.Insert(otp.TableName()).
		Columns("mobile_number", "code_hash", "expires_at").
		Values(otp.MobileNumber, otp.CodeHash, otp.ExpiresAt).
		Suffix("ON CONFLICT (mobile_number) DO UPDATE SET code_hash = EXCLUDED.code_hash, expires_at = EXCLUDED.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*otpRepository.SaveOTP").Msg("error saving otp")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// GetOTP returns the code pending for mobileNumber or [ErrOTPNotFound].
func (r *otpRepository) GetOTP(ctx context.Context, mobileNumber string) (models.OTP, error) {
	query, args, err := psql.Select("mobile_number", "code_hash", "expires_at").
		From(models.OTP{}.TableName()).
		Where(sq.Eq{"mobile_number": mobileNumber}).
		ToSql()
	if err != nil {
		return models.OTP{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var otp models.OTP
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&otp.MobileNumber, &otp.CodeHash, &otp.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OTP{}, ErrOTPNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*otpRepository.GetOTP").Msg("error selecting otp")
		return models.OTP{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return otp, nil
}

// DeleteOTP removes the code pending for mobileNumber. Deleting a missing
// code is not an error.
func (r *otpRepository) DeleteOTP(ctx context.Context, mobileNumber string) error {
	query, args, err := psql.Delete(models.OTP{}.TableName()).
		Where(sq.Eq{"mobile_number": mobileNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*otpRepository.DeleteOTP").Msg("error deleting otp")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
