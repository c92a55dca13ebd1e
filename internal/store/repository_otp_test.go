// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOTP_Upserts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOTPRepository(db, logger.Nop())

	otp := models.OTP{MobileNumber: "+911", CodeHash: "hash", ExpiresAt: time.Now().Add(time.Minute)}

	mock.ExpectExec(`INSERT INTO otp_codes .* ON CONFLICT \(mobile_number\) DO UPDATE`).
		WithArgs(otp.MobileNumber, otp.CodeHash, otp.ExpiresAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveOTP(context.Background(), otp))
}

func TestSaveOTP_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOTPRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO otp_codes").WillReturnError(errors.New("boom"))

	err := repo.SaveOTP(context.Background(), models.OTP{MobileNumber: "+911"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetOTP(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOTPRepository(db, logger.Nop())

	expires := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT mobile_number, code_hash, expires_at FROM otp_codes WHERE mobile_number = \$1`).
		WithArgs("+911").
		WillReturnRows(sqlmock.NewRows([]string{"mobile_number", "code_hash", "expires_at"}).AddRow("+911", "hash", expires))

	otp, err := repo.GetOTP(context.Background(), "+911")
	require.NoError(t, err)
	assert.Equal(t, models.OTP{MobileNumber: "+911", CodeHash: "hash", ExpiresAt: expires}, otp)
}

func TestGetOTP_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOTPRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM otp_codes").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOTP(context.Background(), "+911")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestDeleteOTP(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOTPRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM otp_codes WHERE mobile_number = \$1`).
		WithArgs("+911").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteOTP(context.Background(), "+911"))
}
