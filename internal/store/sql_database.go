// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB together with the migration dialect it was opened with.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies every pending migration of the database dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
