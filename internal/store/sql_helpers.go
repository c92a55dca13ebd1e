// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strings"
)

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// expectAffected returns notFound when res touched no row.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
