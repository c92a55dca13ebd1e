// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidUserID   = errors.New("invalid user ID")
)
