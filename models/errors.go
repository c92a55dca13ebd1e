// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrEmptyImage          = errors.New("image is empty")
	ErrNotAnImage          = errors.New("file is not an image")
	ErrInvalidDataURL      = errors.New("invalid data URL")
)
