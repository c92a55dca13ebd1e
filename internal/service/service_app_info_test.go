// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Success(t *testing.T) {
	info := models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123")

	svc, err := NewAppInfoService(info, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())
	assert.Equal(t, "1.0.0", got.BuildVersion())
	assert.Equal(t, "2026-03-01", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
