// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header filetype recognises
var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func TestFileBlobStore_RoundTrip(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileBlobStore(root, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	blob := models.Blob{Container: "cardocument", Key: "a.png", Data: pngBytes}
	require.NoError(t, store.PutBlob(ctx, blob))

	_, err = os.Stat(filepath.Join(root, "cardocument", "a.png"))
	require.NoError(t, err)

	got, err := store.GetBlob(ctx, "cardocument", "a.png")
	require.NoError(t, err)
	assert.Equal(t, pngBytes, got.Data)
	assert.Equal(t, "image/png", got.ContentType)

	require.NoError(t, store.DeleteBlob(ctx, "cardocument", "a.png"))
	_, err = store.GetBlob(ctx, "cardocument", "a.png")
	assert.ErrorIs(t, err, ErrBlobNotFound)
	assert.ErrorIs(t, store.DeleteBlob(ctx, "cardocument", "a.png"), ErrBlobNotFound)
}

func TestFileBlobStore_UnknownContentType(t *testing.T) {
	store, err := NewFileBlobStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.PutBlob(ctx, models.Blob{Container: "c", Key: "k", Data: []byte("plain")}))
	got, err := store.GetBlob(ctx, "c", "k")
	require.NoError(t, err)
	assert.Equal(t, defaultContentType, got.ContentType)
}

func TestFileBlobStore_RejectsEscapingKeys(t *testing.T) {
	store, err := NewFileBlobStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	bad := []models.Blob{
		{Container: "", Key: "k"},
		{Container: "c", Key: ""},
		{Container: "..", Key: "k"},
		{Container: "c", Key: "../../etc/passwd"},
		{Container: "c/d", Key: "k"},
		{Container: "c", Key: `a\b`},
	}
	for _, b := range bad {
		assert.ErrorIs(t, store.PutBlob(ctx, b), ErrInvalidBlobKey, "%q/%q", b.Container, b.Key)
	}
}
