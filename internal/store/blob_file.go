// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/h2non/filetype"
)

const defaultContentType = "application/octet-stream"

// fileBlobStore keeps blobs as files under <root>/<container>/<key>.
type fileBlobStore struct {
	root   string
	logger *logger.Logger
}

// NewFileBlobStore creates root if needed and returns a filesystem
// [BlobStore].
func NewFileBlobStore(root string, logger *logger.Logger) (BlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	logger.Debug().Str("root", root).Msg("creating file blob store")
	return &fileBlobStore{root: root, logger: logger}, nil
}

// PutBlob implements [BlobStore]. An existing blob with the same key is
// overwritten.
func (s *fileBlobStore) PutBlob(ctx context.Context, blob models.Blob) error {
	path, err := s.path(blob.Container, blob.Key)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create container dir: %w", err)
	}
	if err = os.WriteFile(path, blob.Data, 0o644); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileBlobStore.PutBlob").Msg("error writing blob")
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

// GetBlob implements [BlobStore]. The content type is sniffed from the data.
func (s *fileBlobStore) GetBlob(_ context.Context, container, key string) (models.Blob, error) {
	path, err := s.path(container, key)
	if err != nil {
		return models.Blob{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Blob{}, ErrBlobNotFound
	}
	if err != nil {
		return models.Blob{}, fmt.Errorf("read blob: %w", err)
	}

	return models.Blob{
		Container:   container,
		Key:         key,
		ContentType: sniffContentType(data),
		Data:        data,
	}, nil
}

// DeleteBlob implements [BlobStore].
func (s *fileBlobStore) DeleteBlob(ctx context.Context, container, key string) error {
	path, err := s.path(container, key)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrBlobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileBlobStore.DeleteBlob").Msg("error removing blob")
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

func (s *fileBlobStore) path(container, key string) (string, error) {
	if err := checkBlobKey(container, key); err != nil {
		return "", err
	}
	return filepath.Join(s.root, container, key), nil
}

// checkBlobKey rejects empty names and names that are not a single local
// path element.
func checkBlobKey(container, key string) error {
	for _, part := range []string{container, key} {
		if part == "" || strings.ContainsAny(part, `/\`) || !filepath.IsLocal(part) {
			return fmt.Errorf("%w: %q/%q", ErrInvalidBlobKey, container, key)
		}
	}
	return nil
}

func sniffContentType(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return defaultContentType
	}
	return kind.MIME.Value
}
