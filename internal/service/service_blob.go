// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/h2non/filetype"
)

type blobService struct {
	blobStore store.BlobStore
	owners    store.BlobOwnerRepository
	ids       utils.IDGenerator
	publicURL string
	now       func() time.Time

	logger *logger.Logger
}

// NewBlobService returns a [BlobService] whose URLs have the form
// <cfg.PublicURL>/<container>/<key>. Every stored blob is owned by the user
// in the request context and only that user may delete it.
func NewBlobService(blobStore store.BlobStore, owners store.BlobOwnerRepository, ids utils.IDGenerator, cfg config.Blob, logger *logger.Logger) BlobService {
	return &blobService{
		blobStore: blobStore,
		owners:    owners,
		ids:       ids,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		now:       time.Now,
		logger:    logger,
	}
}

// Upload implements [BlobService]. The declared MIME type of the data URL is
// ignored; the content itself must be a recognised image.
func (b *blobService) Upload(ctx context.Context, req models.BlobUploadRequest) (string, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return "", ErrTokenIsExpiredOrInvalid
	}

	_, data, err := models.DecodeDataURL(req.Base64Image)
	if err != nil {
		log.Err(err).Str("container", req.ContainerName).Msg("invalid image payload")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		log.Warn().Str("container", req.ContainerName).Int("size", len(data)).Msg("rejected non-image upload")
		return "", models.ErrNotAnImage
	}

	blob := models.Blob{
		Container:   req.ContainerName,
		Key:         b.ids.Generate() + "." + kind.Extension,
		ContentType: kind.MIME.Value,
		Data:        data,
	}
	if err = b.blobStore.PutBlob(ctx, blob); err != nil {
		log.Err(err).Str("container", blob.Container).Str("key", blob.Key).Msg("blob upload ended with error")
		return "", fmt.Errorf("blob upload ended with error: %w", err)
	}

	err = b.owners.SaveBlobOwner(ctx, models.BlobOwner{
		Container: blob.Container,
		Key:       blob.Key,
		UserID:    userID,
		CreatedAt: b.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("container", blob.Container).Str("key", blob.Key).Msg("blob owner was not saved")
		if delErr := b.blobStore.DeleteBlob(ctx, blob.Container, blob.Key); delErr != nil {
			log.Err(delErr).Str("key", blob.Key).Msg("orphaned blob was not deleted")
		}
		return "", fmt.Errorf("blob upload ended with error: %w", err)
	}

	return b.publicURL + "/" + blob.Container + "/" + blob.Key, nil
}

// Delete implements [BlobService]. Blobs without a recorded owner are
// reported as missing.
func (b *blobService) Delete(ctx context.Context, url string) error {
	log := logger.FromContext(ctx)

	container, key, err := b.resolve(url)
	if err != nil {
		return err
	}

	owner, err := b.owners.GetBlobOwner(ctx, container, key)
	if err != nil {
		return err
	}
	if err = checkOwner(ctx, owner.UserID); err != nil {
		return err
	}

	err = b.blobStore.DeleteBlob(ctx, container, key)
	if err != nil && !errors.Is(err, store.ErrBlobNotFound) {
		log.Err(err).Str("url", url).Msg("blob deletion ended with error")
		return fmt.Errorf("blob deletion ended with error: %w", err)
	}

	if ownerErr := b.owners.DeleteBlobOwner(ctx, container, key); ownerErr != nil {
		log.Err(ownerErr).Str("url", url).Msg("blob owner was not deleted")
	}
	return err
}

// Open implements [BlobService].
func (b *blobService) Open(ctx context.Context, container, key string) (models.Blob, error) {
	return b.blobStore.GetBlob(ctx, container, key)
}

// resolve maps a public URL back to the container and key it was stored under.
func (b *blobService) resolve(url string) (container, key string, err error) {
	rest, ok := strings.CutPrefix(url, b.publicURL+"/")
	if !ok {
		return "", "", ErrInvalidBlobURL
	}

	container, key, ok = strings.Cut(rest, "/")
	if !ok || container == "" || key == "" || strings.Contains(key, "/") {
		return "", "", ErrInvalidBlobURL
	}
	return container, key, nil
}
