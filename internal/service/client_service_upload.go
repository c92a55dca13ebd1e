// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ride-docs/internal/adapter"
	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/documents"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/sourcegraph/conc/iter"
)

type uploadService struct {
	blobs   adapter.BlobStorage
	deletes BlobDeleteQueue

	container   string
	concurrency int
	policy      models.PartialFailurePolicy

	logger *logger.Logger
}

// NewUploadService creates a [ClientUploadService] that stores images in
// cfg.ContainerName with at most cfg.UploadConcurrency uploads in flight.
func NewUploadService(blobs adapter.BlobStorage, deletes BlobDeleteQueue, cfg config.ClientDocuments, logger *logger.Logger) ClientUploadService {
	concurrency := cfg.UploadConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	policy := cfg.PartialFailurePolicy
	if policy == "" {
		policy = models.PartialFailureSilent
	}

	return &uploadService{
		blobs:       blobs,
		deletes:     deletes,
		container:   cfg.ContainerName,
		concurrency: concurrency,
		policy:      policy,
		logger:      logger,
	}
}

type uploadOutcome struct {
	name string
	url  string
	err  error
}

// AddImages implements [ClientUploadService].
func (s *uploadService) AddImages(ctx context.Context, c models.DocumentCollection, target models.Target, images []models.Image) (models.DocumentCollection, models.UploadReport, error) {
	report, err := s.Upload(ctx, c, target, images)
	if err != nil {
		return c, report, err
	}

	merged, err := s.Apply(c, report)
	if err != nil {
		return c, report, err
	}
	return merged, report, nil
}

// Upload implements [ClientUploadService]. Every image is settled before it
// returns; there are no retries.
func (s *uploadService) Upload(ctx context.Context, c models.DocumentCollection, target models.Target, images []models.Image) (models.UploadReport, error) {
	report := models.UploadReport{Target: target}

	if err := documents.CheckTarget(c, target); err != nil {
		return report, err
	}
	if len(images) == 0 {
		return report, ErrNoImagesSelected
	}

	log := s.logger.WithTarget(target)

	mapper := iter.Mapper[models.Image, uploadOutcome]{MaxGoroutines: s.concurrency}
	outcomes := mapper.Map(images, func(img *models.Image) uploadOutcome {
		return s.uploadOne(ctx, *img)
	})

	// outcomes are indexed like images, whatever order uploads finished in
	for i, o := range outcomes {
		if o.err != nil {
			log.Warn().Err(o.err).Int("index", i).Str("image", o.name).Msg("image upload failed")
			report.Failed = append(report.Failed, models.FailedImage{Index: i, Name: o.name, Err: o.err})
			continue
		}
		report.Succeeded = append(report.Succeeded, models.UploadedImage{Index: i, Name: o.name, URL: o.url})
	}

	if report.HasFailures() && s.policy == models.PartialFailureStrict {
		s.deletes.Enqueue(target, report.URLs()...)
		return report, fmt.Errorf("%w: %d of %d", ErrUploadIncomplete, len(report.Failed), len(images))
	}

	log.Debug().Int("uploaded", len(report.Succeeded)).Int("failed", len(report.Failed)).Msg("image batch settled")
	return report, nil
}

func (s *uploadService) uploadOne(ctx context.Context, img models.Image) uploadOutcome {
	o := uploadOutcome{name: img.Name()}

	dataURL, err := img.DataURL()
	if err != nil {
		o.err = fmt.Errorf("encode image: %w", err)
		return o
	}

	o.url, o.err = s.blobs.UploadImage(ctx, dataURL, s.container)
	return o
}

// Apply implements [ClientUploadService]. A single-slot certificate keeps
// only the first URL; the other uploads of that batch are deleted.
func (s *uploadService) Apply(c models.DocumentCollection, report models.UploadReport) (models.DocumentCollection, error) {
	urls := report.URLs()

	merged, err := documents.Merge(c, report.Target, urls)
	if err != nil {
		s.logger.WithTarget(report.Target).Warn().Err(err).Msg("upload target vanished, dropping uploaded images")
		s.deletes.Enqueue(report.Target, urls...)
		return c, err
	}

	if report.Target.Type.IsSingleSlot() && len(urls) > 1 {
		s.deletes.Enqueue(report.Target, urls[1:]...)
	}
	return merged, nil
}
