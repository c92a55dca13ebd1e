// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
)

// fakeDeleteQueue records enqueued deletions instead of running them.
type fakeDeleteQueue struct {
	mu      sync.Mutex
	urls    []string
	targets []models.Target
}

func (q *fakeDeleteQueue) Enqueue(target models.Target, urls ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, u := range urls {
		if u == "" {
			continue
		}
		q.urls = append(q.urls, u)
		q.targets = append(q.targets, target)
	}
}

func (q *fakeDeleteQueue) Deleted() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.urls...)
}

var errUploadFailed = errors.New("upload failed")

// fakeBlobs "stores" an image by echoing its content into the URL. Images
// whose content starts with "bad" fail.
type fakeBlobs struct {
	mu        sync.Mutex
	container string
	calls     int
}

func (b *fakeBlobs) UploadImage(_ context.Context, dataURL, container string) (string, error) {
	b.mu.Lock()
	b.calls++
	b.container = container
	b.mu.Unlock()

	_, data, err := models.DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(string(data), "bad") {
		return "", errUploadFailed
	}
	return "https://blobs.test/" + container + "/" + string(data), nil
}

func (b *fakeBlobs) DeleteImage(context.Context, string) error {
	return nil
}

func images(contents ...string) []models.Image {
	out := make([]models.Image, 0, len(contents))
	for _, c := range contents {
		out = append(out, models.RawImage{Label: c, Data: []byte(c)})
	}
	return out
}

func blobURL(content string) string {
	return "https://blobs.test/cardocument/" + content
}

func testDocumentsConfig(policy models.PartialFailurePolicy) config.ClientDocuments {
	return config.ClientDocuments{
		ContainerName:        "cardocument",
		UploadConcurrency:    3,
		PartialFailurePolicy: policy,
	}
}

func oneVehicle() models.DocumentCollection {
	c := models.NewDocumentCollection()
	c.Vehicles = append(c.Vehicles, models.NewVehicleDocumentSet())
	return c
}

func completeDocuments() models.DocumentCollection {
	return models.DocumentCollection{
		DrivingLicense: []string{"dl-front", "dl-back"},
		NationalID:     []string{"id-front", "id-back"},
		Vehicles: []models.VehicleDocumentSet{{
			RegistrationCertificateURL: "rc",
			InsuranceCertificateURL:    "ins",
			PollutionCertificateURL:    "puc",
			PhotoURLs:                  []string{"photo"},
		}},
	}
}

func newUploadServiceForTest(policy models.PartialFailurePolicy) (*uploadService, *fakeBlobs, *fakeDeleteQueue) {
	blobs := &fakeBlobs{}
	queue := &fakeDeleteQueue{}
	svc := NewUploadService(blobs, queue, testDocumentsConfig(policy), logger.Nop()).(*uploadService)
	return svc, blobs, queue
}
