// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// PartialFailurePolicy decides what happens to a batch upload when some of
// its images fail.
type PartialFailurePolicy string

const (
	// PartialFailureSilent merges the successful uploads and reports the
	// failures without returning an error.
	PartialFailureSilent PartialFailurePolicy = "silent"

	// PartialFailureStrict rejects the whole batch when any image fails and
	// deletes the blobs that did upload.
	PartialFailureStrict PartialFailurePolicy = "strict"
)

// ParsePartialFailurePolicy converts s into a [PartialFailurePolicy].
func ParsePartialFailurePolicy(s string) (PartialFailurePolicy, error) {
	switch p := PartialFailurePolicy(s); p {
	case PartialFailureSilent, PartialFailureStrict:
		return p, nil
	default:
		return "", fmt.Errorf("unknown partial failure policy %q", s)
	}
}

// UploadedImage is an image that reached blob storage.
type UploadedImage struct {
	// Index is the position of the image in the user's selection.
	Index int    `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// FailedImage is an image that could not be uploaded.
type FailedImage struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Err   error  `json:"-"`
}

// Error returns the failure message.
func (f FailedImage) Error() string {
	if f.Err == nil {
		return f.Name + ": upload failed"
	}
	return f.Name + ": " + f.Err.Error()
}

// UploadReport lists the outcome of every image in one batch, each slice in
// selection order.
type UploadReport struct {
	Target    Target          `json:"-"`
	Succeeded []UploadedImage `json:"succeeded"`
	Failed    []FailedImage   `json:"failed"`
}

// HasFailures reports whether at least one image failed.
func (r UploadReport) HasFailures() bool {
	return len(r.Failed) > 0
}

// URLs returns the URLs of the successful uploads in selection order.
func (r UploadReport) URLs() []string {
	urls := make([]string, 0, len(r.Succeeded))
	for _, s := range r.Succeeded {
		urls = append(urls, s.URL)
	}
	return urls
}

// Blob is a stored binary object.
type Blob struct {
	Container   string
	Key         string
	ContentType string
	Data        []byte
}

// BlobOwner records which user uploaded a blob.
type BlobOwner struct {
	Container string
	Key       string
	UserID    string
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the BlobOwner model.
func (o BlobOwner) TableName() string {
	return "blob_owners"
}
