// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs and stops
// several workers in a unified way, and the BlobDeleteWorker that removes
// orphaned document images in the background.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker and returns without blocking; the worker keeps
// processing in its own goroutines.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that hold resources or queued work and
// must be shut down gracefully.
type Stopper interface {
	Stop()
}

// BlobDeleter removes a stored image by its public URL.
// It is satisfied by adapter.BlobStorage.
type BlobDeleter interface {
	DeleteImage(ctx context.Context, url string) error
}
