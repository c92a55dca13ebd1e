// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
)

// DeleteRequest is one blob scheduled for deletion. Target records which
// document the blob belonged to and is only used for logging.
type DeleteRequest struct {
	URL    string
	Target models.Target
}

// BlobDeleteWorker deletes blobs in the background. Enqueue never blocks the
// caller and delete failures are only logged; there is no retry.
type BlobDeleteWorker struct {
	deleter BlobDeleter
	logger  *logger.Logger
	workers int

	mu      sync.Mutex
	queue   chan DeleteRequest
	ctx     context.Context
	running bool
	stopped bool
	wg      sync.WaitGroup
}

// NewBlobDeleteWorker creates an idle worker. Requests enqueued before
// Run/Start wait in the queue.
func NewBlobDeleteWorker(deleter BlobDeleter, cfg config.ClientWorkers, logger *logger.Logger) *BlobDeleteWorker {
	workers := cfg.DeleteWorkers
	if workers < 1 {
		workers = 1
	}
	queueSize := cfg.DeleteQueueSize
	if queueSize < 0 {
		queueSize = 0
	}

	return &BlobDeleteWorker{
		deleter: deleter,
		logger:  logger,
		workers: workers,
		queue:   make(chan DeleteRequest, queueSize),
		ctx:     context.Background(),
	}
}

// Run implements [Worker].
func (w *BlobDeleteWorker) Run() {
	w.Start(context.Background())
}

// Start launches the delete goroutines. Deletes use ctx; calling Start more
// than once or after Stop is a no-op.
func (w *BlobDeleteWorker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running || w.stopped {
		return
	}
	w.running = true
	w.ctx = ctx

	for range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for req := range w.queue {
				w.delete(ctx, req)
			}
		}()
	}
}

// Enqueue schedules the deletion of every URL. Empty URLs are skipped. When
// the queue is full the delete runs in its own goroutine.
func (w *BlobDeleteWorker) Enqueue(target models.Target, urls ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, url := range urls {
		if url == "" {
			continue
		}
		req := DeleteRequest{URL: url, Target: target}

		if w.stopped {
			w.logger.WithTarget(target).Warn().Str("url", url).Msg("blob delete worker stopped, delete dropped")
			continue
		}

		select {
		case w.queue <- req:
		default:
			w.wg.Add(1)
			go func(ctx context.Context) {
				defer w.wg.Done()
				w.delete(ctx, req)
			}(w.ctx)
		}
	}
}

// Stop stops accepting requests and blocks until every queued delete has
// finished.
func (w *BlobDeleteWorker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.queue)
	running, ctx := w.running, w.ctx
	w.mu.Unlock()

	if !running {
		for req := range w.queue {
			w.delete(ctx, req)
		}
	}
	w.wg.Wait()
}

func (w *BlobDeleteWorker) delete(ctx context.Context, req DeleteRequest) {
	if err := w.deleter.DeleteImage(ctx, req.URL); err != nil {
		w.logger.WithTarget(req.Target).Err(err).Str("url", req.URL).Msg("failed to delete blob")
		return
	}
	w.logger.WithTarget(req.Target).Debug().Str("url", req.URL).Msg("blob deleted")
}
