// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-ride-docs/models"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the API server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientDocuments holds the document editor policies.
type ClientDocuments struct {
	ContainerName        string
	UploadConcurrency    int
	PartialFailurePolicy models.PartialFailurePolicy
	RequireVehicle       bool
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// DeleteWorkers is the number of goroutines deleting orphaned blobs.
	DeleteWorkers int
	// DeleteQueueSize is the capacity of the blob delete queue.
	DeleteQueueSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Documents contains upload and submission policies.
	Documents ClientDocuments
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Documents: ClientDocuments{
			ContainerName:        cfg.Documents.ContainerName,
			UploadConcurrency:    cfg.Documents.UploadConcurrency,
			PartialFailurePolicy: models.PartialFailurePolicy(cfg.Documents.PartialFailurePolicy),
			RequireVehicle:       cfg.Documents.RequireVehicle,
		},
		Workers: ClientWorkers{
			DeleteWorkers:   cfg.Workers.DeleteWorkers,
			DeleteQueueSize: cfg.Workers.DeleteQueueSize,
		},
	}

	return clientCfg, clientCfg.validate()
}
