// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-ride-docs server and client. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and one-time code settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the blob
	// store backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and CORS settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the API server used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Documents holds the document upload policies.
	Documents Documents `envPrefix:"DOCUMENTS_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token and
// one-time code lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// OTPLength is the number of digits in a verification code.
	// Env: APP_OTP_LENGTH
	OTPLength int `env:"OTP_LENGTH"`

	// OTPTTL is how long a verification code stays valid.
	// Env: APP_OTP_TTL
	OTPTTL time.Duration `env:"OTP_TTL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings. The server uses
	// a PostgreSQL DSN, the client a SQLite file path.
	DB DB `envPrefix:"DB_"`

	// Blob selects and configures the image store.
	Blob Blob `envPrefix:"BLOB_"`

	// S3 holds settings of the S3 blob backend.
	S3 S3 `envPrefix:"S3_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the data source name used to open the database connection.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Blob backends.
const (
	BlobBackendFile = "file"
	BlobBackendS3   = "s3"
)

// Blob holds image store settings.
type Blob struct {
	// Backend is either "file" or "s3".
	// Env: STORAGE_BLOB_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the root directory of the file backend.
	// Env: STORAGE_BLOB_DIR
	Dir string `env:"DIR"`

	// PublicURL is the base URL blobs are served from
	// (e.g. "http://localhost:8080/blobs").
	// Env: STORAGE_BLOB_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// S3 holds the S3 (or S3-compatible) bucket settings.
type S3 struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// Server holds network, timeout and CORS settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins allowed by CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds the client's view of the API server.
type Adapter struct {
	// HTTPAddress is the base address of the API server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Documents holds the upload and submission policies.
type Documents struct {
	// ContainerName is the blob container all document images go to.
	// Env: DOCUMENTS_CONTAINER_NAME
	ContainerName string `env:"CONTAINER_NAME"`

	// UploadConcurrency bounds the number of images uploaded at once.
	// Env: DOCUMENTS_UPLOAD_CONCURRENCY
	UploadConcurrency int `env:"UPLOAD_CONCURRENCY"`

	// PartialFailurePolicy is "silent" or "strict".
	// Env: DOCUMENTS_PARTIAL_FAILURE_POLICY
	PartialFailurePolicy string `env:"PARTIAL_FAILURE_POLICY"`

	// RequireVehicle makes at least one vehicle mandatory for submission.
	// Env: DOCUMENTS_REQUIRE_VEHICLE
	RequireVehicle bool `env:"REQUIRE_VEHICLE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// DeleteWorkers is the number of goroutines deleting orphaned blobs.
	// Env: WORKERS_DELETE_WORKERS
	DeleteWorkers int `env:"DELETE_WORKERS"`

	// DeleteQueueSize is the capacity of the blob delete queue.
	// Env: WORKERS_DELETE_QUEUE_SIZE
	DeleteQueueSize int `env:"DELETE_QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// defaults returns the values used when no source sets a field.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-ride-docs",
			TokenDuration: 24 * time.Hour,
			OTPLength:     6,
			OTPTTL:        5 * time.Minute,
		},
		Storage: Storage{
			Blob: Blob{
				Backend:   BlobBackendFile,
				Dir:       "blobs",
				PublicURL: "http://localhost:8080/blobs",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Documents: Documents{
			ContainerName:        "cardocument",
			UploadConcurrency:    4,
			PartialFailurePolicy: "silent",
		},
		Workers: Workers{
			DeleteWorkers:   2,
			DeleteQueueSize: 64,
		},
	}
}
