// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		OTPLength     int      `json:"otp_length"`
		OTPTTL        Duration `json:"otp_ttl"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Blob struct {
			Backend   string `json:"backend"`
			Dir       string `json:"dir"`
			PublicURL string `json:"public_url"`
		} `json:"blob,omitempty"`

		S3 struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Documents struct {
		ContainerName        string `json:"container_name"`
		UploadConcurrency    int    `json:"upload_concurrency"`
		PartialFailurePolicy string `json:"partial_failure_policy"`
		RequireVehicle       bool   `json:"require_vehicle"`
	} `json:"documents,omitempty"`

	Workers struct {
		DeleteWorkers   int `json:"delete_workers"`
		DeleteQueueSize int `json:"delete_queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			OTPLength:     jsonCfg.App.OTPLength,
			OTPTTL:        time.Duration(jsonCfg.App.OTPTTL),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Blob: Blob{
				Backend:   jsonCfg.Storage.Blob.Backend,
				Dir:       jsonCfg.Storage.Blob.Dir,
				PublicURL: jsonCfg.Storage.Blob.PublicURL,
			},
			S3: S3{
				Bucket:          jsonCfg.Storage.S3.Bucket,
				Region:          jsonCfg.Storage.S3.Region,
				Endpoint:        jsonCfg.Storage.S3.Endpoint,
				AccessKeyID:     jsonCfg.Storage.S3.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.S3.SecretAccessKey,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Documents: Documents{
			ContainerName:        jsonCfg.Documents.ContainerName,
			UploadConcurrency:    jsonCfg.Documents.UploadConcurrency,
			PartialFailurePolicy: jsonCfg.Documents.PartialFailurePolicy,
			RequireVehicle:       jsonCfg.Documents.RequireVehicle,
		},
		Workers: Workers{
			DeleteWorkers:   jsonCfg.Workers.DeleteWorkers,
			DeleteQueueSize: jsonCfg.Workers.DeleteQueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
