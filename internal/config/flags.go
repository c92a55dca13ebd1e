// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-blob-backend blob backend ("file" or "s3")
//	-blob-dir file blob backend root directory
//	-blob-public-url public base URL of stored blobs
//	-server API server address used by the client
//	-upload-concurrency images uploaded at once
//	-partial-failure-policy "silent" or "strict"
//	-require-vehicle require at least one vehicle before submission
//	-delete-workers number of blob delete workers
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var blobBackend, blobDir, blobPublicURL string
	var adapterAddress string
	var uploadConcurrency int
	var partialFailurePolicy string
	var requireVehicle bool
	var deleteWorkers int

	fs := flag.NewFlagSet("go-ride-docs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&blobBackend, "blob-backend", "", "Blob backend: file or s3")
	fs.StringVar(&blobDir, "blob-dir", "", "Blob directory of the file backend")
	fs.StringVar(&blobPublicURL, "blob-public-url", "", "Public base URL of stored blobs")
	fs.StringVar(&adapterAddress, "server", "", "API server address used by the client")
	fs.IntVar(&uploadConcurrency, "upload-concurrency", 0, "Images uploaded at once")
	fs.StringVar(&partialFailurePolicy, "partial-failure-policy", "", "Partial upload failure policy: silent or strict")
	fs.BoolVar(&requireVehicle, "require-vehicle", false, "Require at least one vehicle before submission")
	fs.IntVar(&deleteWorkers, "delete-workers", 0, "Number of blob delete workers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Blob: Blob{
				Backend:   blobBackend,
				Dir:       blobDir,
				PublicURL: blobPublicURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Documents: Documents{
			UploadConcurrency:    uploadConcurrency,
			PartialFailurePolicy: partialFailurePolicy,
			RequireVehicle:       requireVehicle,
		},
		Workers:      Workers{DeleteWorkers: deleteWorkers},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
