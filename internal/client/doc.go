// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive driver application runtime.
//
// It restores the saved session, runs the terminal UI and keeps the blob
// delete worker alive for the whole process lifecycle.
package client
