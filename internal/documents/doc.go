// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package documents holds the mutation rules of [models.DocumentCollection].
//
// Every function is pure: it takes a collection by value, returns a new one
// and never performs I/O. Callers that own remote blobs receive the URLs a
// mutation dropped so they can delete them.
package documents
