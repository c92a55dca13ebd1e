// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// DefaultImageMIME is used for image payloads whose format cannot be sniffed.
const DefaultImageMIME = "image/jpeg"

// Image is one picture chosen by the user for upload.
type Image interface {
	// Name identifies the image in upload reports.
	Name() string

	// DataURL returns the image content as a base64 "data:" URL.
	DataURL() (string, error)
}

// FileImage is an image read from the local filesystem.
type FileImage struct {
	Path string
}

// Name returns the base name of the file.
func (f FileImage) Name() string {
	return filepath.Base(f.Path)
}

// DataURL reads the file and encodes it with [EncodeDataURL].
func (f FileImage) DataURL() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", f.Path, err)
	}
	return EncodeDataURL(data)
}

// RawImage is an image already held in memory.
type RawImage struct {
	Label string
	Data  []byte
}

// Name returns the label of the image.
func (r RawImage) Name() string {
	return r.Label
}

// DataURL encodes the image bytes with [EncodeDataURL].
func (r RawImage) DataURL() (string, error) {
	return EncodeDataURL(r.Data)
}

// EncodeDataURL returns data as "data:<mime>;base64,<payload>". The MIME type
// is sniffed from the content; unrecognised content is sent as JPEG and
// recognised non-image content is rejected with [ErrNotAnImage].
func EncodeDataURL(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}

	mime := DefaultImageMIME
	kind, err := filetype.Match(data)
	if err == nil && kind != filetype.Unknown {
		if !filetype.IsImage(data) {
			return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, kind.MIME.Value)
		}
		mime = kind.MIME.Value
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURL parses a base64 "data:" URL. A bare base64 payload without
// the "data:" header is accepted as [DefaultImageMIME].
func DecodeDataURL(s string) (mime string, data []byte, err error) {
	mime = DefaultImageMIME
	payload := s
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		header, body, found := strings.Cut(rest, ",")
		if !found {
			return "", nil, ErrInvalidDataURL
		}
		mediaType, isBase64 := strings.CutSuffix(header, ";base64")
		if !isBase64 {
			return "", nil, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURL)
		}
		if mediaType != "" {
			mime = mediaType
		}
		payload = body
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	if len(data) == 0 {
		return "", nil, ErrEmptyImage
	}

	return mime, data, nil
}
