// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip inflates gzip request bodies and compresses JSON and text
// responses for clients that accept gzip. Images are already compressed and
// pass through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				writeError(w, r, ErrInvalidJSON, "invalid gzip body")
				return
			}

			r.Body = &pooledReadCloser{Reader: gzipReader, body: r.Body, reader: gzipReader}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		gw := &gzipResponseWriter{ResponseWriter: w, gzipWriter: gzipWriter}
		next.ServeHTTP(gw, r)

		if gw.compress {
			gzipWriter.Close()
		}
		gzipWriter.Reset(io.Discard)
		gzipWriterPool.Put(gzipWriter)
	})
}

// pooledReadCloser returns its reader to the pool on the first Close.
type pooledReadCloser struct {
	io.Reader
	body   io.Closer
	reader *gzip.Reader
	once   sync.Once
}

func (p *pooledReadCloser) Close() error {
	p.once.Do(func() {
		p.reader.Close()
		gzipReaderPool.Put(p.reader)
	})
	return p.body.Close()
}

// gzipResponseWriter decides on the first header write whether the response
// is compressed, based on its Content-Type and status.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	decided  bool
	compress bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if !w.decided {
		w.decided = true
		w.compress = compressible(w.Header().Get("Content-Type"), statusCode)
		if w.compress {
			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Add("Vary", "Accept-Encoding")
			w.Header().Del("Content-Length")
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.decided {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", http.DetectContentType(data))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.compress {
		return w.gzipWriter.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func compressible(contentType string, statusCode int) bool {
	if statusCode == http.StatusNoContent || statusCode == http.StatusNotModified {
		return false
	}
	return strings.HasPrefix(contentType, "application/json") || strings.HasPrefix(contentType, "text/")
}
