// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) uploadBlob(w http.ResponseWriter, r *http.Request) {
	var req models.BlobUploadRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err, "invalid upload request")
		return
	}

	url, err := h.services.BlobService.Upload(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "upload failed")
		return
	}

	logger.FromRequest(r).Info().Str("container", req.ContainerName).Str("url", url).Msg("blob stored")
	utils.WriteJSON(w, models.BlobUploadResponse{URL: url}, http.StatusCreated)
}

func (h *Handler) deleteBlob(w http.ResponseWriter, r *http.Request) {
	var req models.BlobDeleteRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err, "invalid delete request")
		return
	}

	if err := h.services.BlobService.Delete(r.Context(), req.BlobURL); err != nil {
		writeError(w, r, err, "delete failed")
		return
	}

	utils.WriteMessage(w, app.MsgBlobDeleted, http.StatusOK)
}

// getBlob serves a stored image. Blob URLs are public.
func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	blob, err := h.services.BlobService.Open(r.Context(), chi.URLParam(r, "container"), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err, "open blob failed")
		return
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(blob.Data)
}
