// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/go-chi/chi/v5"
)

// createDocuments stores the first document collection of the caller. The
// body carries the documents wire shape with an optional "userId".
func (h *Handler) createDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var record models.DocumentRecord
	if err := decodeJSON(w, r, &record); err != nil {
		writeError(w, r, err, "invalid documents")
		return
	}

	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "no caller in context")
		return
	}
	if record.UserID != "" {
		if err = checkCaller(r, record.UserID); err != nil {
			writeError(w, r, err, "documents of another user")
			return
		}
	}
	if err = h.validator.Validate(ctx, record.Documents); err != nil {
		writeError(w, r, err, "invalid documents")
		return
	}

	created, err := h.services.DocumentService.Create(ctx, userID, record.Documents)
	if err != nil {
		writeError(w, r, err, "create documents failed")
		return
	}

	logger.FromRequest(r).Info().Str("documents_id", created.ID).Msg("documents created")
	utils.WriteJSON(w, models.DocumentsResponse{
		Success:   true,
		Message:   app.MsgDocumentsSaved,
		Documents: &created,
	}, http.StatusCreated)
}

func (h *Handler) getUserDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := ownUserID(r)
	if err != nil {
		writeError(w, r, err, "documents access denied")
		return
	}

	record, err := h.services.DocumentService.GetByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "get documents failed")
		return
	}

	utils.WriteJSON(w, models.DocumentsResponse{Success: true, Documents: &record}, http.StatusOK)
}

// updateDocuments replaces the stored collection and sends it back to review.
func (h *Handler) updateDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := ownUserID(r)
	if err != nil {
		writeError(w, r, err, "documents access denied")
		return
	}

	var collection models.DocumentCollection
	if err = h.decodeAndValidate(w, r, &collection); err != nil {
		writeError(w, r, err, "invalid documents")
		return
	}

	result, err := h.services.DocumentService.Update(r.Context(), userID, collection)
	if err != nil {
		writeError(w, r, err, "update documents failed")
		return
	}

	utils.WriteJSON(w, models.DocumentsResponse{
		Success:      result.Success,
		Message:      app.MsgDocumentsUpdated,
		Documents:    &result.Record,
		Verification: &result.Verification,
	}, http.StatusOK)
}

// deleteDocuments removes a record by its ID. Ownership is checked by the
// document service.
func (h *Handler) deleteDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.DocumentService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "delete documents failed")
		return
	}

	utils.WriteMessage(w, app.MsgDocumentsDeleted, http.StatusOK)
}
