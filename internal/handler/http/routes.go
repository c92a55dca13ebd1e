// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/auth-boarding", h.authBoarding)
		r.Patch("/api/users/verify", h.verify)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/blobs/{container}/{key}", h.getBlob)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/users/auth", h.completeRegistration)
		r.Get("/api/users/profile/{userId}", h.getProfile)
		r.Patch("/api/users/profile/update/{userId}", h.updateProfile)

		r.Post("/api/azure/blob/upload", h.uploadBlob)
		r.Delete("/api/azure/blob/delete", h.deleteBlob)

		r.Post("/api/car-docs/create", h.createDocuments)
		r.Get("/api/car-docs/get-user/{userId}", h.getUserDocuments)
		r.Patch("/api/car-docs/update/{userId}", h.updateDocuments)
		r.Delete("/api/car-docs/delete/{id}", h.deleteDocuments)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, app.MsgRouteNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"Content-Encoding",
			traceIDHeader,
		},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
