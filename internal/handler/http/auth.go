// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ride-docs/internal/app"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
)

// authBoarding starts phone onboarding. With a password in the body it logs
// the user in instead. A token is issued only for a password login; the code
// path gets one from verify.
func (h *Handler) authBoarding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OnboardRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err, "invalid onboarding request")
		return
	}

	if req.Password == "" {
		user, err := h.services.AuthService.Onboard(ctx, req.MobileNumber)
		if err != nil {
			writeError(w, r, err, "onboarding failed")
			return
		}

		log.Debug().Str("user_id", user.ID).Msg(app.MsgVerificationCodeSent)
		utils.WriteJSON(w, models.AuthResponse{
			Message: app.MsgVerificationCodeSent,
			Success: true,
		}, http.StatusOK)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.MobileNumber, req.Password)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}
	h.writeSignedIn(w, r, user, app.MsgLoggedIn)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err, "invalid verification request")
		return
	}

	user, err := h.services.AuthService.Verify(r.Context(), req.MobileNumber, req.VerifyCode)
	if err != nil {
		writeError(w, r, err, "verification failed")
		return
	}
	h.writeSignedIn(w, r, user, app.MsgNumberVerified)
}

// writeSignedIn issues a token for user and writes it with the profile.
func (h *Handler) writeSignedIn(w http.ResponseWriter, r *http.Request, user models.User, message string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg(message)
	utils.WriteJSON(w, models.AuthResponse{
		Message: message,
		Success: true,
		Token:   token.SignedString,
		User:    &user,
	}, http.StatusOK)
}

// completeRegistration stores the profile form and the documents of the
// caller and issues a fresh token.
func (h *Handler) completeRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegistrationRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err, "invalid registration request")
		return
	}
	if err := checkCaller(r, req.UserID); err != nil {
		writeError(w, r, err, "registration of another user")
		return
	}

	user, err := h.services.AuthService.CompleteRegistration(ctx, req)
	if err != nil {
		writeError(w, r, err, "registration failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgRegistered,
		Success: true,
		Token:   token.SignedString,
		User:    &user,
	}, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := ownUserID(r)
	if err != nil {
		writeError(w, r, err, "profile access denied")
		return
	}

	user, err := h.services.AuthService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "get profile failed")
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, User: user}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := ownUserID(r)
	if err != nil {
		writeError(w, r, err, "profile access denied")
		return
	}

	var req models.ProfileUpdateRequest
	if err = h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, r, err, "invalid profile update")
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "update profile failed")
		return
	}

	utils.WriteJSON(w, models.ProfileUpdateResponse{
		Success: true,
		Message: app.MsgProfileUpdated,
		User:    user,
	}, http.StatusOK)
}
