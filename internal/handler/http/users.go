// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/security"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/internal/validators"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, cached, err := h.services.UserService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, models.UserListResponse{Users: users, Cached: cached}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	user, _, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		log.Err(err).Int64("user_id", id).Msg("fetching user failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if user.Username == "" || user.Email == "" {
		writeError(w, http.StatusBadRequest, "Username and email are required")
		return
	}
	if err := h.userValidator.Validate(ctx, user); err != nil {
		log.Err(err).Msg("user validation failed")
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			writeError(w, http.StatusConflict, "User already exists")
			return
		}
		log.Err(err).Msg("creating user failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		log.Err(err).Int64("user_id", id).Msg("deleting user failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User deleted successfully"}, http.StatusOK) //nolint:errcheck
}

// recordInternalError emits the INTERNAL_ERROR security event for a failed
// request. The response body stays generic; detail goes to the log only.
func (h *Handler) recordInternalError(r *http.Request) {
	h.events.RecordRequest(r, security.EventInternalError, security.SeverityError, map[string]string{
		"path": r.URL.Path,
	})
}

// validationMessage maps validator sentinels onto client-facing text.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidUsername):
		return "Username must be 3-20 characters of letters, digits, underscore or dash"
	case errors.Is(err, validators.ErrInvalidEmail):
		return "Invalid email address"
	case errors.Is(err, validators.ErrEmptyName):
		return "Name must not be empty"
	case errors.Is(err, validators.ErrInvalidPrice):
		return "Price must be between 0 and 999999.99"
	case errors.Is(err, validators.ErrInvalidStock):
		return "Stock must be between 0 and 1000000"
	default:
		return "Invalid input"
	}
}
