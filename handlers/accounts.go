// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

type AccountHandler struct {
	auth *auth.Service
}

func NewAccountHandler(authSvc *auth.Service) *AccountHandler {
	return &AccountHandler{auth: authSvc}
}

// Register handles POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	token, err := h.auth.Register(r.Context(), req.Name, req.Password)
	if errors.Is(err, auth.ErrNameTaken) {
		middleware.ErrorResponse(w, http.StatusConflict, "Name already registered")
		return
	}
	if err != nil {
		slog.Error("registration failed", "error", err, "name", req.Name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	slog.Info("account registered", "name", req.Name)

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{Token: token})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Name, req.Password)
	// Unknown name and wrong password produce the same response.
	if errors.Is(err, auth.ErrInvalidCredentials) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("login failed", "error", err, "name", req.Name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	slog.Info("login succeeded", "name", req.Name)

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{Token: token})
}
