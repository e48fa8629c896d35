package handlers

import (
	"city-explorer-service/internal/api/dto"
	"city-explorer-service/internal/ports"
	"city-explorer-service/internal/services"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

// Largest signup body accepted.
const maxSignupBody = 1 << 16

type AuthHandler struct {
	Users ports.UserRepository
}

// Signup creates an account and returns a session token. Auth beyond this is a stub.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if h.Users == nil {
		writeError(w, r, http.StatusServiceUnavailable, "signup unavailable: no database configured")
		return
	}

	var req dto.SignupRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSignupBody))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	res, err := services.Signup(r.Context(), h.Users, services.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	var signupErr *services.SignupError
	switch {
	case errors.As(err, &signupErr):
		writeError(w, r, http.StatusBadRequest, signupErr.Error())
		return
	case errors.Is(err, services.ErrInvalidSignup):
		writeError(w, r, http.StatusBadRequest, "invalid signup request")
		return
	case errors.Is(err, ports.ErrEmailTaken):
		writeError(w, r, http.StatusConflict, ports.ErrEmailTaken.Error())
		return
	case err != nil:
		log.Printf("signup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SignupResponse{
		ID:    res.UserID,
		Email: res.Email,
		Token: res.Token,
	})
}
