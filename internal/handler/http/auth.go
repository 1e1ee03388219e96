package http

import (
	"encoding/json"
	"net/http"

	"github.com/gremahtech/agri-auth/internal/logger"
	"github.com/gremahtech/agri-auth/internal/utils"
	"github.com/gremahtech/agri-auth/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user registration ended with error")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	authResponse, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user login ended with error")
		writeError(w, err)
		return
	}

	log.Debug().Str("username", authResponse.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, authResponse, http.StatusOK)
}

// validate answers whether a presented token is currently valid. It always
// responds 200 with a boolean verdict; the reason for an invalid token is
// never exposed to the caller.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	valid := h.services.AuthService.ValidateToken(ctx, req.Token)

	utils.WriteJSON(w, models.ValidateResponse{Valid: valid}, http.StatusOK)
}
