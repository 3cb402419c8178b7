package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/amanv05/second-brain-backend/internal/auth"
	"github.com/amanv05/second-brain-backend/internal/services"
)

// ShareHandler handles share-link management and public resolution.
type ShareHandler struct {
	service services.ShareServiceProvider
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(service services.ShareServiceProvider) *ShareHandler {
	return &ShareHandler{service: service}
}

// SetSharePayload defines the structure for share toggle requests.
type SetSharePayload struct {
	Share bool `json:"share"`
}

// SetShare enables or disables sharing for the caller. Enabling when a link
// already exists returns the existing hash unchanged; disabling is idempotent.
func (h *ShareHandler) SetShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var payload SetSharePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !payload.Share {
		if err := h.service.DisableSharing(userID); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to remove share link")
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeMessage(w, http.StatusOK, "Removed link")
		return
	}

	hash, created, err := h.service.EnableSharing(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create share link")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusOK
	message := "Link already exists"
	if created {
		status = http.StatusCreated
		message = "Link created"
	}
	writeJSON(w, status, map[string]string{"hash": hash, "message": message})
}

// Resolve handles the public, unauthenticated lookup of a share hash. It
// returns the linked user's content and username.
func (h *ShareHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "shareToken")

	contents, username, err := h.service.ResolveShare(hash)
	if err != nil {
		if errors.Is(err, services.ErrShareLinkNotFound) || errors.Is(err, services.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "Invalid link")
			return
		}
		log.Error().Err(err).Str("hash", hash).Msg("Failed to resolve share link")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"content":  contents,
		"username": username,
	})
}
