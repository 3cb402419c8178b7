package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/amanv05/second-brain-backend/internal/auth"
	"github.com/amanv05/second-brain-backend/internal/models"
	"github.com/amanv05/second-brain-backend/internal/services"
)

// ContentHandler handles HTTP requests for saved content.
type ContentHandler struct {
	service  services.ContentServiceProvider
	validate *validator.Validate
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service services.ContentServiceProvider) *ContentHandler {
	return &ContentHandler{service: service, validate: validator.New()}
}

// CreateContentPayload defines the structure for content creation requests.
type CreateContentPayload struct {
	Link  string   `json:"link" validate:"required,url"`
	Title string   `json:"title" validate:"required,min=1,max=100"`
	Type  string   `json:"type" validate:"required,oneof=image video article audio"`
	Tags  []string `json:"tags" validate:"omitempty,dive,required"`
}

// DeleteContentPayload defines the structure for content deletion requests.
type DeleteContentPayload struct {
	ContentID string `json:"contentID" validate:"required"`
}

// Create handles the request to save a new piece of content for the caller.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var payload CreateContentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeValidationError(w, err)
		return
	}

	_, err := h.service.CreateContent(userID, payload.Link, payload.Title, payload.Type, payload.Tags)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create content")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusCreated, "Content successfully created")
}

// List handles the request to list all content owned by the caller.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	contents, err := h.service.ListContentByOwner(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list content")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]models.Content{"content": contents})
}

// Delete handles the request to delete one of the caller's content items.
// Ownership is part of the delete predicate, so an id owned by someone else
// is indistinguishable from a missing one.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var payload DeleteContentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.service.DeleteContent(userID, payload.ContentID); err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			writeMessage(w, http.StatusNotFound, "Content not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Str("content_id", payload.ContentID).Msg("Failed to delete content")
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusOK, "Content deleted")
}
