package handler

import (
	"errors"
	"net/http"

	"github.com/ebnn/backend/internal/model"
	"github.com/ebnn/backend/internal/service"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// contactRequest is the expected JSON body for POST /api/contact.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name, email and message are required; subject is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req contactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Relay(r.Context(), msg); err != nil {
		var missing *service.MissingFieldError
		switch {
		case errors.As(err, &missing):
			writeError(w, http.StatusBadRequest, missing.Field+"_required",
				"Missing required fields: name, email, or message.")
		case errors.Is(err, service.ErrMessageTooLong):
			writeError(w, http.StatusBadRequest, "message_too_long", "Message is too long.")
		case service.KindOf(err) == service.KindInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid_input", "Invalid contact request.")
		default:
			writeError(w, http.StatusInternalServerError, "send_failed",
				"Failed to send messages due to an internal server error.")
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Messages sent successfully."})
}
