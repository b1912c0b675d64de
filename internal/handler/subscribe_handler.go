package handler

import (
	"net/http"

	"github.com/ebnn/backend/internal/service"
)

// SubscribeHandler handles newsletter sign-ups.
type SubscribeHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscribeHandler creates a SubscribeHandler with the given service.
func NewSubscribeHandler(subscriptionService service.SubscriptionService) *SubscribeHandler {
	return &SubscribeHandler{subscriptionService: subscriptionService}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/subscribe.
// 201 for a new subscriber (welcome sent), 200 when already subscribed.
func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	outcome, err := h.subscriptionService.Subscribe(r.Context(), req.Email)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid_email", "A valid email address is required.")
		case service.KindConfiguration:
			writeError(w, http.StatusInternalServerError, "configuration_error",
				"Subscriptions are not configured on this server.")
		case service.KindPartialSuccess:
			writeError(w, http.StatusInternalServerError, "welcome_email_failed",
				"You are subscribed, but the welcome email could not be sent.")
		default:
			writeError(w, http.StatusInternalServerError, "subscribe_failed",
				"Internal server error during subscription.")
		}
		return
	}

	if outcome == service.OutcomeAlreadySubscribed {
		writeJSON(w, http.StatusOK, messageResponse{Message: "You are already subscribed.", Status: "already_subscribed"})
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{
		Message: "Successfully subscribed and welcome email sent!",
		Status:  "subscribed",
	})
}
