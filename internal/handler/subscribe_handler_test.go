package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ebnn/backend/internal/service"
)

func TestSubscribeHandler_Created(t *testing.T) {
	var gotEmail string
	h := NewSubscribeHandler(&mockSubscriptionService{
		subscribeFunc: func(ctx context.Context, email string) (service.Outcome, error) {
			gotEmail = email
			return service.OutcomeCreated, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(`{"email":"new@example.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotEmail != "new@example.com" {
		t.Errorf("expected email passed through, got %q", gotEmail)
	}
	var resp messageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "subscribed" {
		t.Errorf("expected status=subscribed, got %q", resp.Status)
	}
}

func TestSubscribeHandler_AlreadySubscribed(t *testing.T) {
	h := NewSubscribeHandler(&mockSubscriptionService{
		subscribeFunc: func(ctx context.Context, email string) (service.Outcome, error) {
			return service.OutcomeAlreadySubscribed, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(`{"email":"old@example.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp messageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "You are already subscribed." {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestSubscribeHandler_MethodNotAllowed(t *testing.T) {
	h := NewSubscribeHandler(&mockSubscriptionService{
		subscribeFunc: func(ctx context.Context, email string) (service.Outcome, error) {
			t.Error("service must not be called")
			return 0, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/subscribe", nil)
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Errorf("expected Allow: POST, got %q", got)
	}
}

func TestSubscribeHandler_InvalidJSON(t *testing.T) {
	h := NewSubscribeHandler(&mockSubscriptionService{})

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(`["a@b.co"]`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := decodeError(t, rec).Error; got != "invalid_json" {
		t.Errorf("expected error=invalid_json, got %q", got)
	}
}

func TestSubscribeHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"email required", &service.Error{Kind: service.KindInvalidInput, Err: service.ErrEmailRequired}, http.StatusBadRequest, "invalid_email"},
		{"invalid email", &service.Error{Kind: service.KindInvalidInput, Err: service.ErrInvalidEmail}, http.StatusBadRequest, "invalid_email"},
		{"configuration", &service.Error{Kind: service.KindConfiguration, Err: errors.New("audience id unset")}, http.StatusInternalServerError, "configuration_error"},
		{"storage", &service.Error{Kind: service.KindStorage, Err: errors.New("dial tcp: refused")}, http.StatusInternalServerError, "subscribe_failed"},
		{"provider", &service.Error{Kind: service.KindProvider, Err: errors.New("resend: 500")}, http.StatusInternalServerError, "subscribe_failed"},
		{"partial success", &service.Error{Kind: service.KindPartialSuccess, Err: errors.New("resend: 500")}, http.StatusInternalServerError, "welcome_email_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSubscribeHandler(&mockSubscriptionService{
				subscribeFunc: func(ctx context.Context, email string) (service.Outcome, error) {
					return service.OutcomeCreated, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(`{"email":"a@example.com"}`))
			rec := httptest.NewRecorder()
			h.Subscribe(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			resp := decodeError(t, rec)
			if resp.Error != tt.wantCode {
				t.Errorf("expected error=%q, got %q", tt.wantCode, resp.Error)
			}
			if strings.Contains(resp.Message, "refused") || strings.Contains(resp.Message, "resend") {
				t.Errorf("internal detail leaked to client: %q", resp.Message)
			}
		})
	}
}
