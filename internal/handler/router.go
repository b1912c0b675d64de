package handler

import (
	"net/http"

	"github.com/ebnn/backend/internal/repository"
	"github.com/ebnn/backend/internal/service"
)

// Deps are the collaborators the HTTP API is built from.
type Deps struct {
	Contact       service.ContactService
	Subscriptions service.SubscriptionService
	// DB is pinged by the health endpoint. May be nil.
	DB          repository.DB
	FrontendURL string
	// RateLimiter guards the POST endpoints. May be nil.
	RateLimiter *RateLimiter
}

// NewRouter wires the endpoints and the middleware chain:
// request id, request log, security headers, CORS, mux.
func NewRouter(d Deps) http.Handler {
	h := New(d.DB, d.FrontendURL)
	contactHandler := NewContactHandler(d.Contact)
	subscribeHandler := NewSubscribeHandler(d.Subscriptions)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("/api/contact", d.RateLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("/api/subscribe", d.RateLimiter.Middleware(http.HandlerFunc(subscribeHandler.Subscribe)))

	return RequestID(RequestLogger(SecurityHeaders(h.CORS(mux))))
}
