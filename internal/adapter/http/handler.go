package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/port"
)

// CallerHeader carries the account on whose behalf a request is made.
// Authentication happens in front of this service.
const CallerHeader = "X-Account-ID"

type callerKey struct{}

// Handler is the inbound HTTP adapter. It holds the use cases and a logger
// and registers its routes on a chi.Router.
type Handler struct {
	funding port.FundingUseCase
	access  port.AccessUseCase
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. metrics, when
// not nil, is mounted at /metrics.
func NewHandler(funding port.FundingUseCase, access port.AccessUseCase, metrics http.Handler, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{funding: funding, access: access, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/contributors", h.handleGetContributors)
		r.Get("/identities/{account}", h.handleGetIdentity)
		r.Get("/profiles/{account}", h.handleGetProfile)
		r.Get("/roles/{account}", h.handleGetRoles)

		r.Group(func(r chi.Router) {
			r.Use(requireCaller)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/contributions", h.handleContribute)
			r.Put("/campaigns/{id}/status", h.handleUpdateStatus)
			r.Post("/campaigns/{id}/claim", h.handleClaim)
			r.Post("/campaigns/{id}/refund", h.handleRefund)
			r.Post("/identities", h.handleRegisterIdentity)
			r.Put("/identities/me", h.handleUpdateIdentity)
			r.Put("/profiles/me", h.handleSetProfile)
			r.Post("/roles", h.handleAssignRole)
		})
	})
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func requireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := strings.TrimSpace(r.Header.Get(CallerHeader))
		if caller == "" {
			http.Error(w, "missing "+CallerHeader+" header", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, caller)))
	})
}

func callerFrom(r *http.Request) string {
	caller, _ := r.Context().Value(callerKey{}).(string)
	return caller
}
