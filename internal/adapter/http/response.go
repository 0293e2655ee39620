package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

var errStatus = []struct {
	err  error
	code int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrInvalidGoal, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrNoIdentity, http.StatusForbidden},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrNotOwner, http.StatusForbidden},
	{domain.ErrCampaignInactive, http.StatusConflict},
	{domain.ErrCampaignNotCompleted, http.StatusConflict},
	{domain.ErrRefundsNotAllowed, http.StatusConflict},
	{domain.ErrNothingToRefund, http.StatusConflict},
	{domain.ErrIdentityExists, http.StatusConflict},
	{domain.ErrTransferFailed, http.StatusBadGateway},
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors to status codes. Anything unknown is logged
// and reported as an internal error without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	for _, m := range errStatus {
		if errors.Is(err, m.err) {
			h.writeJSON(w, m.code, errorResponse{Error: m.err.Error()})
			return
		}
	}
	h.logger.ErrorContext(r.Context(), op+" error", slog.Any("error", err))
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func campaignID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
