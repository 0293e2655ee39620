package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type identityDTO struct {
	Account    string    `json:"account"`
	Identifier string    `json:"identifier"`
	Status     string    `json:"status"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toIdentityDTO(i domain.Identity) identityDTO {
	return identityDTO(i)
}

type profileDTO struct {
	Account   string            `json:"account"`
	Metadata  map[string]string `json:"metadata"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (h *Handler) handleRegisterIdentity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	identity, err := h.access.RegisterIdentity(r.Context(), callerFrom(r), req.Identifier)
	if err != nil {
		h.writeError(w, r, "register identity", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toIdentityDTO(identity))
}

func (h *Handler) handleUpdateIdentity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
		Status     string `json:"status"`
		Verified   bool   `json:"verified"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	identity, err := h.access.UpdateIdentity(r.Context(), callerFrom(r), port.UpdateIdentityReq{
		Identifier: req.Identifier,
		Status:     req.Status,
		Verified:   req.Verified,
	})
	if err != nil {
		h.writeError(w, r, "update identity", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toIdentityDTO(identity))
}

func (h *Handler) handleGetIdentity(w http.ResponseWriter, r *http.Request) {
	identity, err := h.access.GetIdentity(r.Context(), chi.URLParam(r, "account"))
	if err != nil {
		h.writeError(w, r, "get identity", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toIdentityDTO(identity))
}

func (h *Handler) handleSetProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Metadata map[string]string `json:"metadata"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	profile, err := h.access.SetProfile(r.Context(), callerFrom(r), req.Metadata)
	if err != nil {
		h.writeError(w, r, "set profile", err)
		return
	}
	h.writeJSON(w, http.StatusOK, profileDTO(profile))
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.access.GetProfile(r.Context(), chi.URLParam(r, "account"))
	if err != nil {
		h.writeError(w, r, "get profile", err)
		return
	}
	h.writeJSON(w, http.StatusOK, profileDTO(profile))
}

// handleAssignRole grants a role. Only Super Admin callers may do so;
// "granted" is false when the account already held the role.
func (h *Handler) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Account string `json:"account"`
		Role    string `json:"role"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Account == "" || req.Role == "" {
		http.Error(w, "account and role are required", http.StatusBadRequest)
		return
	}
	granted, err := h.access.AssignRole(r.Context(), callerFrom(r), req.Account, domain.Role(req.Role))
	if err != nil {
		h.writeError(w, r, "assign role", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"granted": granted})
}

func (h *Handler) handleGetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.access.Roles(r.Context(), chi.URLParam(r, "account"))
	if err != nil {
		h.writeError(w, r, "get roles", err)
		return
	}
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"roles": names})
}
