package httpadapter

import (
	"net/http"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type campaignDTO struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Owner        string    `json:"owner"`
	GoalAmount   int64     `json:"goal_amount"`
	AmountRaised int64     `json:"amount_raised"`
	IsActive     bool      `json:"is_active"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCampaignDTO(c domain.Campaign) campaignDTO {
	return campaignDTO{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		Owner:        c.Owner,
		GoalAmount:   c.GoalAmount,
		AmountRaised: c.AmountRaised,
		IsActive:     c.IsActive,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}

type contributorDTO struct {
	Contributor string `json:"contributor"`
	Amount      int64  `json:"amount"`
}

// handleCreateCampaign creates a campaign owned by the caller and returns
// its id with HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		GoalAmount  int64  `json:"goal_amount"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	id, err := h.funding.CreateCampaign(r.Context(), callerFrom(r), port.CreateCampaignReq{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
	})
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	c, err := h.funding.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignDTO(c))
}

// handleGetContributors lists every contribution of the campaign in the
// order received, refunded ones included.
func (h *Handler) handleGetContributors(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	contributors, err := h.funding.GetContributors(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get contributors", err)
		return
	}
	resp := make([]contributorDTO, 0, len(contributors))
	for _, c := range contributors {
		resp = append(resp, contributorDTO{Contributor: c.Account, Amount: c.Amount})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleContribute records a contribution from the caller. The funds are
// expected to be in custody before the request is made.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req struct {
		Amount int64 `json:"amount"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.funding.Contribute(r.Context(), id, callerFrom(r), req.Amount)
	if err != nil {
		h.writeError(w, r, "contribute", err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		AmountRaised int64 `json:"amount_raised"`
		Completed    bool  `json:"completed"`
	}{resp.AmountRaised, resp.Completed})
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.funding.UpdateStatus(r.Context(), id, callerFrom(r), domain.Status(req.Status)); err != nil {
		h.writeError(w, r, "update status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	amount, err := h.funding.Claim(r.Context(), id, callerFrom(r))
	if err != nil {
		h.writeError(w, r, "claim", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"amount": amount})
}

func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	amount, err := h.funding.Refund(r.Context(), id, callerFrom(r))
	if err != nil {
		h.writeError(w, r, "refund", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"amount": amount})
}
