package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/events"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/usecase"
)

const root = "root"

type apiFixture struct {
	srv  *httptest.Server
	book *memory.PayoutBook
}

func newAPI(t *testing.T) *apiFixture {
	t.Helper()
	registry := prometheus.NewRegistry()
	bus := events.NewBus(registry, nil)
	t.Cleanup(bus.Stop)

	dir := memory.NewDirectory()
	book := memory.NewPayoutBook()
	funding := usecase.NewFundingUseCase(memory.NewCampaignRepository(), dir, dir, book, bus, nil)
	access := usecase.NewAccessUseCase(dir, dir, dir, bus, nil)
	require.NoError(t, access.Bootstrap(context.Background(), root))

	metrics := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	h := httpadapter.NewHandler(funding, access, metrics, nil)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return &apiFixture{srv: srv, book: book}
}

// do sends body as JSON on behalf of caller and decodes the response into
// out when out is not nil.
func (f *apiFixture) do(t *testing.T, method, path, caller string, body any, out any) int {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, f.srv.URL+path, reader)
	require.NoError(t, err)
	if caller != "" {
		req.Header.Set(httpadapter.CallerHeader, caller)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (f *apiFixture) createCampaign(t *testing.T, owner string, goal int64) int64 {
	t.Helper()
	code := f.do(t, http.MethodPost, "/api/v1/identities", owner, map[string]string{"identifier": "did:" + owner}, nil)
	require.Contains(t, []int{http.StatusCreated, http.StatusConflict}, code)

	var created struct {
		ID int64 `json:"id"`
	}
	code = f.do(t, http.MethodPost, "/api/v1/campaigns", owner, map[string]any{
		"title":       "Library roof",
		"description": "Fix the leak before winter",
		"goal_amount": goal,
	}, &created)
	require.Equal(t, http.StatusCreated, code)
	return created.ID
}

type campaignBody struct {
	ID           int64  `json:"id"`
	Owner        string `json:"owner"`
	GoalAmount   int64  `json:"goal_amount"`
	AmountRaised int64  `json:"amount_raised"`
	IsActive     bool   `json:"is_active"`
	Status       string `json:"status"`
}

func TestMissingCaller(t *testing.T) {
	api := newAPI(t)
	code := api.do(t, http.MethodPost, "/api/v1/campaigns", "", map[string]any{"goal_amount": 10}, nil)
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestCampaignLifecycle(t *testing.T) {
	api := newAPI(t)
	id := api.createCampaign(t, "alice", 100)
	path := "/api/v1/campaigns/" + itoa(id)

	var c campaignBody
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, path, "", nil, &c))
	require.Equal(t, "alice", c.Owner)
	require.True(t, c.IsActive)
	require.Equal(t, "pending", c.Status)

	var contributed struct {
		AmountRaised int64 `json:"amount_raised"`
		Completed    bool  `json:"completed"`
	}
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, path+"/contributions", "bob", map[string]int64{"amount": 60}, &contributed))
	require.False(t, contributed.Completed)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, path+"/contributions", "carol", map[string]int64{"amount": 50}, &contributed))
	require.True(t, contributed.Completed)
	require.Equal(t, int64(110), contributed.AmountRaised)

	require.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, path+"/contributions", "bob", map[string]int64{"amount": 1}, nil))
	require.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, path+"/refund", "bob", nil, nil))

	var contributors []struct {
		Contributor string `json:"contributor"`
		Amount      int64  `json:"amount"`
	}
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, path+"/contributors", "", nil, &contributors))
	require.Len(t, contributors, 2)
	require.Equal(t, "bob", contributors[0].Contributor)

	require.Equal(t, http.StatusForbidden, api.do(t, http.MethodPost, path+"/claim", "bob", nil, nil))

	var claimed struct {
		Amount int64 `json:"amount"`
	}
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, path+"/claim", "alice", nil, &claimed))
	require.Equal(t, int64(110), claimed.Amount)
	require.Equal(t, int64(110), api.book.Balance("alice"))

	// Inactive with nothing raised hides the contributor list.
	require.Equal(t, http.StatusConflict, api.do(t, http.MethodGet, path+"/contributors", "", nil, nil))
}

func TestRefundOverHTTP(t *testing.T) {
	api := newAPI(t)
	id := api.createCampaign(t, "alice", 100)
	path := "/api/v1/campaigns/" + itoa(id)

	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, path+"/contributions", "bob", map[string]int64{"amount": 30}, nil))
	var refunded struct {
		Amount int64 `json:"amount"`
	}
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, path+"/refund", "bob", nil, &refunded))
	require.Equal(t, int64(30), refunded.Amount)
	require.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, path+"/refund", "bob", nil, nil))
	require.Equal(t, http.StatusForbidden, api.do(t, http.MethodPost, path+"/claim", "bob", nil, nil))
	require.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, path+"/claim", "alice", nil, nil))
}

func TestRequestErrors(t *testing.T) {
	api := newAPI(t)
	api.createCampaign(t, "alice", 100)

	tests := []struct {
		name   string
		method string
		path   string
		caller string
		body   any
		want   int
	}{
		{"bad json", http.MethodPost, "/api/v1/campaigns", "alice", "{", http.StatusBadRequest},
		{"zero goal", http.MethodPost, "/api/v1/campaigns", "alice", map[string]int64{"goal_amount": 0}, http.StatusBadRequest},
		{"no identity", http.MethodPost, "/api/v1/campaigns", "mallory", map[string]int64{"goal_amount": 5}, http.StatusForbidden},
		{"bad id", http.MethodGet, "/api/v1/campaigns/abc", "", nil, http.StatusBadRequest},
		{"unknown campaign", http.MethodGet, "/api/v1/campaigns/42", "", nil, http.StatusNotFound},
		{"negative amount", http.MethodPost, "/api/v1/campaigns/1/contributions", "bob", map[string]int64{"amount": -1}, http.StatusBadRequest},
		{"status by stranger", http.MethodPut, "/api/v1/campaigns/1/status", "bob", map[string]string{"status": "closed"}, http.StatusForbidden},
		{"unknown identity", http.MethodGet, "/api/v1/identities/nobody", "", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, api.do(t, tt.method, tt.path, tt.caller, tt.body, nil))
		})
	}
}

func TestRolesAndStatus(t *testing.T) {
	api := newAPI(t)
	id := api.createCampaign(t, "alice", 100)

	var granted struct {
		Granted bool `json:"granted"`
	}
	require.Equal(t, http.StatusForbidden, api.do(t, http.MethodPost, "/api/v1/roles", "alice", map[string]string{"account": "ops", "role": "Admin"}, nil))
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/roles", root, map[string]string{"account": "ops", "role": "Admin"}, &granted))
	require.True(t, granted.Granted)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/roles", root, map[string]string{"account": "ops", "role": "Admin"}, &granted))
	require.False(t, granted.Granted)

	var roles struct {
		Roles []string `json:"roles"`
	}
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/v1/roles/ops", "", nil, &roles))
	require.Equal(t, []string{"Admin"}, roles.Roles)

	path := "/api/v1/campaigns/" + itoa(id)
	require.Equal(t, http.StatusNoContent, api.do(t, http.MethodPut, path+"/status", "ops", map[string]string{"status": "under-review"}, nil))
	var c campaignBody
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, path, "", nil, &c))
	require.Equal(t, "under-review", c.Status)
	require.True(t, c.IsActive)
}

func TestIdentityAndProfile(t *testing.T) {
	api := newAPI(t)

	require.Equal(t, http.StatusForbidden, api.do(t, http.MethodPut, "/api/v1/identities/me", "alice", map[string]any{"identifier": "x"}, nil))
	require.Equal(t, http.StatusCreated, api.do(t, http.MethodPost, "/api/v1/identities", "alice", map[string]string{"identifier": "did:alice"}, nil))
	require.Equal(t, http.StatusConflict, api.do(t, http.MethodPost, "/api/v1/identities", "alice", map[string]string{"identifier": "did:alice"}, nil))

	var identity struct {
		Identifier string `json:"identifier"`
		Status     string `json:"status"`
		Verified   bool   `json:"verified"`
	}
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPut, "/api/v1/identities/me", "alice", map[string]any{
		"identifier": "did:alice:2", "status": "kyc-passed", "verified": true,
	}, &identity))
	require.True(t, identity.Verified)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/v1/identities/alice", "", nil, &identity))
	require.Equal(t, "did:alice:2", identity.Identifier)

	var profile struct {
		Metadata map[string]string `json:"metadata"`
	}
	require.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/api/v1/profiles/alice", "", nil, nil))
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPut, "/api/v1/profiles/me", "alice", map[string]any{"metadata": map[string]string{"city": "Porto"}}, nil))
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/v1/profiles/alice", "", nil, &profile))
	require.Equal(t, "Porto", profile.Metadata["city"])
}

func TestMetricsEndpoint(t *testing.T) {
	api := newAPI(t)
	id := api.createCampaign(t, "alice", 10)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/campaigns/"+itoa(id)+"/contributions", "bob", map[string]int64{"amount": 10}, nil))

	resp, err := http.Get(api.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), `crowdfund_events_total{type="campaign.completed"} 1`)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
