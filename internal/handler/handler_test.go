package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/handler"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logic"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/router"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/transfer"
)

type nopArchiver struct{}

func (nopArchiver) CampaignChanged(_ ledger.Snapshot) {}

func (nopArchiver) ProjectAdded(_ ledger.Project) {}

func (nopArchiver) InvestmentCommitted(_ ledger.Investment, _ ledger.Project, _ uint64) {}

var _ logic.Archiver = nopArchiver{}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := ledger.New("admin", transfer.Static{}, func() uint64 { return 5000 })
	arch := nopArchiver{}
	return router.Setup(
		logic.NewCampaignLogic(l, arch),
		logic.NewProjectLogic(l, arch),
		logic.NewInvestmentLogic(l, arch),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, caller, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(handler.CallerHeader, caller)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.Response {
	t.Helper()
	var resp handler.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func initializeCampaign(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/campaign/initialize", "admin",
		`{"administrator":"admin","target":1000000,"deadline":5000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("initialize returned %d: %s", w.Code, w.Body.String())
	}
}

func TestInitializeRequiresCallerHeader(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/campaign/initialize", "",
		`{"administrator":"admin","target":1,"deadline":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without caller header, got %d", w.Code)
	}
}

func TestInitializeByNonDeployerIsForbidden(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/campaign/initialize", "mallory",
		`{"administrator":"mallory","target":1,"deadline":1}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w)
	if resp.Success {
		t.Fatal("expected failure envelope")
	}
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	r := newTestServer(t)
	initializeCampaign(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", "admin",
		`{"id":1,"name":"DeFi Protocol","description":"desc","targetAmount":500000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add project returned %d: %s", w.Code, w.Body.String())
	}

	// Duplicate id conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects", "admin",
		`{"id":1,"name":"Again","description":"","targetAmount":1}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate project returned %d, expected 409", w.Code)
	}

	// Non-administrator is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects", "mallory",
		`{"id":2,"name":"Rogue","description":"","targetAmount":1}`)
	if w.Code != http.StatusForbidden {
		t.Fatalf("unauthorized project returned %d, expected 403", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/1", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get project returned %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/99", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("absent project returned %d, expected 404", w.Code)
	}
}

func TestInvestOverHTTP(t *testing.T) {
	r := newTestServer(t)
	initializeCampaign(t, r)
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", "admin",
		`{"id":1,"name":"DeFi Protocol","description":"desc","targetAmount":500000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add project returned %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/investments", "investor1",
		`{"projectId":1,"amount":100000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("invest returned %d: %s", w.Code, w.Body.String())
	}

	tests := []struct {
		name   string
		caller string
		body   string
		want   int
	}{
		{"zero amount", "investor2", `{"projectId":1,"amount":0}`, http.StatusBadRequest},
		{"unknown project", "investor2", `{"projectId":99,"amount":10}`, http.StatusNotFound},
		{"over capacity", "investor2", `{"projectId":1,"amount":450000}`, http.StatusUnprocessableEntity},
		{"duplicate investor", "investor1", `{"projectId":1,"amount":10}`, http.StatusConflict},
	}
	for _, tc := range tests {
		w := doJSON(t, r, http.MethodPost, "/api/v1/investments", tc.caller, tc.body)
		if w.Code != tc.want {
			t.Fatalf("%s: got %d, expected %d: %s", tc.name, w.Code, tc.want, w.Body.String())
		}
	}

	// Boundary fill succeeds and shows up in the campaign view.
	w = doJSON(t, r, http.MethodPost, "/api/v1/investments", "investor2",
		`{"projectId":1,"amount":400000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("boundary invest returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/campaign", "", "")
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected campaign payload: %v", resp.Data)
	}
	if raised, _ := data["raised"].(float64); raised != 500000 {
		t.Fatalf("expected raised 500000, got %v", data["raised"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/1/investments/investor1", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get investment returned %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/1/investments/nobody", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("absent investment returned %d, expected 404", w.Code)
	}
}

func TestCloseRoundOverHTTP(t *testing.T) {
	r := newTestServer(t)
	initializeCampaign(t, r)
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", "admin",
		`{"id":1,"name":"p","description":"","targetAmount":100}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add project returned %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/campaign/close", "admin", "")
	if w.Code != http.StatusOK {
		t.Fatalf("close returned %d: %s", w.Code, w.Body.String())
	}
	// Idempotent: a second close still succeeds.
	w = doJSON(t, r, http.MethodPost, "/api/v1/campaign/close", "admin", "")
	if w.Code != http.StatusOK {
		t.Fatalf("second close returned %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/investments", "investor3",
		`{"projectId":1,"amount":1}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("invest after close returned %d, expected 409", w.Code)
	}
}
