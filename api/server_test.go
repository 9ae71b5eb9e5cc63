package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vanzic/Project-Rivo/types"
)

type fakeStore struct {
	trends []types.TrendOutput
}

func (f *fakeStore) MarkSeen(_ context.Context, _ string) (bool, error) { return true, nil }

func (f *fakeStore) IncrementScore(_ context.Context, _, _, _ string) error { return nil }

func (f *fakeStore) TopTrends(_ context.Context, limit int) ([]types.TrendOutput, error) {
	if len(f.trends) > limit {
		return f.trends[:limit], nil
	}
	return f.trends, nil
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHealthRoutes(r)
	RegisterTrendRoutes(r, store)
	return r
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(&fakeStore{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("body %s", w.Body.String())
	}
}

func TestTopTrendsEndpoint(t *testing.T) {
	store := &fakeStore{trends: []types.TrendOutput{
		{TrendKey: "alpha", Score: 9},
		{TrendKey: "beta", Score: 4},
	}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trends/top?limit=1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body struct {
		Count  int                 `json:"count"`
		Trends []types.TrendOutput `json:"trends"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 1 || body.Trends[0].TrendKey != "alpha" {
		t.Errorf("response %+v", body)
	}
}

func TestRenderRejectsMissingTrendKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRenderRoutes(r, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render", strings.NewReader(`{"score":5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestTopTrendsRejectsBadLimit(t *testing.T) {
	r := newTestRouter(&fakeStore{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trends/top?limit=zero", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}
