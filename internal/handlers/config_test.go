package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/robokit/robokit-backend/internal/configurator"
	"github.com/robokit/robokit-backend/internal/types"
)

type fakeConfigService struct {
	resp *types.ConfigResponse
	err  error
}

func (f *fakeConfigService) Generate(ctx context.Context, req *types.ConfigRequest) (*types.ConfigResponse, error) {
	return f.resp, f.err
}

func configTestRouter(svc *fakeConfigService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/config", NewConfigHandler(svc).Generate)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConfigHandlerReturnsResult(t *testing.T) {
	svc := &fakeConfigService{resp: &types.ConfigResponse{
		Selected:   []types.Part{{ID: 1, Name: "Medium Motor", UniqueID: "1-0"}},
		TotalPrice: 30,
	}}
	r := configTestRouter(svc)

	w := postJSON(t, r, "/config", map[string]any{"functions": []string{"drive"}, "budget": 100, "weight": 100})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp types.ConfigResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Selected) != 1 || resp.Selected[0].UniqueID != "1-0" {
		t.Fatalf("unexpected response payload: %+v", resp)
	}
}

func TestConfigHandlerRejectsBadBody(t *testing.T) {
	r := configTestRouter(&fakeConfigService{})
	req := httptest.NewRequest(http.MethodPost, "/config", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestConfigHandlerMapsEngineErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"missing input", configurator.ErrMissingInput, "missing_input"},
		{"budget", &configurator.BudgetError{Total: 120, Budget: 100}, "budget_exceeded"},
		{"weight", &configurator.WeightError{Total: 80, Limit: 50}, "weight_exceeded"},
		{"unavailable", &configurator.UnavailableError{Key: "controller"}, "component_unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := configTestRouter(&fakeConfigService{err: tc.err})
			w := postJSON(t, r, "/config", map[string]any{"functions": []string{"drive"}})
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var envelope struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if envelope.Error.Code != tc.wantCode {
				t.Fatalf("expected code %q, got %q", tc.wantCode, envelope.Error.Code)
			}
		})
	}
}
