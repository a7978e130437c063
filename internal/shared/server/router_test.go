package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"legilight-backend/internal/samples"
	"legilight-backend/internal/shared/config"
)

func TestHealthReportsServiceStatus(t *testing.T) {
	router := NewRouter(RouterDeps{
		Config:         config.Config{Env: "dev"},
		SamplesHandler: samples.NewHandler(),
		AIReady:        func() bool { return false },
		DBConnected:    false,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Status   string `json:"status"`
		Services struct {
			AIAnalysis bool   `json:"ai_analysis"`
			Database   bool   `json:"database"`
			Timestamp  string `json:"timestamp"`
		} `json:"services"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Status != "healthy" {
		t.Fatalf("unexpected status: %q", payload.Status)
	}
	if payload.Services.AIAnalysis {
		t.Fatalf("expected ai_analysis false without model client")
	}
	if payload.Services.Timestamp == "" {
		t.Fatalf("expected timestamp")
	}
}

func TestRootWelcomeMessage(t *testing.T) {
	router := NewRouter(RouterDeps{Config: config.Config{Env: "production"}})

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["message"] == "" {
		t.Fatalf("expected welcome message")
	}
}

func TestMetricsOnlyInDev(t *testing.T) {
	dev := NewRouter(RouterDeps{Config: config.Config{Env: "dev"}})
	prod := NewRouter(RouterDeps{Config: config.Config{Env: "production"}})

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	resp := httptest.NewRecorder()
	dev.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 in dev, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	prod.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 in production, got %d", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":7000": ":7000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
