package samples

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestContractsAreAnalyzable(t *testing.T) {
	contracts := Contracts()
	if len(contracts) != 2 {
		t.Fatalf("expected 2 sample contracts, got %d", len(contracts))
	}
	for _, c := range contracts {
		if c.ID == "" || c.Name == "" || c.Description == "" {
			t.Fatalf("incomplete contract metadata: %+v", c)
		}
		if len(c.Text) < 10 {
			t.Fatalf("contract %s text too short for analysis", c.ID)
		}
	}
	if !strings.Contains(contracts[0].Text, "$120,000") {
		t.Fatalf("employment sample missing salary")
	}
	if !strings.Contains(contracts[1].Text, "WebDesign LLC") {
		t.Fatalf("service sample missing provider")
	}
}

func TestSampleContractsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler().RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/sample-contracts", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Success         bool       `json:"success"`
		SampleContracts []Contract `json:"sample_contracts"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || len(payload.SampleContracts) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
