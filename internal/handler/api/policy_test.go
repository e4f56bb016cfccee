//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hecho-core/internal/domain/policy"
	"hecho-core/internal/handler/api"
	resdto "hecho-core/internal/handler/dto/response"
	"hecho-core/tests/common/httptest"
	"hecho-core/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPolicyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	engine := policy.NewEngine(policy.DefaultRules(policy.DefaultThresholds())...)
	r.POST("/policy/evaluate", mockAuth(testPrincipal), api.NewPolicyHandler(engine).Evaluate)
	return r
}

func TestPolicyHandler_Evaluate(t *testing.T) {
	router := newPolicyRouter()
	base := map[string]any{
		"ticket": map[string]any{"id": "t-1", "number": "TK-2025-11-30-001"},
		"quote": map[string]any{
			"id":             "q-1",
			"number":         "COT-000043",
			"subtotal":       1000.0,
			"discount_total": 0.0,
			"total":          1000.0,
			"items":          []any{map[string]any{"description": "Filtro", "quantity": 1, "unit_price": 1000, "total": 1000}},
		},
	}

	t.Run("success: auto-approved quote", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/policy/evaluate", base, "bearer-token")

		var body resdto.DecisionResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.False(t, body.RequiresApproval)
		assert.Empty(t, body.RuleID)
	})

	t.Run("success: high value quote needs approval", func(t *testing.T) {
		req := testutil.DtoMap(t, base, func(m map[string]any) {
			q := m["quote"].(map[string]any)
			q["total"] = 20000.0
		})
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/policy/evaluate", req, "bearer-token")

		var body resdto.DecisionResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, resdto.DecisionResponse{
			RequiresApproval: true,
			Reason:           "HIGH_VALUE",
			RuleID:           policy.RuleHighValue,
			Details:          "Triggered by rule: High Value Quote",
		}, body)
	})

	t.Run("error: 400 without a quote", func(t *testing.T) {
		req := testutil.DtoMap(t, base, testutil.Field("quote", nil))
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/policy/evaluate", req, "bearer-token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})

	t.Run("error: 400 for a negative discount", func(t *testing.T) {
		req := testutil.DtoMap(t, base, func(m map[string]any) {
			m["quote"].(map[string]any)["discount_total"] = -5
		})
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/policy/evaluate", req, "bearer-token")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})
}
