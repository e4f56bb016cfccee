//go:build unit

package policy_test

import (
	"testing"

	"hecho-core/internal/domain/policy"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func quote(total, subtotal, discount float64, items ...string) policy.Quote {
	q := policy.Quote{ID: "q-1", Number: "COT-000001", Total: total, Subtotal: subtotal, DiscountTotal: discount}
	for _, d := range items {
		q.Items = append(q.Items, policy.LineItem{Description: d, Quantity: 1, UnitPrice: 100, Total: 100})
	}
	return q
}

func TestEngine_DefaultRules(t *testing.T) {
	engine := policy.NewEngine(policy.DefaultRules(policy.DefaultThresholds())...)
	ticket := policy.Ticket{ID: "t-1", Number: "TK-2025-11-30-001"}

	tests := []struct {
		name  string
		quote policy.Quote
		want  policy.Decision
	}{
		{
			name:  "small quote without discount is auto-approved",
			quote: quote(1000, 1000, 0, "Mantenimiento preventivo"),
			want:  policy.Decision{RequiresApproval: false},
		},
		{
			name:  "total above limit requires approval",
			quote: quote(20000, 20000, 0, "Cambio de filtro"),
			want: policy.Decision{
				RequiresApproval: true,
				Reason:           policy.ReasonHighValue,
				RuleID:           policy.RuleHighValue,
				Details:          "Triggered by rule: High Value Quote",
			},
		},
		{
			name:  "total equal to limit is not high value",
			quote: quote(15000, 15000, 0, "Cambio de filtro"),
			want:  policy.Decision{RequiresApproval: false},
		},
		{
			name:  "discount above ten percent requires approval",
			quote: quote(1000, 1000, 150, "Cambio de filtro"),
			want: policy.Decision{
				RequiresApproval: true,
				Reason:           policy.ReasonDiscountExceedsLimit,
				RuleID:           policy.RuleHighDiscount,
				Details:          "Triggered by rule: Excessive Discount",
			},
		},
		{
			name:  "discount of exactly ten percent passes",
			quote: quote(900, 1000, 100, "Cambio de filtro"),
			want:  policy.Decision{RequiresApproval: false},
		},
		{
			name:  "zero subtotal never triggers the discount rule",
			quote: quote(0, 0, 50),
			want:  policy.Decision{RequiresApproval: false},
		},
		{
			name:  "critical keyword matches case-insensitively",
			quote: quote(500, 500, 0, "Reparación de COMPRESOR"),
			want: policy.Decision{
				RequiresApproval: true,
				Reason:           policy.ReasonCriticalItem,
				RuleID:           policy.RuleCriticalItem,
				Details:          "Triggered by rule: Critical Item",
			},
		},
		{
			name:  "high value wins over discount and critical item",
			quote: quote(30000, 30000, 10000, "motor eléctrico"),
			want: policy.Decision{
				RequiresApproval: true,
				Reason:           policy.ReasonHighValue,
				RuleID:           policy.RuleHighValue,
				Details:          "Triggered by rule: High Value Quote",
			},
		},
		{
			name:  "discount wins over critical item",
			quote: quote(1000, 1000, 500, "motor"),
			want: policy.Decision{
				RequiresApproval: true,
				Reason:           policy.ReasonDiscountExceedsLimit,
				RuleID:           policy.RuleHighDiscount,
				Details:          "Triggered by rule: Excessive Discount",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(ticket, tt.quote)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decision mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_Ordering(t *testing.T) {
	always := func(policy.Ticket, policy.Quote) bool { return true }

	t.Run("higher priority evaluated first regardless of registration order", func(t *testing.T) {
		engine := policy.NewEngine(
			policy.Rule{ID: "LOW", Name: "low", Priority: 1, Reason: policy.ReasonCreditRisk, Condition: always},
			policy.Rule{ID: "HIGH", Name: "high", Priority: 50, Reason: policy.ReasonManualOverride, Condition: always},
		)
		got := engine.Evaluate(policy.Ticket{}, policy.Quote{})
		assert.Equal(t, "HIGH", got.RuleID)
		assert.Equal(t, policy.ReasonManualOverride, got.Reason)
	})

	t.Run("equal priority keeps registration order", func(t *testing.T) {
		engine := policy.NewEngine(
			policy.Rule{ID: "FIRST", Priority: 10, Condition: always},
			policy.Rule{ID: "SECOND", Priority: 10, Condition: always},
		)
		got := engine.Evaluate(policy.Ticket{}, policy.Quote{})
		assert.Equal(t, "FIRST", got.RuleID)

		ids := make([]string, 0, 2)
		for _, r := range engine.Rules() {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"FIRST", "SECOND"}, ids)
	})

	t.Run("rules without a condition are ignored", func(t *testing.T) {
		engine := policy.NewEngine(policy.Rule{ID: "BROKEN", Priority: 99})
		assert.Empty(t, engine.Rules())
		assert.False(t, engine.Evaluate(policy.Ticket{}, policy.Quote{}).RequiresApproval)
	})

	t.Run("empty engine approves everything", func(t *testing.T) {
		engine := policy.NewEngine()
		got := engine.Evaluate(policy.Ticket{}, quote(1e9, 1, 1, "motor"))
		assert.Equal(t, policy.Decision{}, got)
	})
}

func TestDefaultRules_CustomThresholds(t *testing.T) {
	engine := policy.NewEngine(policy.DefaultRules(policy.Thresholds{
		MaxAutoApproveAmount: 100,
		MaxDiscountPercent:   50,
		CriticalKeywords:     []string{"  Bomba ", ""},
	})...)

	assert.Equal(t, policy.RuleHighValue, engine.Evaluate(policy.Ticket{}, quote(101, 101, 0)).RuleID)
	assert.False(t, engine.Evaluate(policy.Ticket{}, quote(90, 100, 40)).RequiresApproval)
	assert.Equal(t, policy.RuleCriticalItem, engine.Evaluate(policy.Ticket{}, quote(10, 10, 0, "bomba de agua")).RuleID)
	assert.False(t, engine.Evaluate(policy.Ticket{}, quote(10, 10, 0, "motor")).RequiresApproval)
}

func TestQuote_DiscountPercent(t *testing.T) {
	pct, ok := policy.Quote{Subtotal: 200, DiscountTotal: 30}.DiscountPercent()
	assert.True(t, ok)
	assert.InDelta(t, 15.0, pct, 1e-9)

	_, ok = policy.Quote{Subtotal: 0, DiscountTotal: 30}.DiscountPercent()
	assert.False(t, ok)
}
