// Package policy decides whether a quote needs human sign-off.
//
// Rules are evaluated highest priority first and the first match wins, so
// only one reason is ever reported. Rules with equal priority keep the order
// they were registered in. Evaluation performs no I/O.
package policy

import (
	"sort"
	"strings"
)

type Condition func(ticket Ticket, quote Quote) bool

type Rule struct {
	ID        string
	Name      string
	Priority  int
	Reason    Reason
	Condition Condition
}

// Engine holds an immutable rule set, sorted once at construction.
type Engine struct {
	rules []Rule
}

func NewEngine(rules ...Rule) *Engine {
	sorted := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Condition == nil {
			continue
		}
		sorted = append(sorted, r)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &Engine{rules: sorted}
}

// Rules returns the rule set in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

func (e *Engine) Evaluate(ticket Ticket, quote Quote) Decision {
	for _, rule := range e.rules {
		if rule.Condition(ticket, quote) {
			return Decision{
				RequiresApproval: true,
				Reason:           rule.Reason,
				RuleID:           rule.ID,
				Details:          "Triggered by rule: " + rule.Name,
			}
		}
	}
	return Decision{RequiresApproval: false}
}

type Thresholds struct {
	MaxAutoApproveAmount float64
	MaxDiscountPercent   float64
	CriticalKeywords     []string
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxAutoApproveAmount: 15000,
		MaxDiscountPercent:   10,
		CriticalKeywords:     []string{"compresor", "motor"},
	}
}

const (
	RuleHighValue    = "RULE_HIGH_VALUE"
	RuleHighDiscount = "RULE_HIGH_DISCOUNT"
	RuleCriticalItem = "RULE_CRITICAL_ITEM"
)

func DefaultRules(t Thresholds) []Rule {
	keywords := make([]string, 0, len(t.CriticalKeywords))
	for _, k := range t.CriticalKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}

	return []Rule{
		{
			ID:       RuleHighValue,
			Name:     "High Value Quote",
			Priority: 100,
			Reason:   ReasonHighValue,
			Condition: func(_ Ticket, q Quote) bool {
				return q.Total > t.MaxAutoApproveAmount
			},
		},
		{
			ID:       RuleHighDiscount,
			Name:     "Excessive Discount",
			Priority: 90,
			Reason:   ReasonDiscountExceedsLimit,
			Condition: func(_ Ticket, q Quote) bool {
				pct, ok := q.DiscountPercent()
				return ok && pct > t.MaxDiscountPercent
			},
		},
		{
			ID:       RuleCriticalItem,
			Name:     "Critical Item",
			Priority: 80,
			Reason:   ReasonCriticalItem,
			Condition: func(_ Ticket, q Quote) bool {
				for _, item := range q.Items {
					desc := strings.ToLower(item.Description)
					for _, k := range keywords {
						if strings.Contains(desc, k) {
							return true
						}
					}
				}
				return false
			},
		},
	}
}
