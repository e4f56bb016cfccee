package response

import (
	"hecho-core/internal/domain/policy"
)

type DecisionResponse struct {
	RequiresApproval bool   `json:"requires_approval"`
	Reason           string `json:"reason,omitempty"`
	RuleID           string `json:"rule_id,omitempty"`
	Details          string `json:"details,omitempty"`
}

func FromDecision(d policy.Decision) *DecisionResponse {
	return &DecisionResponse{
		RequiresApproval: d.RequiresApproval,
		Reason:           string(d.Reason),
		RuleID:           d.RuleID,
		Details:          d.Details,
	}
}
