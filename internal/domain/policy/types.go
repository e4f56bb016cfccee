package policy

type Reason string

const (
	ReasonHighValue            Reason = "HIGH_VALUE"
	ReasonDiscountExceedsLimit Reason = "DISCOUNT_EXCEEDS_LIMIT"
	ReasonCreditRisk           Reason = "CREDIT_RISK"
	ReasonCriticalItem         Reason = "CRITICAL_ITEM"
	ReasonManualOverride       Reason = "MANUAL_OVERRIDE"
)

type Ticket struct {
	ID       string
	Number   string
	ClientID string
	Status   string
}

type LineItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Total       float64
}

type Quote struct {
	ID            string
	Number        string
	Items         []LineItem
	Subtotal      float64
	TaxTotal      float64
	DiscountTotal float64
	Total         float64
}

// DiscountPercent is discount over subtotal in percent. ok is false for a zero subtotal.
func (q Quote) DiscountPercent() (pct float64, ok bool) {
	if q.Subtotal == 0 {
		return 0, false
	}
	return q.DiscountTotal / q.Subtotal * 100, true
}

type Decision struct {
	RequiresApproval bool
	Reason           Reason
	RuleID           string
	Details          string
}
