package request

import (
	"hecho-core/internal/domain/policy"
)

type TicketInput struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	ClientID string `json:"client_id"`
	Status   string `json:"status"`
}

type LineItemInput struct {
	Description string  `json:"description" binding:"max=500"`
	Quantity    float64 `json:"quantity" binding:"min=0"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteInput struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	Items         []LineItemInput `json:"items" binding:"omitempty,dive"`
	Subtotal      float64         `json:"subtotal"`
	TaxTotal      float64         `json:"tax_total"`
	DiscountTotal float64         `json:"discount_total" binding:"min=0"`
	Total         float64         `json:"total"`
}

type EvaluatePolicyRequest struct {
	Ticket TicketInput `json:"ticket"`
	Quote  *QuoteInput `json:"quote" binding:"required"`
}

func (r *EvaluatePolicyRequest) ToDomain() (policy.Ticket, policy.Quote) {
	items := make([]policy.LineItem, len(r.Quote.Items))
	for i, it := range r.Quote.Items {
		items[i] = policy.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}

	ticket := policy.Ticket{
		ID:       r.Ticket.ID,
		Number:   r.Ticket.Number,
		ClientID: r.Ticket.ClientID,
		Status:   r.Ticket.Status,
	}
	quote := policy.Quote{
		ID:            r.Quote.ID,
		Number:        r.Quote.Number,
		Items:         items,
		Subtotal:      r.Quote.Subtotal,
		TaxTotal:      r.Quote.TaxTotal,
		DiscountTotal: r.Quote.DiscountTotal,
		Total:         r.Quote.Total,
	}
	return ticket, quote
}
