package request

import (
	"encoding/json"

	"hecho-core/internal/domain/job"
)

type SubmitJobRequest struct {
	Type      string          `json:"type" binding:"required"`
	TicketID  *string         `json:"ticket_id" binding:"omitempty,max=128"`
	PaymentID *string         `json:"payment_id" binding:"omitempty,max=128"`
	Input     json.RawMessage `json:"input" binding:"required"`
}

func (r *SubmitJobRequest) ToDomain() job.Data {
	return job.Data{
		Type:      job.Type(r.Type),
		TicketID:  r.TicketID,
		PaymentID: r.PaymentID,
		Input:     r.Input,
	}
}
