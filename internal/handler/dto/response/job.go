package response

import (
	"encoding/json"

	"hecho-core/internal/domain/job"
	"hecho-core/internal/usecase/queries"
)

type JobAcceptedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func NewJobAccepted(id string) *JobAcceptedResponse {
	return &JobAcceptedResponse{ID: id, Status: string(job.StatusQueued)}
}

type JobResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	TicketID     *string         `json:"ticket_id,omitempty"`
	PaymentID    *string         `json:"payment_id,omitempty"`
	Status       string          `json:"status"`
	Attempts     int32           `json:"attempts"`
	MaxAttempts  int32           `json:"max_attempts"`
	ErrorMessage *string         `json:"error,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
	CreatedAt    int64           `json:"created_at"`
	UpdatedAt    int64           `json:"updated_at"`
}

func FromJobView(v *queries.JobView) *JobResponse {
	return &JobResponse{
		ID:           v.ID,
		Type:         v.Type,
		TicketID:     v.TicketID,
		PaymentID:    v.PaymentID,
		Status:       v.Status,
		Attempts:     v.Attempts,
		MaxAttempts:  v.MaxAttempts,
		ErrorMessage: v.ErrorMessage,
		Result:       v.Result,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}
