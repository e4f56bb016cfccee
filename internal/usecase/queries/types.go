package queries

import (
	"encoding/json"
	"time"
)

// JobView represents read-optimized job data
type JobView struct {
	ID           string          `json:"id"`
	OrgID        string          `json:"org_id"`
	Type         string          `json:"type"`
	TicketID     *string         `json:"ticket_id,omitempty"`
	PaymentID    *string         `json:"payment_id,omitempty"`
	Input        json.RawMessage `json:"input"`
	Status       string          `json:"status"`
	Attempts     int32           `json:"attempts"`
	MaxAttempts  int32           `json:"max_attempts"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	Result       json.RawMessage `json:"result,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NotificationView represents read-optimized notification data
type NotificationView struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Type      string         `json:"type"`
	Link      *string        `json:"link,omitempty"`
	Metadata  map[string]any `json:"metadata"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"created_at"`
}
