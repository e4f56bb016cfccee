package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Job struct {
	ID           string
	OrgID        string
	Type         string
	TicketID     pgtype.Text
	PaymentID    pgtype.Text
	Input        []byte
	Status       string
	Attempts     int32
	MaxAttempts  int32
	ErrorMessage pgtype.Text
	Result       []byte
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Notification struct {
	ID        pgtype.UUID
	UserID    string
	Title     string
	Body      string
	Type      string
	Link      pgtype.Text
	Metadata  []byte
	Read      bool
	CreatedAt pgtype.Timestamptz
}

type User struct {
	ID    string
	OrgID string
	Role  string
}
