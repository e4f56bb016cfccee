package job

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType  = errors.New("invalid job type")
	ErrInvalidInput = errors.New("invalid job input")
	ErrMissingOrgID = errors.New("org id is required")
)

const DefaultMaxAttempts = 3

// Data is what a caller submits; everything else on a Job is assigned at creation.
type Data struct {
	Type      Type
	TicketID  *string
	PaymentID *string
	Input     json.RawMessage
}

type Job struct {
	id          string
	orgID       string
	jobType     Type
	ticketID    *string
	paymentID   *string
	input       json.RawMessage
	status      Status
	attempts    int
	maxAttempts int
	createdAt   time.Time
}

// NewJob validates data and returns a QUEUED job with a fresh id. Nothing is persisted.
func NewJob(orgID string, data Data, now time.Time) (*Job, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, ErrMissingOrgID
	}
	if !data.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if err := validateInput(data); err != nil {
		return nil, err
	}

	return &Job{
		id:          uuid.NewString(),
		orgID:       orgID,
		jobType:     data.Type,
		ticketID:    trimmed(data.TicketID),
		paymentID:   trimmed(data.PaymentID),
		input:       data.Input,
		status:      StatusQueued,
		attempts:    0,
		maxAttempts: DefaultMaxAttempts,
		createdAt:   now,
	}, nil
}

func (j *Job) ID() string             { return j.id }
func (j *Job) OrgID() string          { return j.orgID }
func (j *Job) Type() Type             { return j.jobType }
func (j *Job) TicketID() *string      { return j.ticketID }
func (j *Job) PaymentID() *string     { return j.paymentID }
func (j *Job) Input() json.RawMessage { return j.input }
func (j *Job) Status() Status         { return j.status }
func (j *Job) Attempts() int          { return j.attempts }
func (j *Job) MaxAttempts() int       { return j.maxAttempts }
func (j *Job) CreatedAt() time.Time   { return j.createdAt }

type paymentProofInput struct {
	ProofStoragePath string `json:"proofStoragePath"`
	MimeType         string `json:"mimeType"`
}

// Shape checks only; the worker owns full validation of the payload.
func validateInput(data Data) error {
	if len(data.Input) == 0 {
		return ErrInvalidInput
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data.Input, &obj); err != nil || obj == nil {
		return ErrInvalidInput
	}

	switch data.Type {
	case TypeExtractPaymentProof:
		if trimmed(data.PaymentID) == nil {
			return ErrInvalidInput
		}
		var in paymentProofInput
		if err := json.Unmarshal(data.Input, &in); err != nil {
			return ErrInvalidInput
		}
		if strings.TrimSpace(in.ProofStoragePath) == "" || strings.TrimSpace(in.MimeType) == "" {
			return ErrInvalidInput
		}
	case TypeGeneratePDFReport:
		if _, ok := obj["report"]; !ok {
			return ErrInvalidInput
		}
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
