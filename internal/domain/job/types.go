package job

type Type string

const (
	TypeExtractPaymentProof Type = "EXTRACT_PAYMENT_PROOF"
	TypeGeneratePDFReport   Type = "GENERATE_PDF_REPORT"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeExtractPaymentProof, TypeGeneratePDFReport:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Status transitions after QUEUED belong to the worker.
type Status string

const (
	StatusQueued    Status = "QUEUED"
	StatusRunning   Status = "RUNNING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
	StatusRetry     Status = "RETRY"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}
