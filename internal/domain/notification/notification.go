package notification

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingUserID = errors.New("user id is required")
	ErrMissingTitle  = errors.New("title is required")
	ErrInvalidType   = errors.New("invalid notification type")
)

type Type string

const (
	TypeInfo    Type = "INFO"
	TypeSuccess Type = "SUCCESS"
	TypeWarning Type = "WARNING"
	TypeError   Type = "ERROR"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	default:
		return false
	}
}

// Message is the recipient-independent part of a notification, used for broadcasts.
type Message struct {
	Title    string
	Body     string
	Type     Type
	Link     *string
	Metadata map[string]any
}

type Payload struct {
	UserID string
	Message
}

func (m Message) To(userID string) Payload {
	return Payload{UserID: userID, Message: m}
}

type Notification struct {
	id        string
	userID    string
	title     string
	body      string
	kind      Type
	link      *string
	metadata  map[string]any
	read      bool
	createdAt time.Time
}

// NewNotification builds an unread record for p.UserID. Metadata defaults to an empty object.
func NewNotification(p Payload, now time.Time) (*Notification, error) {
	userID := strings.TrimSpace(p.UserID)
	if userID == "" {
		return nil, ErrMissingUserID
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, ErrMissingTitle
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}

	metadata := p.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	var link *string
	if p.Link != nil && strings.TrimSpace(*p.Link) != "" {
		l := strings.TrimSpace(*p.Link)
		link = &l
	}

	return &Notification{
		id:        uuid.NewString(),
		userID:    userID,
		title:     p.Title,
		body:      p.Body,
		kind:      p.Type,
		link:      link,
		metadata:  metadata,
		read:      false,
		createdAt: now,
	}, nil
}

func (n *Notification) ID() string               { return n.id }
func (n *Notification) UserID() string           { return n.userID }
func (n *Notification) Title() string            { return n.title }
func (n *Notification) Body() string             { return n.body }
func (n *Notification) Type() Type               { return n.kind }
func (n *Notification) Link() *string            { return n.link }
func (n *Notification) Metadata() map[string]any { return n.metadata }
func (n *Notification) Read() bool               { return n.read }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
