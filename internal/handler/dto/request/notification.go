package request

import (
	"hecho-core/internal/domain/notification"
)

type MessageInput struct {
	Title    string         `json:"title" binding:"required,max=200"`
	Body     string         `json:"body" binding:"max=2000"`
	Type     string         `json:"type" binding:"required,oneof=INFO SUCCESS WARNING ERROR"`
	Link     *string        `json:"link" binding:"omitempty,max=500"`
	Metadata map[string]any `json:"metadata"`
}

func (m *MessageInput) ToDomain() notification.Message {
	return notification.Message{
		Title:    m.Title,
		Body:     m.Body,
		Type:     notification.Type(m.Type),
		Link:     m.Link,
		Metadata: m.Metadata,
	}
}

type SendNotificationRequest struct {
	UserID string `json:"user_id" binding:"required,max=128"`
	MessageInput
}

func (r *SendNotificationRequest) ToDomain() notification.Payload {
	return r.MessageInput.ToDomain().To(r.UserID)
}

type BroadcastNotificationRequest struct {
	Role string `json:"role" binding:"required"`
	MessageInput
}

type ListNotificationsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
