package response

import (
	"hecho-core/internal/domain/notification"
	"hecho-core/internal/usecase/queries"
)

type DeliveryResponse struct {
	UserID         string `json:"user_id"`
	NotificationID string `json:"notification_id,omitempty"`
	OK             bool   `json:"ok"`
	Error          string `json:"error,omitempty"`
}

func FromDelivery(d notification.Delivery) DeliveryResponse {
	res := DeliveryResponse{
		UserID:         d.UserID,
		NotificationID: d.NotificationID,
		OK:             d.OK(),
	}
	if d.Err != nil {
		res.Error = d.Err.Error()
	}
	return res
}

type BroadcastResponse struct {
	Role       string             `json:"role"`
	Targeted   int                `json:"targeted"`
	Succeeded  int                `json:"succeeded"`
	Failed     int                `json:"failed"`
	Deliveries []DeliveryResponse `json:"deliveries"`
}

func FromBroadcastReport(r notification.BroadcastReport) *BroadcastResponse {
	deliveries := make([]DeliveryResponse, len(r.Deliveries))
	for i, d := range r.Deliveries {
		deliveries[i] = FromDelivery(d)
	}
	return &BroadcastResponse{
		Role:       r.Role,
		Targeted:   r.Targeted,
		Succeeded:  r.Succeeded(),
		Failed:     r.Failed(),
		Deliveries: deliveries,
	}
}

type NotificationResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Type      string         `json:"type"`
	Link      *string        `json:"link,omitempty"`
	Metadata  map[string]any `json:"metadata"`
	Read      bool           `json:"read"`
	CreatedAt int64          `json:"created_at"`
}

func FromNotificationList(items []*queries.NotificationView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(items))
	for i, it := range items {
		res[i] = &NotificationResponse{
			ID:        it.ID,
			Title:     it.Title,
			Body:      it.Body,
			Type:      it.Type,
			Link:      it.Link,
			Metadata:  it.Metadata,
			Read:      it.Read,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}
