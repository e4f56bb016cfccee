//go:build unit

package notification_test

import (
	"errors"
	"testing"
	"time"

	"hecho-core/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	now := time.Date(2025, 11, 30, 10, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		n, err := notification.NewNotification(notification.Payload{
			UserID:  " user-1 ",
			Message: notification.Message{Title: "Hola", Type: notification.TypeInfo},
		}, now)
		require.NoError(t, err)

		assert.NotEmpty(t, n.ID())
		assert.Equal(t, "user-1", n.UserID())
		assert.False(t, n.Read())
		assert.NotNil(t, n.Metadata())
		assert.Empty(t, n.Metadata())
		assert.Nil(t, n.Link())
		assert.Equal(t, now, n.CreatedAt())
	})

	t.Run("link is trimmed and blank link dropped", func(t *testing.T) {
		link := " /tickets/1 "
		n, err := notification.NewNotification(notification.Payload{
			UserID:  "user-1",
			Message: notification.Message{Title: "t", Type: notification.TypeSuccess, Link: &link},
		}, now)
		require.NoError(t, err)
		require.NotNil(t, n.Link())
		assert.Equal(t, "/tickets/1", *n.Link())

		blank := "  "
		n, err = notification.NewNotification(notification.Payload{
			UserID:  "user-1",
			Message: notification.Message{Title: "t", Type: notification.TypeSuccess, Link: &blank},
		}, now)
		require.NoError(t, err)
		assert.Nil(t, n.Link())
	})

	tests := []struct {
		name  string
		p     notification.Payload
		errIs error
	}{
		{"missing user", notification.Payload{Message: notification.Message{Title: "t", Type: notification.TypeInfo}}, notification.ErrMissingUserID},
		{"missing title", notification.Payload{UserID: "u", Message: notification.Message{Title: " ", Type: notification.TypeInfo}}, notification.ErrMissingTitle},
		{"invalid type", notification.Payload{UserID: "u", Message: notification.Message{Title: "t", Type: "info"}}, notification.ErrInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := notification.NewNotification(tt.p, now)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestMessage_To(t *testing.T) {
	msg := notification.Message{Title: "t", Type: notification.TypeWarning}
	p := msg.To("user-9")
	assert.Equal(t, "user-9", p.UserID)
	assert.Equal(t, msg, p.Message)
}

func TestBroadcastReport(t *testing.T) {
	report := notification.BroadcastReport{
		Role:     "ADMIN",
		Targeted: 3,
		Deliveries: []notification.Delivery{
			{UserID: "a", NotificationID: "n-a"},
			{UserID: "b", Err: errors.New("boom")},
			{UserID: "c", NotificationID: "n-c"},
		},
	}
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 2, report.Succeeded())
	assert.True(t, report.Deliveries[0].OK())
	assert.False(t, report.Deliveries[1].OK())
}
