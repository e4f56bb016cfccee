package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// created_at is assigned by the database.
const createNotification = `
INSERT INTO notifications (id, user_id, title, body, type, link, metadata, read)
VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
RETURNING created_at
`

type CreateNotificationParams struct {
	ID       pgtype.UUID
	UserID   string
	Title    string
	Body     string
	Type     string
	Link     pgtype.Text
	Metadata []byte
}

func (q *Queries) CreateNotification(ctx context.Context, db DBTX, arg CreateNotificationParams) (pgtype.Timestamptz, error) {
	row := db.QueryRow(ctx, createNotification,
		arg.ID,
		arg.UserID,
		arg.Title,
		arg.Body,
		arg.Type,
		arg.Link,
		arg.Metadata,
	)
	var createdAt pgtype.Timestamptz
	err := row.Scan(&createdAt)
	return createdAt, err
}

const listNotificationsByUser = `
SELECT id, user_id, title, body, type, link, metadata, read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`

func (q *Queries) ListNotificationsByUser(ctx context.Context, db DBTX, userID string, limit int32) ([]Notification, error) {
	rows, err := db.Query(ctx, listNotificationsByUser, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Notification
	for rows.Next() {
		var i Notification
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Title,
			&i.Body,
			&i.Type,
			&i.Link,
			&i.Metadata,
			&i.Read,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
