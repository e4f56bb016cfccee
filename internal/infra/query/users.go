package query

import (
	"context"
)

const listActiveUsersByRole = `
SELECT id, org_id, role
FROM users
WHERE role = $1 AND is_active
ORDER BY id
`

func (q *Queries) ListActiveUsersByRole(ctx context.Context, db DBTX, role string) ([]User, error) {
	rows, err := db.Query(ctx, listActiveUsersByRole, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.OrgID, &i.Role); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
