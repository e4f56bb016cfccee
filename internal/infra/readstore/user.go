package readstore

import (
	"context"

	"hecho-core/internal/domain/user"
	"hecho-core/internal/infra"
	"hecho-core/internal/infra/query"
)

type UserReadQueries interface {
	ListActiveUsersByRole(ctx context.Context, db query.DBTX, role string) ([]query.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByRole returns active users holding role. Rows with a role the domain
// no longer knows are skipped.
func (r *UserReadStore) FindByRole(ctx context.Context, role user.Role) ([]user.Recipient, error) {
	rows, err := r.queries.ListActiveUsersByRole(ctx, r.db, role.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users by role", err)
	}

	recipients := make([]user.Recipient, 0, len(rows))
	for _, row := range rows {
		rr, err := user.NewRole(row.Role)
		if err != nil {
			continue
		}
		recipients = append(recipients, user.Recipient{ID: row.ID, OrgID: row.OrgID, Role: rr})
	}
	return recipients, nil
}
