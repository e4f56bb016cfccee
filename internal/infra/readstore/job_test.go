//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hecho-core/internal/infra"
	"hecho-core/internal/infra/query"
	"hecho-core/internal/infra/readstore"
	"hecho-core/internal/pkg/pgconv"
	"hecho-core/internal/usecase/queries"
	readstoremock "hecho-core/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var jobCreatedAt = time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC)

func jobRow(id string) query.Job {
	return query.Job{
		ID:           id,
		OrgID:        "org-1",
		Type:         "EXTRACT_PAYMENT_PROOF",
		PaymentID:    pgtype.Text{String: "pay-1", Valid: true},
		Input:        []byte(`{"proofStoragePath":"p.png","mimeType":"image/png"}`),
		Status:       "FAILED",
		Attempts:     3,
		MaxAttempts:  3,
		ErrorMessage: pgtype.Text{String: "unreadable image", Valid: true},
		CreatedAt:    pgconv.TimeToPgtype(jobCreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(jobCreatedAt.Add(time.Minute)),
	}
}

func TestJobReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row is mapped to a view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockJobViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetJobByID(ctx, mockDB, "org-1", "job-1").Return(jobRow("job-1"), nil)

		got, err := readstore.NewJobReadStore(mockQueries, mockDB).FindByID(ctx, "org-1", "job-1")
		require.NoError(t, err)

		paymentID, errMsg := "pay-1", "unreadable image"
		want := &queries.JobView{
			ID:           "job-1",
			OrgID:        "org-1",
			Type:         "EXTRACT_PAYMENT_PROOF",
			PaymentID:    &paymentID,
			Input:        []byte(`{"proofStoragePath":"p.png","mimeType":"image/png"}`),
			Status:       "FAILED",
			Attempts:     3,
			MaxAttempts:  3,
			ErrorMessage: &errMsg,
			CreatedAt:    jobCreatedAt,
			UpdatedAt:    jobCreatedAt.Add(time.Minute),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("JobView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: no rows is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockJobViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetJobByID(ctx, mockDB, "org-2", "job-1").Return(query.Job{}, pgx.ErrNoRows)

		got, err := readstore.NewJobReadStore(mockQueries, mockDB).FindByID(ctx, "org-2", "job-1")
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockJobViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().GetJobByID(ctx, mockDB, "org-1", "job-1").Return(query.Job{}, errors.New("connection reset"))

		_, err := readstore.NewJobReadStore(mockQueries, mockDB).FindByID(ctx, "org-1", "job-1")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestJobReadStore_ListStaleQueued(t *testing.T) {
	ctx := context.Background()
	cutoff := jobCreatedAt.Add(-2 * time.Minute)

	t.Run("success: passes cutoff and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockJobViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().
			ListStaleQueuedJobs(ctx, mockDB, query.ListStaleQueuedJobsParams{CreatedBefore: pgconv.TimeToPgtype(cutoff), Limit: 10}).
			Return([]query.Job{jobRow("job-1"), jobRow("job-2")}, nil)

		got, err := readstore.NewJobReadStore(mockQueries, mockDB).ListStaleQueued(ctx, cutoff, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "job-1", got[0].ID)
		assert.Equal(t, "job-2", got[1].ID)
	})

	t.Run("success: empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockJobViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListStaleQueuedJobs(ctx, mockDB, gomock.Any()).Return(nil, nil)

		got, err := readstore.NewJobReadStore(mockQueries, mockDB).ListStaleQueued(ctx, cutoff, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockJobViewQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ListStaleQueuedJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := readstore.NewJobReadStore(mockQueries, mockDB).ListStaleQueued(ctx, cutoff, 10)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
