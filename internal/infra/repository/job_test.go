//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hecho-core/internal/domain/job"
	"hecho-core/internal/infra"
	"hecho-core/internal/infra/query"
	"hecho-core/internal/infra/repository"
	repositorymock "hecho-core/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPaymentProofJob(t *testing.T) *job.Job {
	t.Helper()
	paymentID := "pay-1"
	j, err := job.NewJob("org-1", job.Data{
		Type:      job.TypeExtractPaymentProof,
		PaymentID: &paymentID,
		Input:     json.RawMessage(`{"proofStoragePath":"p.png","mimeType":"image/png"}`),
	}, time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return j
}

func TestJobRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: maps the job onto insert params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockJobWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		j := newPaymentProofJob(t)

		mockQueries.EXPECT().CreateJob(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateJobParams) error {
				assert.Equal(t, j.ID(), arg.ID)
				assert.Equal(t, "org-1", arg.OrgID)
				assert.Equal(t, "EXTRACT_PAYMENT_PROOF", arg.Type)
				assert.Equal(t, "QUEUED", arg.Status)
				assert.Equal(t, int32(0), arg.Attempts)
				assert.Equal(t, int32(job.DefaultMaxAttempts), arg.MaxAttempts)
				assert.Equal(t, pgtype.Text{String: "pay-1", Valid: true}, arg.PaymentID)
				assert.False(t, arg.TicketID.Valid)
				assert.JSONEq(t, string(j.Input()), string(arg.Input))
				assert.True(t, arg.CreatedAt.Valid)
				assert.Equal(t, j.CreatedAt(), arg.CreatedAt.Time)
				return nil
			})

		require.NoError(t, repository.NewJobRepository(mockQueries).Create(ctx, mockDB, j))
	})

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{"error: database error occurs", errors.New("database connection error"), infra.KindDBFailure},
		{"error: duplicate id", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"error: foreign key violated", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockJobWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().CreateJob(ctx, mockDB, gomock.Any()).Return(tc.err)

			err := repository.NewJobRepository(mockQueries).Create(ctx, mockDB, newPaymentProofJob(t))
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
