package commissionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commissionRow = []string{"id", "referral_id", "user_id", "referred_user_id", "amount", "rate_applied", "source_amount",
	"status", "source_kind", "source_id", "rejection_reason", "created_at", "updated_at", "paid_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func commissionFixture(status domain.CommissionStatus) *domain.Commission {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Commission{
		ID:             uuid.New(),
		ReferralID:     uuid.New(),
		UserID:         uuid.New(),
		ReferredUserID: uuid.New(),
		Amount:         decimal.NewFromInt(50),
		RateApplied:    decimal.NewFromInt(5),
		SourceAmount:   decimal.NewFromInt(1000),
		Status:         status,
		Source:         domain.CommissionSource{Kind: domain.SourceProperty, ID: "prop-1"},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func rowOf(c *domain.Commission) *pgxmock.Rows {
	return pgxmock.NewRows(commissionRow).AddRow(
		c.ID, c.ReferralID, c.UserID, c.ReferredUserID, c.Amount, c.RateApplied, c.SourceAmount,
		c.Status, c.Source.Kind, c.Source.ID, c.RejectionReason, c.CreatedAt, c.UpdatedAt, c.PaidAt,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("ON CONFLICT (source_kind, source_id) DO NOTHING RETURNING id, created_at, updated_at")

	tests := []struct {
		name        string
		mockSetup   func(c *domain.Commission)
		expectedErr error
	}{
		{
			name: "Commission created",
			mockSetup: func(c *domain.Commission) {
				mock.ExpectQuery(query).
					WithArgs(c.ReferralID, c.UserID, c.ReferredUserID, c.Amount, c.RateApplied, c.SourceAmount, c.Status, c.Source.Kind, c.Source.ID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New(), time.Now(), time.Now()))
			},
		},
		{
			name: "Source already used",
			mockSetup: func(c *domain.Commission) {
				mock.ExpectQuery(query).
					WithArgs(c.ReferralID, c.UserID, c.ReferredUserID, c.Amount, c.RateApplied, c.SourceAmount, c.Status, c.Source.Kind, c.Source.ID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: domain.ErrDuplicateSource,
		},
		{
			name: "Database error",
			mockSetup: func(c *domain.Commission) {
				mock.ExpectQuery(query).
					WithArgs(c.ReferralID, c.UserID, c.ReferredUserID, c.Amount, c.RateApplied, c.SourceAmount, c.Status, c.Source.Kind, c.Source.ID).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := commissionFixture(domain.CommissionPending)
			c.ID = uuid.Nil
			tt.mockSetup(c)

			result, err := repo.Create(context.Background(), c)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	c := commissionFixture(domain.CommissionPending)
	query := regexp.QuoteMeta("FROM commissions WHERE id = $1 FOR UPDATE")

	mock.ExpectQuery(query).WithArgs(c.ID).WillReturnRows(rowOf(c))
	result, err := repo.GetForUpdate(context.Background(), c.ID)
	assert.NoError(t, err)
	assert.Equal(t, c, result)

	mock.ExpectQuery(query).WithArgs(c.ID).WillReturnError(pgx.ErrNoRows)
	result, err = repo.GetForUpdate(context.Background(), c.ID)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE commissions SET status = $1")
	paidAt := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	reason := "self-referral"

	tests := []struct {
		name        string
		status      domain.CommissionStatus
		reason      *string
		paidAt      *time.Time
		mockSetup   func(c *domain.Commission)
		expectedErr error
	}{
		{
			name:   "Approve stamps paid_at",
			status: domain.CommissionApproved,
			paidAt: &paidAt,
			mockSetup: func(c *domain.Commission) {
				updated := *c
				updated.Status = domain.CommissionApproved
				updated.PaidAt = &paidAt
				mock.ExpectQuery(query).WithArgs(domain.CommissionApproved, (*string)(nil), &paidAt, c.ID).WillReturnRows(rowOf(&updated))
			},
		},
		{
			name:   "Reject records reason",
			status: domain.CommissionRejected,
			reason: &reason,
			mockSetup: func(c *domain.Commission) {
				updated := *c
				updated.Status = domain.CommissionRejected
				updated.RejectionReason = &reason
				mock.ExpectQuery(query).WithArgs(domain.CommissionRejected, &reason, (*time.Time)(nil), c.ID).WillReturnRows(rowOf(&updated))
			},
		},
		{
			name:   "Missing commission",
			status: domain.CommissionApproved,
			paidAt: &paidAt,
			mockSetup: func(c *domain.Commission) {
				mock.ExpectQuery(query).WithArgs(domain.CommissionApproved, (*string)(nil), &paidAt, c.ID).WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := commissionFixture(domain.CommissionPending)
			tt.mockSetup(c)

			result, err := repo.UpdateStatus(context.Background(), c.ID, tt.status, tt.reason, tt.paidAt)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.reason, result.RejectionReason)
			assert.Equal(t, tt.paidAt, result.PaidAt)
		})
	}
}

func TestRepository_List(t *testing.T) {
	pending := domain.CommissionPending
	userID := uuid.New()

	tests := []struct {
		name   string
		filter domain.CommissionFilter
		query  string
		args   []any
	}{
		{
			name:   "All commissions",
			filter: domain.CommissionFilter{},
			query:  "FROM commissions ORDER BY created_at DESC",
		},
		{
			name:   "By status with paging",
			filter: domain.CommissionFilter{Status: &pending, Limit: 10, Offset: 20},
			query:  "FROM commissions WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
			args:   []any{pending, 10, 20},
		},
		{
			name:   "By status and referrer",
			filter: domain.CommissionFilter{Status: &pending, UserID: &userID},
			query:  "FROM commissions WHERE status = $1 AND user_id = $2 ORDER BY created_at DESC",
			args:   []any{pending, userID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			c := commissionFixture(domain.CommissionPending)
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...).WillReturnRows(rowOf(c))

			result, err := repo.List(context.Background(), tt.filter)

			assert.NoError(t, err)
			assert.Equal(t, []domain.Commission{*c}, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Summary(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM commissions WHERE user_id = $1 GROUP BY status")).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"status", "sum", "count"}).
			AddRow(domain.CommissionPending, decimal.NewFromInt(30), 2).
			AddRow(domain.CommissionApproved, decimal.NewFromInt(50), 1))

	summary, err := repo.Summary(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(summary.Pending))
	assert.True(t, decimal.NewFromInt(50).Equal(summary.Approved))
	assert.True(t, summary.Rejected.IsZero())
	assert.Equal(t, 3, summary.Count)
}
