package notificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID, id := uuid.New(), uuid.New()
	now := time.Now()
	url := "/dashboard/commissions"
	query := regexp.QuoteMeta("INSERT INTO notifications (user_id, title, message, type, action_url)")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Notification stored",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, "Commission Earned", "You earned $5.00", domain.NotificationCommissionEarned, &url).
					WillReturnRows(pgxmock.NewRows([]string{"id", "read", "created_at"}).AddRow(id, false, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, "Commission Earned", "You earned $5.00", domain.NotificationCommissionEarned, &url).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			n, err := repo.Create(context.Background(), &domain.Notification{
				UserID:    userID,
				Title:     "Commission Earned",
				Message:   "You earned $5.00",
				Type:      domain.NotificationCommissionEarned,
				ActionURL: &url,
			})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, id, n.ID)
			assert.False(t, n.Read)
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND ($2 = FALSE OR read = FALSE)")).
		WithArgs(userID, true, 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "message", "type", "read", "action_url", "created_at"}).
			AddRow(uuid.New(), userID, "Deposit Confirmed", "Your deposit was credited", domain.NotificationDepositConfirmed, false, nil, now))

	notifications, err := repo.ListByUser(context.Background(), userID, true, 20, 0)

	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Nil(t, notifications[0].ActionURL)
}

func TestRepository_CountUnread(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE")).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountUnread(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := NewMock(t)
	userID, id := uuid.New(), uuid.New()
	query := regexp.QuoteMeta("UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2")

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Marked",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Belongs to someone else",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			assert.Equal(t, tt.expectedErr, repo.MarkRead(context.Background(), userID, id))
		})
	}
}

func TestRepository_MarkAllRead(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE")).
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repo.MarkAllRead(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	userID, id := uuid.New(), uuid.New()
	query := regexp.QuoteMeta("DELETE FROM notifications WHERE id = $1 AND user_id = $2")

	mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), userID, id))

	mock.ExpectExec(query).WithArgs(id, userID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), userID, id), domain.ErrNotFound)
}
