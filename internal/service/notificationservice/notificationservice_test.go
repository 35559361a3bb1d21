package notificationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo, *MockDispatcher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	dispatcher := NewMockDispatcher(ctrl)
	return New(repo, userRepo, dispatcher), repo, userRepo, dispatcher
}

func TestNotify(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		input         domain.Notification
		prepareMock   func(repo *MockRepo, dispatcher *MockDispatcher)
		expectedError error
	}{
		{
			name:  "Stored and dispatched",
			input: domain.Notification{UserID: userID, Title: "Deposit Confirmed", Message: "ok", Type: domain.NotificationDepositConfirmed},
			prepareMock: func(repo *MockRepo, dispatcher *MockDispatcher) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
					n.ID = uuid.New()
					return n, nil
				})
				dispatcher.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n domain.Notification) {
					assert.Equal(t, domain.NotificationDepositConfirmed, n.Type)
					assert.NotEqual(t, uuid.Nil, n.ID)
				})
			},
		},
		{
			name:  "Untyped defaults to system",
			input: domain.Notification{UserID: userID, Title: "Maintenance"},
			prepareMock: func(repo *MockRepo, dispatcher *MockDispatcher) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
					assert.Equal(t, domain.NotificationSystem, n.Type)
					return n, nil
				})
				dispatcher.EXPECT().Enqueue(gomock.Any(), gomock.Any())
			},
		},
		{
			name:  "Store failure is not dispatched",
			input: domain.Notification{UserID: userID, Title: "Deposit Confirmed"},
			prepareMock: func(repo *MockRepo, dispatcher *MockDispatcher) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:          "Missing title",
			input:         domain.Notification{UserID: userID},
			prepareMock:   func(repo *MockRepo, dispatcher *MockDispatcher) {},
			expectedError: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _, dispatcher := NewMock(t)
			tt.prepareMock(repo, dispatcher)

			result, err := service.Notify(context.Background(), tt.input)
			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, domain.ErrInvalidInput) {
					assert.ErrorIs(t, err, domain.ErrInvalidInput)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

func TestNotify_DispatchWaitsForCommit(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	txManager := pg.NewTXManager(mockDB)
	service, repo, _, dispatcher := NewMock(t)
	userID := uuid.New()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
		return n, nil
	}).Times(2)

	t.Run("Rolled back transaction never dispatches", func(t *testing.T) {
		abort := errors.New("aborted")
		mockDB.ExpectBegin()
		mockDB.ExpectRollback()

		err := txManager.Begin(context.Background(), func(ctx context.Context) error {
			_, err := service.Notify(ctx, domain.Notification{UserID: userID, Title: "Commission Approved"})
			require.NoError(t, err)
			return abort
		})

		assert.ErrorIs(t, err, abort)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Committed transaction dispatches after commit", func(t *testing.T) {
		committed := false
		mockDB.ExpectBegin()
		mockDB.ExpectCommit()
		dispatcher.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Do(func(context.Context, domain.Notification) {
			committed = true
		})

		err := txManager.Begin(context.Background(), func(ctx context.Context) error {
			_, err := service.Notify(ctx, domain.Notification{UserID: userID, Title: "Commission Approved"})
			assert.False(t, committed)
			return err
		})

		assert.NoError(t, err)
		assert.True(t, committed)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestList_Paging(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	userID := uuid.New()

	repo.EXPECT().ListByUser(gomock.Any(), userID, true, defaultPageSize, 0).Return(nil, nil)
	repo.EXPECT().ListByUser(gomock.Any(), userID, false, maxPageSize, 10).Return([]domain.Notification{{ID: uuid.New()}}, nil)

	_, err := service.List(context.Background(), userID, true, 0, -5)
	assert.NoError(t, err)

	result, err := service.List(context.Background(), userID, false, 1000, 10)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestUserOperations(t *testing.T) {
	service, repo, userRepo, _ := NewMock(t)
	userID, id := uuid.New(), uuid.New()

	repo.EXPECT().CountUnread(gomock.Any(), userID).Return(3, nil)
	repo.EXPECT().MarkRead(gomock.Any(), userID, id).Return(domain.ErrNotFound)
	repo.EXPECT().MarkAllRead(gomock.Any(), userID).Return(int64(3), nil)
	repo.EXPECT().Delete(gomock.Any(), userID, id).Return(nil)
	userRepo.EXPECT().UpdatePushToken(gomock.Any(), userID, "token").Return(nil)

	count, err := service.UnreadCount(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.ErrorIs(t, service.MarkRead(context.Background(), userID, id), domain.ErrNotFound)

	marked, err := service.MarkAllRead(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), marked)

	assert.NoError(t, service.Delete(context.Background(), userID, id))
	assert.NoError(t, service.RegisterPushToken(context.Background(), userID, " token "))
	assert.ErrorIs(t, service.RegisterPushToken(context.Background(), userID, "  "), domain.ErrInvalidInput)
}
