package walletrepo

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
)

var walletRow = []string{"id", "user_id", "balance", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	walletID, userID := uuid.New(), uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta("SELECT " + walletColumns + " FROM wallets WHERE user_id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name: "Wallet found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(walletRow).AddRow(walletID, userID, decimal.NewFromInt(250), now, now))
			},
			result: &domain.Wallet{ID: walletID, UserID: userID, Balance: decimal.NewFromInt(250), CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "Wallet missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	walletID, userID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM wallets WHERE id = $1 FOR UPDATE")).WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows(walletRow).AddRow(walletID, userID, decimal.NewFromInt(10), now, now))

	wallet, err := repo.GetForUpdate(context.Background(), walletID)

	assert.NoError(t, err)
	assert.Equal(t, walletID, wallet.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	walletID, userID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO wallets (user_id, balance)")).WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(walletRow).AddRow(walletID, userID, decimal.Zero, now, now))

	wallet, err := repo.Create(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, wallet.Balance.IsZero())
	assert.Equal(t, userID, wallet.UserID)
}

func TestRepository_AdjustBalance(t *testing.T) {
	repo, mock := NewMock(t)
	walletID, userID := uuid.New(), uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta("UPDATE wallets SET balance = balance + $1, updated_at = NOW() WHERE id = $2 AND balance + $1 >= 0")

	tests := []struct {
		name        string
		delta       decimal.Decimal
		mockSetup   func(delta decimal.Decimal)
		expectedErr error
		balance     decimal.Decimal
	}{
		{
			name:  "Credit",
			delta: decimal.NewFromInt(50),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(query).WithArgs(delta, walletID).
					WillReturnRows(pgxmock.NewRows(walletRow).AddRow(walletID, userID, decimal.NewFromInt(150), now, now))
			},
			balance: decimal.NewFromInt(150),
		},
		{
			name:  "Debit beyond balance",
			delta: decimal.NewFromInt(-500),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(query).WithArgs(delta, walletID).WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: domain.ErrInsufficientBalance,
		},
		{
			name:  "Database error",
			delta: decimal.NewFromInt(-5),
			mockSetup: func(delta decimal.Decimal) {
				mock.ExpectQuery(query).WithArgs(delta, walletID).WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.delta)
			wallet, err := repo.AdjustBalance(context.Background(), walletID, tt.delta)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, wallet)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.balance.Equal(wallet.Balance))
			}
		})
	}
}
