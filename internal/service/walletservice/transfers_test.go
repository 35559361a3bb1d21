package walletservice

import (
	"context"
	"testing"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func pendingTransaction(walletID uuid.UUID, txType domain.TransactionType, amount int64) *domain.WalletTransaction {
	return &domain.WalletTransaction{
		ID:       uuid.New(),
		WalletID: walletID,
		Type:     txType,
		Amount:   decimal.NewFromInt(amount),
		Status:   domain.TransactionPending,
	}
}

func TestRequestDeposit(t *testing.T) {
	service, walletRepo, transactionRepo, _ := NewMock(t)
	userID, walletID := uuid.New(), uuid.New()

	walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&domain.Wallet{ID: walletID, UserID: userID}, nil)
	transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, row *domain.WalletTransaction) (*domain.WalletTransaction, error) {
		return row, nil
	})

	result, err := service.RequestDeposit(context.Background(), userID, decimal.NewFromInt(200), "USDT")

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionPending, result.Status)
	assert.Equal(t, domain.TransactionDeposit, result.Type)
	assert.Equal(t, "USDT", *result.CryptoType)

	_, err = service.RequestDeposit(context.Background(), userID, decimal.NewFromInt(-1), "USDT")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = service.RequestDeposit(context.Background(), userID, decimal.RequireFromString("0.001"), "USDT")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestConfirmDeposit(t *testing.T) {
	walletID, userID := uuid.New(), uuid.New()

	tests := []struct {
		name          string
		transaction   *domain.WalletTransaction
		prepareMock   func(tx *domain.WalletTransaction, w *MockWalletRepo, tr *MockTransactionRepo, n *MockNotifier)
		expectedError error
	}{
		{
			name:        "Pending deposit credited",
			transaction: pendingTransaction(walletID, domain.TransactionDeposit, 200),
			prepareMock: func(tx *domain.WalletTransaction, w *MockWalletRepo, tr *MockTransactionRepo, n *MockNotifier) {
				tr.EXPECT().GetForUpdate(gomock.Any(), tx.ID).Return(tx, nil)
				w.EXPECT().GetForUpdate(gomock.Any(), walletID).Return(&domain.Wallet{ID: walletID, UserID: userID}, nil)
				w.EXPECT().AdjustBalance(gomock.Any(), walletID, decEq(decimal.NewFromInt(200))).Return(&domain.Wallet{ID: walletID}, nil)
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg domain.Notification) (*domain.Notification, error) {
					assert.Equal(t, userID, msg.UserID)
					assert.Equal(t, domain.NotificationDepositConfirmed, msg.Type)
					return &msg, nil
				})
				tr.EXPECT().UpdateStatus(gomock.Any(), tx.ID, domain.TransactionCompleted).Return(nil)
			},
		},
		{
			name: "Already settled",
			transaction: func() *domain.WalletTransaction {
				tx := pendingTransaction(walletID, domain.TransactionDeposit, 200)
				tx.Status = domain.TransactionCompleted
				return tx
			}(),
			prepareMock: func(tx *domain.WalletTransaction, w *MockWalletRepo, tr *MockTransactionRepo, n *MockNotifier) {
				tr.EXPECT().GetForUpdate(gomock.Any(), tx.ID).Return(tx, nil)
			},
			expectedError: domain.ErrInvalidState,
		},
		{
			name:        "Not a deposit",
			transaction: pendingTransaction(walletID, domain.TransactionWithdrawal, 200),
			prepareMock: func(tx *domain.WalletTransaction, w *MockWalletRepo, tr *MockTransactionRepo, n *MockNotifier) {
				tr.EXPECT().GetForUpdate(gomock.Any(), tx.ID).Return(tx, nil)
			},
			expectedError: domain.ErrTransactionType,
		},
		{
			name:        "Unknown transaction",
			transaction: pendingTransaction(walletID, domain.TransactionDeposit, 200),
			prepareMock: func(tx *domain.WalletTransaction, w *MockWalletRepo, tr *MockTransactionRepo, n *MockNotifier) {
				tr.EXPECT().GetForUpdate(gomock.Any(), tx.ID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, walletRepo, transactionRepo, notifier := NewMock(t)
			tt.prepareMock(tt.transaction, walletRepo, transactionRepo, notifier)

			result, err := service.ConfirmDeposit(context.Background(), tt.transaction.ID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.TransactionCompleted, result.Status)
		})
	}
}

func TestFailDeposit(t *testing.T) {
	service, walletRepo, transactionRepo, notifier := NewMock(t)
	walletID, userID := uuid.New(), uuid.New()
	tx := pendingTransaction(walletID, domain.TransactionDeposit, 75)

	transactionRepo.EXPECT().GetForUpdate(gomock.Any(), tx.ID).Return(tx, nil)
	walletRepo.EXPECT().GetByID(gomock.Any(), walletID).Return(&domain.Wallet{ID: walletID, UserID: userID}, nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)
	transactionRepo.EXPECT().UpdateStatus(gomock.Any(), tx.ID, domain.TransactionFailed).Return(nil)

	result, err := service.FailDeposit(context.Background(), tx.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionFailed, result.Status)
}

func TestRequestWithdrawal(t *testing.T) {
	userID, walletID := uuid.New(), uuid.New()

	tests := []struct {
		name          string
		balance       decimal.Decimal
		prepareMock   func(w *MockWalletRepo, tr *MockTransactionRepo, n *MockNotifier)
		expectedError error
	}{
		{
			name:    "Funds held",
			balance: decimal.NewFromInt(500),
			prepareMock: func(w *MockWalletRepo, tr *MockTransactionRepo, n *MockNotifier) {
				w.EXPECT().AdjustBalance(gomock.Any(), walletID, decEq(decimal.NewFromInt(-120))).Return(&domain.Wallet{ID: walletID}, nil)
				tr.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, row *domain.WalletTransaction) (*domain.WalletTransaction, error) {
					return row, nil
				})
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)
			},
		},
		{
			name:          "Insufficient balance",
			balance:       decimal.NewFromInt(100),
			prepareMock:   func(w *MockWalletRepo, tr *MockTransactionRepo, n *MockNotifier) {},
			expectedError: domain.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, walletRepo, transactionRepo, notifier := NewMock(t)
			walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&domain.Wallet{ID: walletID, UserID: userID, Balance: tt.balance}, nil)
			walletRepo.EXPECT().GetForUpdate(gomock.Any(), walletID).Return(&domain.Wallet{ID: walletID, UserID: userID, Balance: tt.balance}, nil)
			tt.prepareMock(walletRepo, transactionRepo, notifier)

			result, err := service.RequestWithdrawal(context.Background(), userID, decimal.NewFromInt(120), "BTC", "bc1qexample")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.TransactionPending, result.Status)
			assert.Equal(t, domain.TransactionWithdrawal, result.Type)
		})
	}
}

func TestCompleteWithdrawal(t *testing.T) {
	service, walletRepo, transactionRepo, notifier := NewMock(t)
	walletID, userID := uuid.New(), uuid.New()
	tx := pendingTransaction(walletID, domain.TransactionWithdrawal, 120)

	transactionRepo.EXPECT().GetForUpdate(gomock.Any(), tx.ID).Return(tx, nil)
	walletRepo.EXPECT().GetByID(gomock.Any(), walletID).Return(&domain.Wallet{ID: walletID, UserID: userID}, nil)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil)
	transactionRepo.EXPECT().UpdateStatus(gomock.Any(), tx.ID, domain.TransactionCompleted).Return(nil)

	result, err := service.CompleteWithdrawal(context.Background(), tx.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionCompleted, result.Status)
}

func TestFailWithdrawal_RefundsBeforeFailing(t *testing.T) {
	service, walletRepo, transactionRepo, notifier := NewMock(t)
	walletID, userID := uuid.New(), uuid.New()
	tx := pendingTransaction(walletID, domain.TransactionWithdrawal, 120)

	gomock.InOrder(
		transactionRepo.EXPECT().GetForUpdate(gomock.Any(), tx.ID).Return(tx, nil),
		walletRepo.EXPECT().GetForUpdate(gomock.Any(), walletID).Return(&domain.Wallet{ID: walletID, UserID: userID}, nil),
		walletRepo.EXPECT().AdjustBalance(gomock.Any(), walletID, decEq(decimal.NewFromInt(120))).Return(&domain.Wallet{ID: walletID}, nil),
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(&domain.Notification{}, nil),
		transactionRepo.EXPECT().UpdateStatus(gomock.Any(), tx.ID, domain.TransactionFailed).Return(nil),
	)

	result, err := service.FailWithdrawal(context.Background(), tx.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.TransactionFailed, result.Status)
}
