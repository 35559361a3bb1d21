package walletservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const walletActionURL = "/dashboard/wallet"

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	Create(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.WalletTransaction) (*domain.WalletTransaction, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletTransaction, error)
	LedgerSum(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error)
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	notifier        Notifier
	txManager       pg.TXManager
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
		txManager:       txManager,
	}
}

func (s *Service) CreateWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet of user %s: %w", userID, domain.ErrNotFound)
	}
	return wallet, nil
}

// Credit raises the balance and records a completed transaction atomically.
func (s *Service) Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, txType domain.TransactionType, description string) (*domain.WalletTransaction, error) {
	if !txType.IsCredit() {
		return nil, fmt.Errorf("%w: %s cannot credit a wallet", domain.ErrTransactionType, txType)
	}
	return s.move(ctx, walletID, amount, &domain.WalletTransaction{
		WalletID:    walletID,
		Type:        txType,
		Amount:      amount,
		Status:      domain.TransactionCompleted,
		Description: description,
	})
}

// Debit lowers the balance and records a completed transaction atomically.
// The balance is never allowed to go negative.
func (s *Service) Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, txType domain.TransactionType, description string) (*domain.WalletTransaction, error) {
	if txType.IsCredit() || !txType.Valid() {
		return nil, fmt.Errorf("%w: %s cannot debit a wallet", domain.ErrTransactionType, txType)
	}
	return s.move(ctx, walletID, amount.Neg(), &domain.WalletTransaction{
		WalletID:    walletID,
		Type:        txType,
		Amount:      amount,
		Status:      domain.TransactionCompleted,
		Description: description,
	})
}

func (s *Service) move(ctx context.Context, walletID uuid.UUID, delta decimal.Decimal, row *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	if !domain.ValidAmount(row.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	var created *domain.WalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockWallet(ctx, walletID, delta); err != nil {
			return err
		}
		if _, err := s.walletRepo.AdjustBalance(ctx, walletID, delta); err != nil {
			return err
		}
		t, err := s.transactionRepo.Create(ctx, row)
		if err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		zap.L().Info("wallet movement refused",
			zap.String("walletID", walletID.String()),
			zap.String("type", string(row.Type)),
			zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) lockWallet(ctx context.Context, walletID uuid.UUID, delta decimal.Decimal) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetForUpdate(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet %s: %w", walletID, domain.ErrNotFound)
	}
	if delta.IsNegative() && wallet.Balance.LessThan(delta.Neg()) {
		return nil, domain.ErrInsufficientBalance
	}
	return wallet, nil
}

func (s *Service) History(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.Wallet, []domain.WalletTransaction, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	transactions, err := s.transactionRepo.ListByWallet(ctx, wallet.ID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch wallet history", zap.Error(err))
		return nil, nil, err
	}
	return wallet, transactions, nil
}

func (s *Service) Reconcile(ctx context.Context, walletID uuid.UUID) (*domain.Reconciliation, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet %s: %w", walletID, domain.ErrNotFound)
	}
	sum, err := s.transactionRepo.LedgerSum(ctx, walletID)
	if err != nil {
		return nil, err
	}
	result := &domain.Reconciliation{
		WalletID:  walletID,
		Balance:   wallet.Balance,
		LedgerSum: sum,
		Balanced:  wallet.Balance.Equal(sum),
	}
	if !result.Balanced {
		zap.L().Warn("wallet balance drifted from ledger",
			zap.String("walletID", walletID.String()),
			zap.String("balance", wallet.Balance.String()),
			zap.String("ledger", sum.String()))
	}
	return result, nil
}

func (s *Service) notify(ctx context.Context, userID uuid.UUID, typ domain.NotificationType, title, message string) error {
	url := walletActionURL
	_, err := s.notifier.Notify(ctx, domain.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		ActionURL: &url,
	})
	return err
}
