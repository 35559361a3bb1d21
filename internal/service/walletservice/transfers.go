package walletservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RequestDeposit records an incoming deposit awaiting confirmation.
// The balance is untouched until ConfirmDeposit.
func (s *Service) RequestDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, cryptoType string) (*domain.WalletTransaction, error) {
	if !domain.ValidAmount(amount) {
		return nil, domain.ErrInvalidAmount
	}
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.transactionRepo.Create(ctx, &domain.WalletTransaction{
		WalletID:    wallet.ID,
		Type:        domain.TransactionDeposit,
		Amount:      amount,
		Status:      domain.TransactionPending,
		CryptoType:  &cryptoType,
		Description: fmt.Sprintf("%s deposit", cryptoType),
	})
}

func (s *Service) ConfirmDeposit(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error) {
	return s.settle(ctx, transactionID, domain.TransactionDeposit, domain.TransactionCompleted,
		func(ctx context.Context, t *domain.WalletTransaction) error {
			wallet, err := s.lockWallet(ctx, t.WalletID, t.Amount)
			if err != nil {
				return err
			}
			if _, err := s.walletRepo.AdjustBalance(ctx, t.WalletID, t.Amount); err != nil {
				return err
			}
			return s.notify(ctx, wallet.UserID, domain.NotificationDepositConfirmed,
				"Deposit Confirmed", fmt.Sprintf("Your deposit of $%s has been credited to your wallet.", t.Amount.StringFixed(2)))
		})
}

func (s *Service) FailDeposit(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error) {
	return s.settle(ctx, transactionID, domain.TransactionDeposit, domain.TransactionFailed,
		func(ctx context.Context, t *domain.WalletTransaction) error {
			wallet, err := s.ownerOf(ctx, t.WalletID)
			if err != nil {
				return err
			}
			return s.notify(ctx, wallet.UserID, domain.NotificationDepositFailed,
				"Deposit Failed", fmt.Sprintf("Your deposit of $%s could not be confirmed.", t.Amount.StringFixed(2)))
		})
}

// RequestWithdrawal debits the wallet right away and keeps the funds on hold
// in a pending withdrawal until it is completed or failed.
func (s *Service) RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, cryptoType, address string) (*domain.WalletTransaction, error) {
	if !domain.ValidAmount(amount) {
		return nil, domain.ErrInvalidAmount
	}
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	var created *domain.WalletTransaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		t, err := s.move(ctx, wallet.ID, amount.Neg(), &domain.WalletTransaction{
			WalletID:    wallet.ID,
			Type:        domain.TransactionWithdrawal,
			Amount:      amount,
			Status:      domain.TransactionPending,
			CryptoType:  &cryptoType,
			Description: fmt.Sprintf("%s withdrawal to %s", cryptoType, address),
		})
		if err != nil {
			return err
		}
		created = t
		return s.notify(ctx, userID, domain.NotificationWithdrawalRequested, "Withdrawal Requested",
			fmt.Sprintf("Your withdrawal of $%s is being processed.", amount.StringFixed(2)))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) CompleteWithdrawal(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error) {
	return s.settle(ctx, transactionID, domain.TransactionWithdrawal, domain.TransactionCompleted,
		func(ctx context.Context, t *domain.WalletTransaction) error {
			wallet, err := s.ownerOf(ctx, t.WalletID)
			if err != nil {
				return err
			}
			return s.notify(ctx, wallet.UserID, domain.NotificationWithdrawalCompleted,
				"Withdrawal Completed", fmt.Sprintf("Your withdrawal of $%s has been sent.", t.Amount.StringFixed(2)))
		})
}

// FailWithdrawal returns the held funds before marking the withdrawal failed.
func (s *Service) FailWithdrawal(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error) {
	return s.settle(ctx, transactionID, domain.TransactionWithdrawal, domain.TransactionFailed,
		func(ctx context.Context, t *domain.WalletTransaction) error {
			wallet, err := s.lockWallet(ctx, t.WalletID, t.Amount)
			if err != nil {
				return err
			}
			if _, err := s.walletRepo.AdjustBalance(ctx, t.WalletID, t.Amount); err != nil {
				return err
			}
			return s.notify(ctx, wallet.UserID, domain.NotificationWithdrawalFailed,
				"Withdrawal Failed", fmt.Sprintf("Your withdrawal of $%s failed and the funds were returned to your wallet.", t.Amount.StringFixed(2)))
		})
}

type settleFn func(ctx context.Context, t *domain.WalletTransaction) error

// settle moves a pending transaction of the given type to its final status.
// apply runs first, inside the same database transaction.
func (s *Service) settle(ctx context.Context, transactionID uuid.UUID, txType domain.TransactionType, status domain.TransactionStatus, apply settleFn) (*domain.WalletTransaction, error) {
	var settled *domain.WalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		t, err := s.transactionRepo.GetForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if t == nil {
			return fmt.Errorf("transaction %s: %w", transactionID, domain.ErrNotFound)
		}
		if t.Type != txType {
			return fmt.Errorf("%w: transaction %s is a %s", domain.ErrTransactionType, transactionID, t.Type)
		}
		if t.Status != domain.TransactionPending {
			return fmt.Errorf("%w: transaction %s is %s", domain.ErrInvalidState, transactionID, t.Status)
		}
		if err := apply(ctx, t); err != nil {
			return err
		}
		if err := s.transactionRepo.UpdateStatus(ctx, transactionID, status); err != nil {
			return err
		}
		t.Status = status
		settled = t
		return nil
	})
	if err != nil {
		zap.L().Info("failed to settle transaction",
			zap.String("transactionID", transactionID.String()),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, err
	}
	zap.L().Info("transaction settled",
		zap.String("transactionID", transactionID.String()),
		zap.String("status", string(status)))
	return settled, nil
}

func (s *Service) ownerOf(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet %s: %w", walletID, domain.ErrNotFound)
	}
	return wallet, nil
}
