package purchaseservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Ledger interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, txType domain.TransactionType, description string) (*domain.WalletTransaction, error)
}

type CommissionEngine interface {
	Record(ctx context.Context, qt domain.QualifyingTransaction) (*domain.Commission, error)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error)
}

type Service struct {
	ledger    Ledger
	engine    CommissionEngine
	notifier  Notifier
	txManager pg.TXManager
}

func New(ledger Ledger, engine CommissionEngine, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		ledger:    ledger,
		engine:    engine,
		notifier:  notifier,
		txManager: txManager,
	}
}

// Receipt is the outcome of a purchase: the wallet debit and, when the buyer
// was referred, the commission it produced.
type Receipt struct {
	Transaction *domain.WalletTransaction `json:"transaction"`
	Commission  *domain.Commission        `json:"commission,omitempty"`
}

// Purchase pays for a property, equipment unit or investment from the user's
// wallet and records the referral commission for it in the same transaction.
func (s *Service) Purchase(ctx context.Context, userID uuid.UUID, source domain.CommissionSource, amount decimal.Decimal, description string) (*Receipt, error) {
	if !source.Valid() {
		return nil, fmt.Errorf("%w: %q/%q", domain.ErrInvalidSource, source.Kind, source.ID)
	}
	if !domain.ValidAmount(amount) {
		return nil, domain.ErrInvalidAmount
	}
	if description == "" {
		description = fmt.Sprintf("%s %s", source.Kind, source.ID)
	}

	receipt := &Receipt{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.ledger.GetWallet(ctx, userID)
		if err != nil {
			return err
		}
		txType := source.Kind.TransactionType()
		receipt.Transaction, err = s.ledger.Debit(ctx, wallet.ID, amount, txType, description)
		if err != nil {
			return err
		}

		receipt.Commission, err = s.engine.Record(ctx, domain.QualifyingTransaction{
			UserID: userID,
			Amount: amount,
			Source: source,
		})
		if err != nil {
			return err
		}

		typ, title := domain.NotificationInvestmentCreated, "Investment Created"
		if txType == domain.TransactionPurchase {
			typ, title = domain.NotificationPurchaseCompleted, "Purchase Completed"
		}
		url := "/dashboard/portfolio"
		_, err = s.notifier.Notify(ctx, domain.Notification{
			UserID:    userID,
			Title:     title,
			Message:   fmt.Sprintf("%s for $%s was successful.", description, amount.StringFixed(2)),
			Type:      typ,
			ActionURL: &url,
		})
		return err
	})
	if err != nil {
		zap.L().Info("purchase failed",
			zap.String("userID", userID.String()),
			zap.String("sourceKind", string(source.Kind)),
			zap.String("sourceID", source.ID),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("purchase completed",
		zap.String("userID", userID.String()),
		zap.String("sourceKind", string(source.Kind)),
		zap.String("amount", amount.String()),
		zap.Bool("commission", receipt.Commission != nil))
	return receipt, nil
}
