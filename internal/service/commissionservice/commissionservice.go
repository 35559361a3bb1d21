package commissionservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const commissionsActionURL = "/dashboard/referrals"

type CommissionRepo interface {
	Create(ctx context.Context, c *domain.Commission) (*domain.Commission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Commission, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Commission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CommissionStatus, reason *string, paidAt *time.Time) (*domain.Commission, error)
	List(ctx context.Context, filter domain.CommissionFilter) ([]domain.Commission, error)
	Summary(ctx context.Context, userID uuid.UUID) (*domain.CommissionSummary, error)
}

type ReferralRepo interface {
	FindByReferredUserID(ctx context.Context, referredUserID uuid.UUID) (*domain.Referral, error)
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error)
}

// RateProvider returns the current commission rates.
type RateProvider interface {
	Get(ctx context.Context) (*domain.RateTable, error)
}

type Ledger interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, txType domain.TransactionType, description string) (*domain.WalletTransaction, error)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error)
}

type Service struct {
	commissionRepo CommissionRepo
	referralRepo   ReferralRepo
	rates          RateProvider
	ledger         Ledger
	notifier       Notifier
	txManager      pg.TXManager
	now            func() time.Time
}

func New(commissionRepo CommissionRepo, referralRepo ReferralRepo, rates RateProvider, ledger Ledger, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		commissionRepo: commissionRepo,
		referralRepo:   referralRepo,
		rates:          rates,
		ledger:         ledger,
		notifier:       notifier,
		txManager:      txManager,
		now:            time.Now,
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Commission, error) {
	c, err := s.commissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(id)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, filter domain.CommissionFilter) ([]domain.Commission, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, domain.ErrInvalidState
	}
	commissions, err := s.commissionRepo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list commissions", zap.Error(err))
		return nil, err
	}
	return commissions, nil
}

// Pending lists commissions awaiting review.
func (s *Service) Pending(ctx context.Context, limit, offset int) ([]domain.Commission, error) {
	status := domain.CommissionPending
	return s.List(ctx, domain.CommissionFilter{Status: &status, Limit: limit, Offset: offset})
}

func (s *Service) ForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Commission, error) {
	return s.List(ctx, domain.CommissionFilter{UserID: &userID, Limit: limit, Offset: offset})
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (*domain.CommissionSummary, error) {
	return s.commissionRepo.Summary(ctx, userID)
}

// Referrals lists the users who signed up with the referrer's code.
func (s *Service) Referrals(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error) {
	return s.referralRepo.ListByReferrer(ctx, referrerID)
}

func (s *Service) notify(ctx context.Context, userID uuid.UUID, typ domain.NotificationType, title, message string) error {
	url := commissionsActionURL
	_, err := s.notifier.Notify(ctx, domain.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		ActionURL: &url,
	})
	return err
}
