package commissionservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/investledger/internal/domain"
	"go.uber.org/zap"
)

// Record turns a qualifying transaction into a pending commission for the
// referrer of the paying user. It returns nil, nil when no commission is due:
// the user was not referred, the rate for the category is zero, the amount is
// not positive, or the source was already recorded.
func (s *Service) Record(ctx context.Context, qt domain.QualifyingTransaction) (*domain.Commission, error) {
	if !qt.Source.Valid() {
		return nil, fmt.Errorf("%w: %q/%q", domain.ErrInvalidSource, qt.Source.Kind, qt.Source.ID)
	}
	if !qt.Amount.IsPositive() {
		return nil, nil
	}
	if !domain.ValidAmount(qt.Amount) {
		return nil, domain.ErrInvalidAmount
	}

	referral, err := s.referralRepo.FindByReferredUserID(ctx, qt.UserID)
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, nil
	}

	rates, err := s.rates.Get(ctx)
	if err != nil {
		return nil, err
	}
	rate := rates.RateFor(qt.Source.Kind.Category())
	if !rate.IsPositive() {
		return nil, nil
	}

	amount := domain.CommissionAmount(qt.Amount, rate)
	if !amount.IsPositive() {
		return nil, nil
	}

	var created *domain.Commission
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		c, err := s.commissionRepo.Create(ctx, &domain.Commission{
			ReferralID:     referral.ID,
			UserID:         referral.ReferrerID,
			ReferredUserID: qt.UserID,
			Amount:         amount,
			RateApplied:    rate,
			SourceAmount:   qt.Amount,
			Status:         domain.CommissionPending,
			Source:         qt.Source,
		})
		if err != nil {
			return err
		}
		created = c
		return s.notify(ctx, referral.ReferrerID, domain.NotificationCommissionEarned, "Commission Earned",
			fmt.Sprintf("You earned a $%s commission from a referral %s.", amount.StringFixed(2), qt.Source.Kind.Category()))
	})
	if errors.Is(err, domain.ErrDuplicateSource) {
		zap.L().Info("commission already recorded",
			zap.String("sourceKind", string(qt.Source.Kind)),
			zap.String("sourceID", qt.Source.ID))
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to record commission", zap.Error(err))
		return nil, err
	}

	zap.L().Info("commission recorded",
		zap.String("commissionID", created.ID.String()),
		zap.String("referrerID", created.UserID.String()),
		zap.String("amount", created.Amount.String()))
	return created, nil
}
