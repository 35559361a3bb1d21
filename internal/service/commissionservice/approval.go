package commissionservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const bulkApproveConcurrency = 4

func notFound(id uuid.UUID) error {
	return fmt.Errorf("commission %s: %w", id, domain.ErrNotFound)
}

// lockPending loads the commission under a row lock and checks it may move to next.
func (s *Service) lockPending(ctx context.Context, id uuid.UUID, next domain.CommissionStatus) (*domain.Commission, error) {
	c, err := s.commissionRepo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(id)
	}
	if !c.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: commission %s is %s", domain.ErrInvalidState, id, c.Status)
	}
	return c, nil
}

// Approve marks a pending commission approved and pays it into the referrer's
// wallet. Status change, credit and notification commit together or not at all.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Commission, error) {
	var approved *domain.Commission
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		c, err := s.lockPending(ctx, id, domain.CommissionApproved)
		if err != nil {
			return err
		}

		paidAt := s.now()
		updated, err := s.commissionRepo.UpdateStatus(ctx, id, domain.CommissionApproved, nil, &paidAt)
		if err != nil {
			return err
		}

		wallet, err := s.ledger.GetWallet(ctx, c.UserID)
		if err != nil {
			return err
		}
		description := fmt.Sprintf("Referral commission (%s %s)", c.Source.Kind, c.Source.ID)
		if _, err := s.ledger.Credit(ctx, wallet.ID, c.Amount, domain.TransactionCommission, description); err != nil {
			return err
		}

		approved = updated
		return s.notify(ctx, c.UserID, domain.NotificationCommissionApproved, "Commission Approved",
			fmt.Sprintf("Your $%s commission has been approved and added to your wallet.", c.Amount.StringFixed(2)))
	})
	if err != nil {
		zap.L().Info("commission approval failed", zap.String("commissionID", id.String()), zap.Error(err))
		return nil, err
	}

	zap.L().Info("commission approved",
		zap.String("commissionID", id.String()),
		zap.String("amount", approved.Amount.String()))
	return approved, nil
}

// Reject closes a pending commission without touching any wallet.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (*domain.Commission, error) {
	var rejected *domain.Commission
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		c, err := s.lockPending(ctx, id, domain.CommissionRejected)
		if err != nil {
			return err
		}
		updated, err := s.commissionRepo.UpdateStatus(ctx, id, domain.CommissionRejected, &reason, nil)
		if err != nil {
			return err
		}
		rejected = updated

		message := fmt.Sprintf("Your $%s commission was rejected.", c.Amount.StringFixed(2))
		if reason != "" {
			message = fmt.Sprintf("Your $%s commission was rejected: %s", c.Amount.StringFixed(2), reason)
		}
		return s.notify(ctx, c.UserID, domain.NotificationCommissionRejected, "Commission Rejected", message)
	})
	if err != nil {
		zap.L().Info("commission rejection failed", zap.String("commissionID", id.String()), zap.Error(err))
		return nil, err
	}

	zap.L().Info("commission rejected", zap.String("commissionID", id.String()))
	return rejected, nil
}

// BulkApprove approves every id independently. A failure is recorded in the
// result and never stops or undoes the other approvals.
func (s *Service) BulkApprove(ctx context.Context, ids []uuid.UUID) domain.BulkResult {
	errs := make([]error, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkApproveConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			_, errs[i] = s.Approve(gctx, id)
			return nil
		})
	}
	_ = g.Wait()

	result := domain.BulkResult{}
	for i, err := range errs {
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, domain.BulkFailure{ID: ids[i], Error: err.Error()})
			continue
		}
		result.Succeeded++
	}
	zap.L().Info("bulk approval finished",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed))
	return result
}
