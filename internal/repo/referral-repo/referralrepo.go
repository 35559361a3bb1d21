package referralrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, referrerID, referredUserID uuid.UUID) (*domain.Referral, error) {
	query := `
		INSERT INTO referrals (referrer_id, referred_user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	referral := domain.Referral{ReferrerID: referrerID, ReferredUserID: referredUserID}
	if err := r.db.QueryRow(ctx, query, referrerID, referredUserID).Scan(&referral.ID, &referral.CreatedAt); err != nil {
		zap.L().Error("failed to create referral", zap.Error(err))
		return nil, err
	}
	return &referral, nil
}

// FindByReferredUserID returns who referred the user, or nil when nobody did.
func (r *Repository) FindByReferredUserID(ctx context.Context, referredUserID uuid.UUID) (*domain.Referral, error) {
	query := "SELECT id, referrer_id, referred_user_id, created_at FROM referrals WHERE referred_user_id = $1"
	var referral domain.Referral
	err := r.db.QueryRow(ctx, query, referredUserID).
		Scan(&referral.ID, &referral.ReferrerID, &referral.ReferredUserID, &referral.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find referral", zap.Error(err))
		return nil, err
	}
	return &referral, nil
}

func (r *Repository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error) {
	query := `
		SELECT id, referrer_id, referred_user_id, created_at
		FROM referrals
		WHERE referrer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("failed to list referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var referral domain.Referral
		if err := rows.Scan(&referral.ID, &referral.ReferrerID, &referral.ReferredUserID, &referral.CreatedAt); err != nil {
			zap.L().Error("failed to scan referral", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, referral)
	}
	return referrals, rows.Err()
}
