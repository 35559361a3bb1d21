package commissionrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const commissionColumns = `id, referral_id, user_id, referred_user_id, amount, rate_applied, source_amount,
	status, source_kind, source_id, rejection_reason, created_at, updated_at, paid_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCommission(row scanner) (*domain.Commission, error) {
	var c domain.Commission
	err := row.Scan(
		&c.ID, &c.ReferralID, &c.UserID, &c.ReferredUserID, &c.Amount, &c.RateApplied, &c.SourceAmount,
		&c.Status, &c.Source.Kind, &c.Source.ID, &c.RejectionReason, &c.CreatedAt, &c.UpdatedAt, &c.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Commission) (*domain.Commission, error) {
	query := `
		INSERT INTO commissions (referral_id, user_id, referred_user_id, amount, rate_applied, source_amount, status, source_kind, source_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (source_kind, source_id) DO NOTHING
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		c.ReferralID, c.UserID, c.ReferredUserID, c.Amount, c.RateApplied, c.SourceAmount, c.Status, c.Source.Kind, c.Source.ID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDuplicateSource
		}
		zap.L().Error("failed to create commission", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Commission, error) {
	c, err := scanCommission(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get commission", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Commission, error) {
	return r.get(ctx, "SELECT "+commissionColumns+" FROM commissions WHERE id = $1", id)
}

// GetForUpdate locks the commission so concurrent transitions serialize.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Commission, error) {
	return r.get(ctx, "SELECT "+commissionColumns+" FROM commissions WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CommissionStatus, reason *string, paidAt *time.Time) (*domain.Commission, error) {
	query := `
		UPDATE commissions
		SET status = $1,
			rejection_reason = COALESCE($2, rejection_reason),
			paid_at = COALESCE($3, paid_at),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + commissionColumns
	c, err := scanCommission(r.db.QueryRow(ctx, query, status, reason, paidAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("failed to update commission status", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) List(ctx context.Context, filter domain.CommissionFilter) ([]domain.Commission, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}

	query := "SELECT " + commissionColumns + " FROM commissions"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var commissions []domain.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			zap.L().Error("failed to scan commission", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, *c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate commissions", zap.Error(err))
		return nil, err
	}
	return commissions, nil
}

func (r *Repository) Summary(ctx context.Context, userID uuid.UUID) (*domain.CommissionSummary, error) {
	query := `
		SELECT status, COALESCE(SUM(amount), 0), COUNT(*)
		FROM commissions
		WHERE user_id = $1
		GROUP BY status
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to summarize commissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	summary := domain.CommissionSummary{
		Pending:  decimal.Zero,
		Approved: decimal.Zero,
		Rejected: decimal.Zero,
		Paid:     decimal.Zero,
	}
	for rows.Next() {
		var (
			status domain.CommissionStatus
			total  decimal.Decimal
			count  int
		)
		if err := rows.Scan(&status, &total, &count); err != nil {
			zap.L().Error("failed to scan commission summary", zap.Error(err))
			return nil, err
		}
		switch status {
		case domain.CommissionPending:
			summary.Pending = total
		case domain.CommissionApproved:
			summary.Approved = total
		case domain.CommissionRejected:
			summary.Rejected = total
		case domain.CommissionPaid:
			summary.Paid = total
		}
		summary.Count += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &summary, nil
}
