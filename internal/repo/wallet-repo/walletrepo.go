package walletrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const walletColumns = "id, user_id, balance, created_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) get(ctx context.Context, query string, arg any) (*domain.Wallet, error) {
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	return r.get(ctx, "SELECT "+walletColumns+" FROM wallets WHERE user_id = $1", userID)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	return r.get(ctx, "SELECT "+walletColumns+" FROM wallets WHERE id = $1", id)
}

// GetForUpdate locks the wallet row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	return r.get(ctx, "SELECT "+walletColumns+" FROM wallets WHERE id = $1 FOR UPDATE", id)
}

func (r *Repository) Create(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, balance)
		VALUES ($1, 0)
		RETURNING ` + walletColumns
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// AdjustBalance adds delta to the balance. A change that would leave the
// balance negative is refused with domain.ErrInsufficientBalance.
func (r *Repository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2 AND balance + $1 >= 0
		RETURNING ` + walletColumns
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, delta, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientBalance
		}
		zap.L().Error("failed to adjust wallet balance", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}
