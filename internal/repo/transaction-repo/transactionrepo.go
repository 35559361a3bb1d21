package transactionrepo

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

const transactionColumns = "id, wallet_id, type, amount, status, crypto_type, description, created_at, updated_at"

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

func scanTransaction(row scanner) (*domain.WalletTransaction, error) {
	var t domain.WalletTransaction
	err := row.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.Status, &t.CryptoType, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
		INSERT INTO wallet_transactions (wallet_id, type, amount, status, crypto_type, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, t.WalletID, t.Type, t.Amount, t.Status, t.CryptoType, t.Description).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		zap.L().Error("failed to create wallet transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.WalletTransaction, error) {
	query := "SELECT " + transactionColumns + " FROM wallet_transactions WHERE id = $1 FOR UPDATE"
	t, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	tag, err := r.db.Exec(ctx, "UPDATE wallet_transactions SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		zap.L().Error("failed to update wallet transaction status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.WalletTransaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate wallet transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// LedgerSum is the balance implied by the ledger: completed rows plus
// withdrawals still holding funds.
func (r *Repository) LedgerSum(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type IN ('DEPOSIT', 'RETURN', 'COMMISSION') THEN amount ELSE -amount END), 0)
		FROM wallet_transactions
		WHERE wallet_id = $1
		  AND (status = 'COMPLETED' OR (status = 'PENDING' AND type = 'WITHDRAWAL'))
	`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, walletID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum wallet ledger", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
