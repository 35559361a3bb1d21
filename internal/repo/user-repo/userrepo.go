package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = "id, email, password_hash, role, email_verified, kyc_status, referral_code, push_token, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.EmailVerified,
		&user.KYCStatus, &user.ReferralCode, &user.PushToken, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, "email = $1", email)
}

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return repo.findOne(ctx, "id = $1", id)
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return repo.findOne(ctx, "referral_code = $1", code)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, role, referral_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email_verified, kyc_status, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.Role, user.ReferralCode).
		Scan(&user.ID, &user.EmailVerified, &user.KYCStatus, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET push_token = $1 WHERE id = $2", token, id)
	if err != nil {
		zap.L().Error("can't update push token", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
