package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type KYCStatus string

const (
	KYCNotSubmitted KYCStatus = "NOT_SUBMITTED"
	KYCPending      KYCStatus = "PENDING"
	KYCApproved     KYCStatus = "APPROVED"
	KYCRejected     KYCStatus = "REJECTED"
)

type User struct {
	ID            uuid.UUID `db:"id"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	Role          Role      `db:"role"`
	EmailVerified bool      `db:"email_verified"`
	KYCStatus     KYCStatus `db:"kyc_status"`
	ReferralCode  string    `db:"referral_code"`
	PushToken     *string   `db:"push_token"`
	CreatedAt     time.Time `db:"created_at"`
}

type Wallet struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type Referral struct {
	ID             uuid.UUID `db:"id"`
	ReferrerID     uuid.UUID `db:"referrer_id"`
	ReferredUserID uuid.UUID `db:"referred_user_id"`
	CreatedAt      time.Time `db:"created_at"`
}
