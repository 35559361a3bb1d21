package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
	TransactionInvestment TransactionType = "INVESTMENT"
	TransactionPurchase   TransactionType = "PURCHASE"
	TransactionReturn     TransactionType = "RETURN"
	TransactionCommission TransactionType = "COMMISSION"
)

// IsCredit reports whether a transaction of this type raises the balance.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionDeposit, TransactionReturn, TransactionCommission:
		return true
	}
	return false
}

// ValidAmount reports whether a is positive and has no fraction of a cent.
// Balances and ledger rows are stored with two decimals, so a finer amount
// would be rounded differently on each side.
func ValidAmount(a decimal.Decimal) bool {
	return a.IsPositive() && a.Equal(a.Round(2))
}

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionDeposit, TransactionWithdrawal, TransactionInvestment,
		TransactionPurchase, TransactionReturn, TransactionCommission:
		return true
	}
	return false
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

type WalletTransaction struct {
	ID          uuid.UUID         `db:"id"`
	WalletID    uuid.UUID         `db:"wallet_id"`
	Type        TransactionType   `db:"type"`
	Amount      decimal.Decimal   `db:"amount"`
	Status      TransactionStatus `db:"status"`
	CryptoType  *string           `db:"crypto_type"`
	Description string            `db:"description"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}

// Signed returns the amount with the sign it contributes to the balance.
func (t WalletTransaction) Signed() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Reconciliation compares a wallet balance with the sum its ledger implies.
type Reconciliation struct {
	WalletID  uuid.UUID       `json:"wallet_id"`
	Balance   decimal.Decimal `json:"balance"`
	LedgerSum decimal.Decimal `json:"ledger_sum"`
	Balanced  bool            `json:"balanced"`
}
