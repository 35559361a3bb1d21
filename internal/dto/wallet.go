package dto

import (
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	ID      string          `json:"id" example:"4b8f2c1e-9a7d-4f7e-8c11-2f6d3e5b7a90"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"1250.00"`
}

type TransactionResponseDTO struct {
	ID          string          `json:"id"`
	Type        string          `json:"type" example:"COMMISSION"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
	Status      string          `json:"status" example:"COMPLETED"`
	CryptoType  *string         `json:"crypto_type,omitempty" example:"USDT"`
	Description string          `json:"description" example:"Referral commission (PROPERTY prop-1)"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-06-01T12:00:00Z"`
}

type WalletHistoryResponseDTO struct {
	Wallet       WalletResponseDTO        `json:"wallet"`
	Transactions []TransactionResponseDTO `json:"transactions"`
}

type DepositRequestDTO struct {
	Amount     decimal.Decimal `json:"amount" validate:"positive,cents" swaggertype:"string" example:"200"`
	CryptoType string          `json:"crypto_type" validate:"required,oneof=BTC ETH USDT TRX" example:"USDT"`
}

type WithdrawalRequestDTO struct {
	Amount     decimal.Decimal `json:"amount" validate:"positive,cents" swaggertype:"string" example:"120"`
	CryptoType string          `json:"crypto_type" validate:"required,oneof=BTC ETH USDT TRX" example:"BTC"`
	Address    string          `json:"address" validate:"required,min=10" example:"bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"`
}

type PurchaseRequestDTO struct {
	Kind        string          `json:"kind" validate:"required,oneof=PROPERTY EQUIPMENT MARKET REAL_ESTATE GREEN_ENERGY" example:"PROPERTY"`
	SourceID    string          `json:"source_id" validate:"required,max=64" example:"prop-42"`
	Amount      decimal.Decimal `json:"amount" validate:"positive,cents" swaggertype:"string" example:"1000"`
	Description string          `json:"description,omitempty" example:"Villa share"`
}

type PurchaseResponseDTO struct {
	Transaction TransactionResponseDTO `json:"transaction"`
	Commission  *CommissionResponseDTO `json:"commission,omitempty"`
}

func NewTransactionResponse(t domain.WalletTransaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          t.ID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Status:      string(t.Status),
		CryptoType:  t.CryptoType,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
