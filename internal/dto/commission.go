package dto

import (
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CommissionResponseDTO struct {
	ID              string          `json:"id"`
	ReferrerID      string          `json:"referrer_id"`
	ReferredUserID  string          `json:"referred_user_id"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
	RateApplied     decimal.Decimal `json:"rate_applied" swaggertype:"string" example:"5"`
	SourceAmount    decimal.Decimal `json:"source_amount" swaggertype:"string" example:"1000.00"`
	Status          string          `json:"status" example:"PENDING"`
	SourceKind      string          `json:"source_kind" example:"PROPERTY"`
	SourceID        string          `json:"source_id" example:"prop-42"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
}

type RejectCommissionRequestDTO struct {
	Reason string `json:"reason" validate:"required,max=500" example:"Self referral"`
}

type BulkApproveRequestDTO struct {
	IDs []string `json:"ids" validate:"required,min=1,max=100,dive,uuid" example:"4b8f2c1e-9a7d-4f7e-8c11-2f6d3e5b7a90"`
}

type QualifyingTransactionRequestDTO struct {
	UserID     string          `json:"user_id" validate:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" validate:"positive,cents" swaggertype:"string" example:"1000"`
	SourceKind string          `json:"source_kind" validate:"required,oneof=PROPERTY EQUIPMENT MARKET REAL_ESTATE GREEN_ENERGY" example:"MARKET"`
	SourceID   string          `json:"source_id" validate:"required,max=64" example:"mkt-7"`
}

func NewCommissionResponse(c domain.Commission) CommissionResponseDTO {
	return CommissionResponseDTO{
		ID:              c.ID.String(),
		ReferrerID:      c.UserID.String(),
		ReferredUserID:  c.ReferredUserID.String(),
		Amount:          c.Amount,
		RateApplied:     c.RateApplied,
		SourceAmount:    c.SourceAmount,
		Status:          string(c.Status),
		SourceKind:      string(c.Source.Kind),
		SourceID:        c.Source.ID,
		RejectionReason: c.RejectionReason,
		CreatedAt:       c.CreatedAt,
		PaidAt:          c.PaidAt,
	}
}

func NewCommissionList(commissions []domain.Commission) []CommissionResponseDTO {
	list := make([]CommissionResponseDTO, len(commissions))
	for i, c := range commissions {
		list[i] = NewCommissionResponse(c)
	}
	return list
}

type ReferralResponseDTO struct {
	ReferredUserID string    `json:"referred_user_id"`
	JoinedAt       time.Time `json:"joined_at"`
}

func NewReferralList(referrals []domain.Referral) []ReferralResponseDTO {
	list := make([]ReferralResponseDTO, len(referrals))
	for i, r := range referrals {
		list[i] = ReferralResponseDTO{ReferredUserID: r.ReferredUserID.String(), JoinedAt: r.CreatedAt}
	}
	return list
}
