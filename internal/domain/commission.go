package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryProperty    Category = "property"
	CategoryEquipment   Category = "equipment"
	CategoryMarket      Category = "market"
	CategoryGreenEnergy Category = "greenEnergy"
)

type SourceKind string

const (
	SourceProperty    SourceKind = "PROPERTY"
	SourceEquipment   SourceKind = "EQUIPMENT"
	SourceMarket      SourceKind = "MARKET"
	SourceRealEstate  SourceKind = "REAL_ESTATE"
	SourceGreenEnergy SourceKind = "GREEN_ENERGY"
)

func (k SourceKind) Valid() bool {
	_, ok := sourceCategories[k]
	return ok
}

var sourceCategories = map[SourceKind]Category{
	SourceProperty:    CategoryProperty,
	SourceRealEstate:  CategoryProperty,
	SourceEquipment:   CategoryEquipment,
	SourceMarket:      CategoryMarket,
	SourceGreenEnergy: CategoryGreenEnergy,
}

// Category returns the rate category a source kind is billed under.
func (k SourceKind) Category() Category {
	return sourceCategories[k]
}

// TransactionType is the wallet debit type used when a user pays for a source of this kind.
func (k SourceKind) TransactionType() TransactionType {
	switch k {
	case SourceProperty, SourceEquipment:
		return TransactionPurchase
	default:
		return TransactionInvestment
	}
}

// CommissionSource identifies the one transaction a commission was earned on.
type CommissionSource struct {
	Kind SourceKind `json:"kind"`
	ID   string     `json:"id"`
}

// MaxSourceIDLength matches the source_id column.
const MaxSourceIDLength = 64

func (s CommissionSource) Valid() bool {
	return s.Kind.Valid() && s.ID != "" && len(s.ID) <= MaxSourceIDLength
}

type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "PENDING"
	CommissionApproved CommissionStatus = "APPROVED"
	CommissionRejected CommissionStatus = "REJECTED"
	CommissionPaid     CommissionStatus = "PAID"
)

var commissionTransitions = map[CommissionStatus][]CommissionStatus{
	CommissionPending:  {CommissionApproved, CommissionRejected},
	CommissionApproved: {CommissionPaid},
}

func (s CommissionStatus) Valid() bool {
	switch s {
	case CommissionPending, CommissionApproved, CommissionRejected, CommissionPaid:
		return true
	}
	return false
}

func (s CommissionStatus) CanTransitionTo(next CommissionStatus) bool {
	for _, allowed := range commissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Commission struct {
	ID              uuid.UUID        `db:"id"`
	ReferralID      uuid.UUID        `db:"referral_id"`
	UserID          uuid.UUID        `db:"user_id"`
	ReferredUserID  uuid.UUID        `db:"referred_user_id"`
	Amount          decimal.Decimal  `db:"amount"`
	RateApplied     decimal.Decimal  `db:"rate_applied"`
	SourceAmount    decimal.Decimal  `db:"source_amount"`
	Status          CommissionStatus `db:"status"`
	Source          CommissionSource
	RejectionReason *string    `db:"rejection_reason"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	PaidAt          *time.Time `db:"paid_at"`
}

// QualifyingTransaction is a completed transaction by a possibly referred user.
type QualifyingTransaction struct {
	UserID uuid.UUID
	Amount decimal.Decimal
	Source CommissionSource
}

type CommissionFilter struct {
	Status *CommissionStatus
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// CommissionSummary aggregates a referrer's commissions by status.
type CommissionSummary struct {
	Pending  decimal.Decimal `json:"pending"`
	Approved decimal.Decimal `json:"approved"`
	Rejected decimal.Decimal `json:"rejected"`
	Paid     decimal.Decimal `json:"paid"`
	Count    int             `json:"count"`
}

// CommissionAmount applies a percentage rate and rounds to cents.
func CommissionAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
}

type BulkFailure struct {
	ID    uuid.UUID `json:"id"`
	Error string    `json:"error"`
}

// BulkResult reports a best-effort batch: each item succeeds or fails on its own.
type BulkResult struct {
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Failures  []BulkFailure `json:"failures,omitempty"`
}
