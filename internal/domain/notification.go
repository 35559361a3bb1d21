package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationCommissionEarned    NotificationType = "COMMISSION_EARNED"
	NotificationCommissionApproved  NotificationType = "COMMISSION_APPROVED"
	NotificationCommissionRejected  NotificationType = "COMMISSION_REJECTED"
	NotificationDepositConfirmed    NotificationType = "DEPOSIT_CONFIRMED"
	NotificationDepositFailed       NotificationType = "DEPOSIT_FAILED"
	NotificationWithdrawalRequested NotificationType = "WITHDRAWAL_REQUESTED"
	NotificationWithdrawalCompleted NotificationType = "WITHDRAWAL_COMPLETED"
	NotificationWithdrawalFailed    NotificationType = "WITHDRAWAL_FAILED"
	NotificationPurchaseCompleted   NotificationType = "PURCHASE_COMPLETED"
	NotificationInvestmentCreated   NotificationType = "INVESTMENT_CREATED"
	NotificationKYCUpdate           NotificationType = "KYC_UPDATE"
	NotificationSystem              NotificationType = "SYSTEM"
)

type Notification struct {
	ID        uuid.UUID        `db:"id"`
	UserID    uuid.UUID        `db:"user_id"`
	Title     string           `db:"title"`
	Message   string           `db:"message"`
	Type      NotificationType `db:"type"`
	Read      bool             `db:"read"`
	ActionURL *string          `db:"action_url"`
	CreatedAt time.Time        `db:"created_at"`
}
