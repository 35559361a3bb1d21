package dto

import (
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type NotificationResponseDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title" example:"Commission Approved"`
	Message   string    `json:"message" example:"Your commission of 50.00 has been credited to your wallet."`
	Type      string    `json:"type" example:"COMMISSION_APPROVED"`
	Read      bool      `json:"read"`
	ActionURL *string   `json:"action_url,omitempty" example:"/dashboard/referrals"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponseDTO struct {
	Count int `json:"count" example:"3"`
}

type MarkAllReadResponseDTO struct {
	Updated int64 `json:"updated" example:"3"`
}

type PushTokenRequestDTO struct {
	Token string `json:"token" validate:"required" example:"fcm-device-token"`
}

func NewNotificationList(notifications []domain.Notification) []NotificationResponseDTO {
	list := make([]NotificationResponseDTO, len(notifications))
	for i, n := range notifications {
		list[i] = NotificationResponseDTO{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			Read:      n.Read,
			ActionURL: n.ActionURL,
			CreatedAt: n.CreatedAt,
		}
	}
	return list
}
