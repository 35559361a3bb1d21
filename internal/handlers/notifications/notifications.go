package notifications

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httputil"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func respondWithErr(w http.ResponseWriter, err error) {
	code, msg := httputil.StatusFor(err)
	utils.RespondWithError(w, code, msg)
}

// List godoc
//
//	@Summary		List in-app notifications
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			unread	query		bool	false	"Only unread notifications"
//	@Param			limit	query		int		false	"Page size (default 20, max 100)"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{array}		dto.NotificationResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	limit, offset := httputil.Page(r)
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.notificationService.List(r.Context(), userID, unreadOnly, limit, offset)
	if err != nil {
		respondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewNotificationList(notifications))
}

// UnreadCount godoc
//
//	@Summary		Number of unread notifications
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UnreadCountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	count, err := h.notificationService.UnreadCount(r.Context(), userID)
	if err != nil {
		respondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnreadCountResponseDTO{Count: count})
}

// MarkRead godoc
//
//	@Summary		Mark a notification as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid notification id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Router			/api/user/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	id, err := httputil.PathUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}
	if err := h.notificationService.MarkRead(r.Context(), userID, id); err != nil {
		respondWithErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead godoc
//
//	@Summary		Mark every notification as read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MarkAllReadResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	updated, err := h.notificationService.MarkAllRead(r.Context(), userID)
	if err != nil {
		respondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MarkAllReadResponseDTO{Updated: updated})
}

// Delete godoc
//
//	@Summary		Delete a notification
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid notification id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Notification not found"
//	@Router			/api/user/notifications/{id} [delete]
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	id, err := httputil.PathUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}
	if err := h.notificationService.Delete(r.Context(), userID, id); err != nil {
		respondWithErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegisterPushToken godoc
//
//	@Summary		Register the device token for push notifications
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	dto.PushTokenRequestDTO	true	"Device token"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/push-token [put]
func (h *NotificationHandler) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.PushTokenRequestDTO
	if err := httputil.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.notificationService.RegisterPushToken(r.Context(), userID, req.Token); err != nil {
		respondWithErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
