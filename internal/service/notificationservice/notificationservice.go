package notificationservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Repo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type UserRepo interface {
	UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error
}

// Dispatcher hands a stored notification over to outbound delivery.
type Dispatcher interface {
	Enqueue(ctx context.Context, n domain.Notification)
}

type Service struct {
	repo       Repo
	userRepo   UserRepo
	dispatcher Dispatcher
}

func New(repo Repo, userRepo UserRepo, dispatcher Dispatcher) *Service {
	return &Service{
		repo:       repo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
	}
}

// Notify stores the in-app notification and, once the surrounding transaction
// commits, queues its email and push delivery.
func (s *Service) Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	if n.UserID == uuid.Nil || strings.TrimSpace(n.Title) == "" {
		return nil, fmt.Errorf("%w: notification needs a recipient and a title", domain.ErrInvalidInput)
	}
	if n.Type == "" {
		n.Type = domain.NotificationSystem
	}

	saved, err := s.repo.Create(ctx, &n)
	if err != nil {
		zap.L().Error("failed to store notification", zap.Error(err))
		return nil, err
	}

	if s.dispatcher != nil {
		delivered := *saved
		pg.AfterCommit(ctx, func(ctx context.Context) {
			s.dispatcher.Enqueue(ctx, delivered)
		})
	}
	return saved, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, userID, unreadOnly, limit, offset)
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: push token is empty", domain.ErrInvalidInput)
	}
	if err := s.userRepo.UpdatePushToken(ctx, userID, token); err != nil {
		return err
	}
	zap.L().Info("push token registered", zap.String("userID", userID.String()))
	return nil
}
