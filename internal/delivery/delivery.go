package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultMaxRetries = 3
	retryInterval     = time.Second * 1
	deliveryTimeout   = time.Second * 30
)

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

type Options struct {
	// EmailMaxRetries is the number of email attempts per notification.
	EmailMaxRetries int
}

// Service delivers persisted notifications over email and push in the
// background. Channels are independent: a failure on one never stops the other.
type Service struct {
	users         UserRepo
	email         EmailSender
	push          PushSender
	workerPool    WorkerPoolI
	metrics       *Metrics
	maxRetries    int
	retryInterval time.Duration
}

// New wires the delivery service. email or push may be nil to disable that channel.
func New(users UserRepo, email EmailSender, push PushSender, workerPool WorkerPoolI, metrics *Metrics, opts Options) *Service {
	maxRetries := opts.EmailMaxRetries
	if maxRetries < 1 {
		maxRetries = defaultMaxRetries
	}
	return &Service{
		users:         users,
		email:         email,
		push:          push,
		workerPool:    workerPool,
		metrics:       metrics,
		maxRetries:    maxRetries,
		retryInterval: retryInterval,
	}
}

// Enqueue schedules delivery of n without waiting. It never fails the caller:
// when the queue is full the notification is dropped and counted.
func (s *Service) Enqueue(ctx context.Context, n domain.Notification) {
	taskCtx := context.WithoutCancel(ctx)

	err := s.workerPool.TryAddTask(func() error {
		ctx, cancel := context.WithTimeout(taskCtx, deliveryTimeout)
		defer cancel()
		return s.Deliver(ctx, n)
	})
	if err != nil {
		s.metrics.dropped.Inc()
		zap.L().Warn("notification delivery dropped",
			zap.String("notificationID", n.ID.String()),
			zap.Error(err))
	}
}

// Deliver sends n to every configured channel of its recipient.
func (s *Service) Deliver(ctx context.Context, n domain.Notification) error {
	if s.email == nil && s.push == nil {
		return nil
	}

	user, err := s.users.FindByID(ctx, n.UserID)
	if err != nil {
		return fmt.Errorf("load recipient of notification %s: %w", n.ID, err)
	}
	if user == nil {
		return fmt.Errorf("recipient %s of notification %s: %w", n.UserID, n.ID, domain.ErrNotFound)
	}

	var errs []error
	if s.email != nil && user.Email != "" {
		errs = append(errs, s.sendEmail(ctx, user.Email, n))
	}
	if s.push != nil && user.PushToken != nil && *user.PushToken != "" {
		errs = append(errs, s.sendPush(ctx, *user.PushToken, n))
	}
	return errors.Join(errs...)
}

func (s *Service) sendEmail(ctx context.Context, to string, n domain.Notification) error {
	start := time.Now()
	defer func() {
		s.metrics.duration.WithLabelValues(channelEmail).Observe(time.Since(start).Seconds())
	}()

	var err error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		if err = s.email.Send(ctx, to, n.Title, emailBody(n)); err == nil {
			s.metrics.deliveries.WithLabelValues(channelEmail, resultSuccess).Inc()
			return nil
		}
		zap.L().Warn("email delivery failed",
			zap.String("notificationID", n.ID.String()),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt == s.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			s.metrics.deliveries.WithLabelValues(channelEmail, resultFailure).Inc()
			return ctx.Err()
		case <-time.After(s.retryInterval * time.Duration(attempt)):
		}
	}

	s.metrics.deliveries.WithLabelValues(channelEmail, resultFailure).Inc()
	return fmt.Errorf("email for notification %s failed after %d attempts: %w", n.ID, s.maxRetries, err)
}

func (s *Service) sendPush(ctx context.Context, token string, n domain.Notification) error {
	start := time.Now()
	defer func() {
		s.metrics.duration.WithLabelValues(channelPush).Observe(time.Since(start).Seconds())
	}()

	data := map[string]string{
		"notificationId": n.ID.String(),
		"type":           string(n.Type),
	}
	if n.ActionURL != nil {
		data["actionUrl"] = *n.ActionURL
	}

	if err := s.push.Send(ctx, token, n.Title, n.Message, data); err != nil {
		s.metrics.deliveries.WithLabelValues(channelPush, resultFailure).Inc()
		zap.L().Warn("push delivery failed",
			zap.String("notificationID", n.ID.String()),
			zap.Error(err))
		return fmt.Errorf("push for notification %s: %w", n.ID, err)
	}
	s.metrics.deliveries.WithLabelValues(channelPush, resultSuccess).Inc()
	return nil
}

func emailBody(n domain.Notification) string {
	if n.ActionURL == nil {
		return n.Message
	}
	return n.Message + "\n\nView details: " + *n.ActionURL
}
