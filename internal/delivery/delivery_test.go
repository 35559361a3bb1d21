package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type deps struct {
	users *MockUserRepo
	email *MockEmailSender
	push  *MockPushSender
	pool  *MockWorkerPoolI
}

func NewMock(t *testing.T) (*Service, *deps) {
	ctrl := gomock.NewController(t)
	d := &deps{
		users: NewMockUserRepo(ctrl),
		email: NewMockEmailSender(ctrl),
		push:  NewMockPushSender(ctrl),
		pool:  NewMockWorkerPoolI(ctrl),
	}
	service := New(d.users, d.email, d.push, d.pool, NewMetrics(prometheus.NewRegistry()), Options{EmailMaxRetries: 3})
	service.retryInterval = time.Millisecond
	return service, d
}

func notification(userID uuid.UUID) domain.Notification {
	url := "/dashboard/referrals"
	return domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Commission Approved",
		Message:   "Your $50.00 commission has been approved.",
		Type:      domain.NotificationCommissionApproved,
		ActionURL: &url,
	}
}

func TestDeliver(t *testing.T) {
	userID := uuid.New()
	token := "device-token"
	user := &domain.User{ID: userID, Email: "investor@example.com", PushToken: &token}

	tests := []struct {
		name         string
		prepareMock  func(d *deps)
		expectErr    bool
		emailSuccess float64
		emailFailure float64
		pushSuccess  float64
		pushFailure  float64
	}{
		{
			name: "Both channels delivered",
			prepareMock: func(d *deps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
				d.email.EXPECT().Send(gomock.Any(), "investor@example.com", "Commission Approved", gomock.Any()).Return(nil)
				d.push.EXPECT().Send(gomock.Any(), token, "Commission Approved", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, _ string, data map[string]string) error {
						assert.Equal(t, string(domain.NotificationCommissionApproved), data["type"])
						assert.Equal(t, "/dashboard/referrals", data["actionUrl"])
						return nil
					})
			},
			emailSuccess: 1,
			pushSuccess:  1,
		},
		{
			name: "Email retried until it succeeds",
			prepareMock: func(d *deps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
				gomock.InOrder(
					d.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout")),
					d.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
				)
				d.push.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			emailSuccess: 1,
			pushSuccess:  1,
		},
		{
			name: "Email exhausted does not stop push",
			prepareMock: func(d *deps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
				d.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(3)
				d.push.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectErr:    true,
			emailFailure: 1,
			pushSuccess:  1,
		},
		{
			name: "Push is not retried",
			prepareMock: func(d *deps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
				d.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.push.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("unregistered")).Times(1)
			},
			expectErr:    true,
			emailSuccess: 1,
			pushFailure:  1,
		},
		{
			name: "No push token",
			prepareMock: func(d *deps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: "investor@example.com"}, nil)
				d.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			emailSuccess: 1,
		},
		{
			name: "Recipient gone",
			prepareMock: func(d *deps) {
				d.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, d := NewMock(t)
			tt.prepareMock(d)

			err := service.Deliver(context.Background(), notification(userID))

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.emailSuccess, testutil.ToFloat64(service.metrics.deliveries.WithLabelValues(channelEmail, resultSuccess)))
			assert.Equal(t, tt.emailFailure, testutil.ToFloat64(service.metrics.deliveries.WithLabelValues(channelEmail, resultFailure)))
			assert.Equal(t, tt.pushSuccess, testutil.ToFloat64(service.metrics.deliveries.WithLabelValues(channelPush, resultSuccess)))
			assert.Equal(t, tt.pushFailure, testutil.ToFloat64(service.metrics.deliveries.WithLabelValues(channelPush, resultFailure)))
		})
	}
}

func TestDeliver_ChannelsDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := NewMockUserRepo(ctrl)
	service := New(users, nil, nil, NewMockWorkerPoolI(ctrl), NewMetrics(prometheus.NewRegistry()), Options{})

	assert.NoError(t, service.Deliver(context.Background(), notification(uuid.New())))
	assert.Equal(t, defaultMaxRetries, service.maxRetries)
}

func TestEnqueue(t *testing.T) {
	userID := uuid.New()

	t.Run("Queued task delivers", func(t *testing.T) {
		service, d := NewMock(t)
		d.pool.EXPECT().TryAddTask(gomock.Any()).DoAndReturn(func(task Task) error {
			return task()
		})
		d.users.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: "investor@example.com"}, nil)
		d.email.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		service.Enqueue(ctx, notification(userID))

		assert.Equal(t, float64(0), testutil.ToFloat64(service.metrics.dropped))
	})

	t.Run("Full queue drops and counts", func(t *testing.T) {
		service, d := NewMock(t)
		d.pool.EXPECT().TryAddTask(gomock.Any()).Return(ErrPoolFull)

		service.Enqueue(context.Background(), notification(userID))

		assert.Equal(t, float64(1), testutil.ToFloat64(service.metrics.dropped))
	})
}
