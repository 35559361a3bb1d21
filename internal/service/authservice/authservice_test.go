package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	users     *MockRepo
	referrals *MockReferralRepo
	wallets   *MockWalletService
	hash      *auth.MockHashServiceInterface
	jwt       *auth.MockJWTServiceInterface
}

const newCode = "1234567897"

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:     NewMockRepo(ctrl),
		referrals: NewMockReferralRepo(ctrl),
		wallets:   NewMockWalletService(ctrl),
		hash:      auth.NewMockHashServiceInterface(ctrl),
		jwt:       auth.NewMockJWTServiceInterface(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.users, m.referrals, m.wallets, m.hash, m.jwt, txManager, time.Hour)
	service.newCode = func() string { return newCode }
	return service, m
}

func TestRegister(t *testing.T) {
	userID, referrerID := uuid.New(), uuid.New()
	created := func(_ context.Context, user *domain.User) (*domain.User, error) {
		user.ID = userID
		return user, nil
	}

	tests := []struct {
		name          string
		email         string
		referralCode  string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:  "Successful registration",
			email: " Investor@Example.com ",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "investor@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("password123").Return("hashed", nil)
				m.users.EXPECT().FindByReferralCode(gomock.Any(), newCode).Return(nil, nil)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, "investor@example.com", user.Email)
					assert.Equal(t, "hashed", user.PasswordHash)
					assert.Equal(t, domain.RoleUser, user.Role)
					assert.Equal(t, newCode, user.ReferralCode)
					return created(ctx, user)
				})
				m.wallets.EXPECT().CreateWallet(gomock.Any(), userID).Return(&domain.Wallet{ID: uuid.New()}, nil)
			},
		},
		{
			name:         "Referred registration links referrer",
			email:        "friend@example.com",
			referralCode: "79927398713",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "friend@example.com").Return(nil, nil)
				m.users.EXPECT().FindByReferralCode(gomock.Any(), "79927398713").Return(&domain.User{ID: referrerID}, nil)
				m.hash.EXPECT().HashPassword("password123").Return("hashed", nil)
				m.users.EXPECT().FindByReferralCode(gomock.Any(), newCode).Return(nil, nil)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
				m.wallets.EXPECT().CreateWallet(gomock.Any(), userID).Return(&domain.Wallet{}, nil)
				m.referrals.EXPECT().Create(gomock.Any(), referrerID, userID).Return(&domain.Referral{}, nil)
			},
		},
		{
			name:  "User already exists",
			email: "investor@example.com",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "investor@example.com").Return(&domain.User{}, nil)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name:         "Referral code fails checksum",
			email:        "friend@example.com",
			referralCode: "79927398710",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "friend@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidReferralCode,
		},
		{
			name:         "Referral code unknown",
			email:        "friend@example.com",
			referralCode: "79927398713",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "friend@example.com").Return(nil, nil)
				m.users.EXPECT().FindByReferralCode(gomock.Any(), "79927398713").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidReferralCode,
		},
		{
			name:  "Wallet failure undoes registration",
			email: "investor@example.com",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "investor@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("password123").Return("hashed", nil)
				m.users.EXPECT().FindByReferralCode(gomock.Any(), newCode).Return(nil, nil)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
				m.wallets.EXPECT().CreateWallet(gomock.Any(), userID).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:  "Referral codes exhausted",
			email: "investor@example.com",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "investor@example.com").Return(nil, nil)
				m.hash.EXPECT().HashPassword("password123").Return("hashed", nil)
				m.users.EXPECT().FindByReferralCode(gomock.Any(), newCode).Return(&domain.User{}, nil).Times(referralCodeAttempts)
			},
			expectedError: errReferralCodeExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Register(context.Background(), tt.email, "password123", tt.referralCode)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "investor@example.com", PasswordHash: "hashed"}

	tests := []struct {
		name          string
		password      string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:     "Valid credentials",
			password: "password123",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "investor@example.com").Return(user, nil)
				m.hash.EXPECT().ComparePassword("hashed", "password123").Return(true)
			},
		},
		{
			name:     "Wrong password",
			password: "nope",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "investor@example.com").Return(user, nil)
				m.hash.EXPECT().ComparePassword("hashed", "nope").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Unknown user",
			password: "password123",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "investor@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Database error hidden",
			password: "password123",
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByEmail(gomock.Any(), "investor@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.Authenticate(context.Background(), "investor@example.com", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, user, result)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)
	user := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin, EmailVerified: true, KYCStatus: domain.KYCApproved}

	m.jwt.EXPECT().GenerateJWT(auth.Session{
		UserID:        user.ID,
		Role:          "ADMIN",
		EmailVerified: true,
		KYCStatus:     "APPROVED",
	}, gomock.Any()).DoAndReturn(func(_ auth.Session, exp time.Time) (string, error) {
		assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
		return "token", nil
	})
	m.jwt.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).Return("", errors.New("signing error"))

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	_, err = service.GenerateToken(user)
	assert.Error(t, err)
}
