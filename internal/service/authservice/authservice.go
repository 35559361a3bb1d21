package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const referralCodeAttempts = 5

var errReferralCodeExhausted = errors.New("could not allocate a unique referral code")

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type ReferralRepo interface {
	Create(ctx context.Context, referrerID, referredUserID uuid.UUID) (*domain.Referral, error)
}

type WalletService interface {
	CreateWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type Service struct {
	userRepo      Repo
	referralRepo  ReferralRepo
	walletService WalletService
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
	txManager     pg.TXManager
	tokenTTL      time.Duration
	newCode       func() string
}

func New(repo Repo, referralRepo ReferralRepo, walletService WalletService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, txManager pg.TXManager, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:      repo,
		referralRepo:  referralRepo,
		walletService: walletService,
		hashService:   hashService,
		jwtService:    jwtService,
		txManager:     txManager,
		tokenTTL:      tokenTTL,
		newCode:       validate.NewReferralCode,
	}
}

// Register creates the account, its wallet and, when referralCode is set, the
// referral link to the owner of that code. Nothing is kept if any step fails.
func (s *Service) Register(ctx context.Context, email, password, referralCode string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, domain.ErrUserExists
	}

	var referrer *domain.User
	if referralCode != "" {
		if !validate.IsLuna(referralCode) {
			return nil, domain.ErrInvalidReferralCode
		}
		referrer, err = s.userRepo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			return nil, err
		}
		if referrer == nil {
			return nil, domain.ErrInvalidReferralCode
		}
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	code, err := s.allocateReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	var newUser *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newUser, err = s.userRepo.Create(ctx, &domain.User{
			Email:        email,
			PasswordHash: hashedPassword,
			Role:         domain.RoleUser,
			ReferralCode: code,
		})
		if err != nil {
			return err
		}
		if _, err := s.walletService.CreateWallet(ctx, newUser.ID); err != nil {
			return err
		}
		if referrer != nil {
			if _, err := s.referralRepo.Create(ctx, referrer.ID, newUser.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered",
		zap.String("email", email),
		zap.Bool("referred", referrer != nil))
	return newUser, nil
}

func (s *Service) allocateReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code := s.newCode()
		owner, err := s.userRepo.FindByReferralCode(ctx, code)
		if err != nil {
			return "", err
		}
		if owner == nil {
			return code, nil
		}
	}
	return "", errReferralCodeExhausted
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(auth.Session{
		UserID:        user.ID,
		Role:          string(user.Role),
		EmailVerified: user.EmailVerified,
		KYCStatus:     string(user.KYCStatus),
	}, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
