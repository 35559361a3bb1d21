package service

import (
	"time"

	"github.com/GlebRadaev/investledger/internal/handlers/auth"
	"github.com/GlebRadaev/investledger/internal/handlers/commissions"
	"github.com/GlebRadaev/investledger/internal/handlers/notifications"
	"github.com/GlebRadaev/investledger/internal/handlers/settings"
	"github.com/GlebRadaev/investledger/internal/handlers/wallet"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service/authservice"
	"github.com/GlebRadaev/investledger/internal/service/commissionservice"
	"github.com/GlebRadaev/investledger/internal/service/notificationservice"
	"github.com/GlebRadaev/investledger/internal/service/purchaseservice"
	"github.com/GlebRadaev/investledger/internal/service/settingsservice"
	"github.com/GlebRadaev/investledger/internal/service/walletservice"
	pkgauth "github.com/GlebRadaev/investledger/pkg/auth"
)

type Options struct {
	TokenTTL         time.Duration
	SettingsCacheTTL time.Duration
	BcryptCost       int
}

type Services struct {
	AuthService         auth.Service
	WalletService       wallet.Service
	PurchaseService     wallet.PurchaseService
	CommissionService   commissions.Service
	SettingsService     settings.Service
	NotificationService notifications.Service
}

// New wires the services together. cache may be nil when Redis is not configured.
func New(
	repo *repo.Repositories,
	txManager pg.TXManager,
	jwtService pkgauth.JWTServiceInterface,
	cache settingsservice.Cache,
	dispatcher notificationservice.Dispatcher,
	opts Options,
) *Services {
	notificationService := notificationservice.New(repo.NotificationRepo, repo.UserRepo, dispatcher)
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, notificationService, txManager)
	settingsService := settingsservice.New(repo.SettingsRepo, cache, opts.SettingsCacheTTL, txManager)
	commissionService := commissionservice.New(repo.CommissionRepo, repo.ReferralRepo, settingsService, walletService, notificationService, txManager)
	purchaseService := purchaseservice.New(walletService, commissionService, notificationService, txManager)
	authService := authservice.New(repo.UserRepo, repo.ReferralRepo, walletService,
		pkgauth.NewHashService(opts.BcryptCost), jwtService, txManager, opts.TokenTTL)

	return &Services{
		AuthService:         authService,
		WalletService:       walletService,
		PurchaseService:     purchaseService,
		CommissionService:   commissionService,
		SettingsService:     settingsService,
		NotificationService: notificationService,
	}
}
