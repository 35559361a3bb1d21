package repo

import (
	"github.com/GlebRadaev/investledger/internal/delivery"
	"github.com/GlebRadaev/investledger/internal/pg"
	commissionrepo "github.com/GlebRadaev/investledger/internal/repo/commission-repo"
	notificationrepo "github.com/GlebRadaev/investledger/internal/repo/notification-repo"
	referralrepo "github.com/GlebRadaev/investledger/internal/repo/referral-repo"
	settingsrepo "github.com/GlebRadaev/investledger/internal/repo/settings-repo"
	transactionrepo "github.com/GlebRadaev/investledger/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/investledger/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/investledger/internal/repo/wallet-repo"
	"github.com/GlebRadaev/investledger/internal/service/authservice"
	"github.com/GlebRadaev/investledger/internal/service/commissionservice"
	"github.com/GlebRadaev/investledger/internal/service/notificationservice"
	"github.com/GlebRadaev/investledger/internal/service/settingsservice"
	"github.com/GlebRadaev/investledger/internal/service/walletservice"
)

// UserRepo serves registration, push token updates and delivery lookups.
type UserRepo interface {
	authservice.Repo
	notificationservice.UserRepo
	delivery.UserRepo
}

type ReferralRepo interface {
	authservice.ReferralRepo
	commissionservice.ReferralRepo
}

type Repositories struct {
	UserRepo         UserRepo
	WalletRepo       walletservice.WalletRepo
	TransactionRepo  walletservice.TransactionRepo
	ReferralRepo     ReferralRepo
	SettingsRepo     settingsservice.Repo
	CommissionRepo   commissionservice.CommissionRepo
	NotificationRepo notificationservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		WalletRepo:       walletrepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		ReferralRepo:     referralrepo.New(conn),
		SettingsRepo:     settingsrepo.New(conn, txManager),
		CommissionRepo:   commissionrepo.New(conn),
		NotificationRepo: notificationrepo.New(conn),
	}
}
