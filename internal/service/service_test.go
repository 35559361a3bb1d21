package service

import (
	"testing"
	"time"

	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service/authservice"
	"github.com/GlebRadaev/investledger/internal/service/commissionservice"
	"github.com/GlebRadaev/investledger/internal/service/notificationservice"
	"github.com/GlebRadaev/investledger/internal/service/purchaseservice"
	"github.com/GlebRadaev/investledger/internal/service/settingsservice"
	"github.com/GlebRadaev/investledger/internal/service/walletservice"
	pkgauth "github.com/GlebRadaev/investledger/pkg/auth"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, txManager)

	services := New(repos, txManager, pkgauth.NewMockJWTServiceInterface(ctrl), nil,
		notificationservice.NewMockDispatcher(ctrl), Options{TokenTTL: time.Hour, SettingsCacheTTL: time.Minute})

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &walletservice.Service{}, services.WalletService)
	assert.IsType(t, &purchaseservice.Service{}, services.PurchaseService)
	assert.IsType(t, &commissionservice.Service{}, services.CommissionService)
	assert.IsType(t, &settingsservice.Service{}, services.SettingsService)
	assert.IsType(t, &notificationservice.Service{}, services.NotificationService)
}
