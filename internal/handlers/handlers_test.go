package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/GlebRadaev/investledger/docs"
	"github.com/GlebRadaev/investledger/internal/handlers/auth"
	"github.com/GlebRadaev/investledger/internal/handlers/commissions"
	"github.com/GlebRadaev/investledger/internal/handlers/notifications"
	"github.com/GlebRadaev/investledger/internal/handlers/settings"
	"github.com/GlebRadaev/investledger/internal/handlers/wallet"
	"github.com/GlebRadaev/investledger/internal/service"
	pkgauth "github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:         auth.NewMockService(ctrl),
		WalletService:       wallet.NewMockService(ctrl),
		PurchaseService:     wallet.NewMockPurchaseService(ctrl),
		CommissionService:   commissions.NewMockService(ctrl),
		SettingsService:     settings.NewMockService(ctrl),
		NotificationService: notifications.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockJWTServiceInterface(ctrl), prometheus.NewRegistry(), nil)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func newRouter(t *testing.T) chi.Router {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockCommissionHandler := NewMockCommissionHandler(ctrl)
	mockSettingsHandler := NewMockSettingsHandler(ctrl)
	mockNotificationHandler := NewMockNotificationHandler(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().ConfirmDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockCommissionHandler.EXPECT().GetMine(gomock.Any(), gomock.Any()).AnyTimes()
	mockCommissionHandler.EXPECT().ListPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettingsHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockNotificationHandler.EXPECT().UnreadCount(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService.EXPECT().ValidateToken("user-token").Return(&pkgauth.Claims{
		Session: pkgauth.Session{UserID: uuid.New(), Role: "USER"},
	}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("admin-token").Return(&pkgauth.Claims{
		Session: pkgauth.Session{UserID: uuid.New(), Role: pkgauth.RoleAdmin},
	}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("expired-token").Return(nil, errors.New("token is expired")).AnyTimes()

	h := &Handlers{
		AuthHandler:         mockAuthHandler,
		WalletHandler:       mockWalletHandler,
		CommissionHandler:   mockCommissionHandler,
		SettingsHandler:     mockSettingsHandler,
		NotificationHandler: mockNotificationHandler,
		jwtService:          jwtService,
		gatherer:            prometheus.NewRegistry(),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

func TestInitRoutes(t *testing.T) {
	router := newRouter(t)
	transactionID := uuid.New().String()

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"GET", "/api/user/wallet", "", http.StatusUnauthorized},
		{"GET", "/api/user/wallet", "expired-token", http.StatusUnauthorized},
		{"GET", "/api/user/wallet", "user-token", http.StatusOK},
		{"POST", "/api/user/wallet/purchases", "", http.StatusUnauthorized},
		{"GET", "/api/user/commissions", "user-token", http.StatusOK},
		{"GET", "/api/user/referrals", "", http.StatusUnauthorized},
		{"GET", "/api/user/notifications/unread-count", "user-token", http.StatusOK},
		{"PUT", "/api/user/push-token", "", http.StatusUnauthorized},
		{"GET", "/api/admin/referral-settings", "", http.StatusUnauthorized},
		{"GET", "/api/admin/referral-settings", "user-token", http.StatusUnauthorized},
		{"GET", "/api/admin/referral-settings", "admin-token", http.StatusOK},
		{"GET", "/api/admin/commissions/pending", "admin-token", http.StatusOK},
		{"POST", "/api/admin/commissions/bulk-approve", "user-token", http.StatusUnauthorized},
		{"POST", "/api/admin/transactions/" + transactionID + "/confirm-deposit", "admin-token", http.StatusOK},
		{"GET", "/api/admin/wallets/" + transactionID + "/reconcile", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_CORSPreflight(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/user/wallet", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), http.MethodGet))
}
