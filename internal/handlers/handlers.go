package handlers

import (
	"net/http"
	"time"

	_ "github.com/GlebRadaev/investledger/docs"
	authhandlers "github.com/GlebRadaev/investledger/internal/handlers/auth"
	commissionhandlers "github.com/GlebRadaev/investledger/internal/handlers/commissions"
	notificationhandlers "github.com/GlebRadaev/investledger/internal/handlers/notifications"
	settingshandlers "github.com/GlebRadaev/investledger/internal/handlers/settings"
	wallethandlers "github.com/GlebRadaev/investledger/internal/handlers/wallet"
	"github.com/GlebRadaev/investledger/internal/service"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const requestTimeout = 60 * time.Second

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	RequestDeposit(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	ConfirmDeposit(w http.ResponseWriter, r *http.Request)
	FailDeposit(w http.ResponseWriter, r *http.Request)
	CompleteWithdrawal(w http.ResponseWriter, r *http.Request)
	FailWithdrawal(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type CommissionHandler interface {
	GetMine(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	BulkApprove(w http.ResponseWriter, r *http.Request)
	RecordQualifying(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	UnreadCount(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	RegisterPushToken(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	WalletHandler       WalletHandler
	CommissionHandler   CommissionHandler
	SettingsHandler     SettingsHandler
	NotificationHandler NotificationHandler

	jwtService  auth.JWTServiceInterface
	gatherer    prometheus.Gatherer
	corsOrigins []string
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, gatherer prometheus.Gatherer, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		WalletHandler:       wallethandlers.New(s.WalletService, s.PurchaseService),
		CommissionHandler:   commissionhandlers.New(s.CommissionService),
		SettingsHandler:     settingshandlers.New(s.SettingsService),
		NotificationHandler: notificationhandlers.New(s.NotificationService),
		jwtService:          jwtService,
		gatherer:            gatherer,
		corsOrigins:         corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	origins := h.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(requestTimeout),
		cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/deposits", h.WalletHandler.RequestDeposit)
				r.Post("/withdrawals", h.WalletHandler.RequestWithdrawal)
				r.Post("/purchases", h.WalletHandler.Purchase)
			})
			r.Route("/commissions", func(r chi.Router) {
				r.Get("/", h.CommissionHandler.GetMine)
				r.Get("/summary", h.CommissionHandler.GetSummary)
			})
			r.Get("/referrals", h.CommissionHandler.GetReferrals)
			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Get("/unread-count", h.NotificationHandler.UnreadCount)
				r.Post("/read-all", h.NotificationHandler.MarkAllRead)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
				r.Delete("/{id}", h.NotificationHandler.Delete)
			})
			r.Put("/push-token", h.NotificationHandler.RegisterPushToken)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService), auth.AdminOnly)
		r.Route("/referral-settings", func(r chi.Router) {
			r.Get("/", h.SettingsHandler.Get)
			r.Put("/", h.SettingsHandler.Update)
			r.Get("/history", h.SettingsHandler.History)
		})
		r.Route("/commissions", func(r chi.Router) {
			r.Get("/", h.CommissionHandler.ListAll)
			r.Get("/pending", h.CommissionHandler.ListPending)
			r.Post("/bulk-approve", h.CommissionHandler.BulkApprove)
			r.Post("/qualifying", h.CommissionHandler.RecordQualifying)
			r.Post("/{id}/approve", h.CommissionHandler.Approve)
			r.Post("/{id}/reject", h.CommissionHandler.Reject)
		})
		r.Route("/transactions/{id}", func(r chi.Router) {
			r.Post("/confirm-deposit", h.WalletHandler.ConfirmDeposit)
			r.Post("/fail-deposit", h.WalletHandler.FailDeposit)
			r.Post("/complete-withdrawal", h.WalletHandler.CompleteWithdrawal)
			r.Post("/fail-withdrawal", h.WalletHandler.FailWithdrawal)
		})
		r.Get("/wallets/{id}/reconcile", h.WalletHandler.Reconcile)
	})

	return r
}
