package wallet

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httputil"
	"github.com/GlebRadaev/investledger/internal/service/purchaseservice"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.Wallet, []domain.WalletTransaction, error)
	RequestDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, cryptoType string) (*domain.WalletTransaction, error)
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, cryptoType, address string) (*domain.WalletTransaction, error)
	ConfirmDeposit(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error)
	FailDeposit(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error)
	CompleteWithdrawal(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error)
	FailWithdrawal(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error)
	Reconcile(ctx context.Context, walletID uuid.UUID) (*domain.Reconciliation, error)
}

type PurchaseService interface {
	Purchase(ctx context.Context, userID uuid.UUID, source domain.CommissionSource, amount decimal.Decimal, description string) (*purchaseservice.Receipt, error)
}

type WalletHandler struct {
	walletService   Service
	purchaseService PurchaseService
}

func New(walletService Service, purchaseService PurchaseService) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		purchaseService: purchaseService,
	}
}

func respondWithErr(w http.ResponseWriter, err error) {
	code, msg := httputil.StatusFor(err)
	utils.RespondWithError(w, code, msg)
}

// GetWallet godoc
//
//	@Summary		Get wallet balance
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		respondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		ID:      wallet.ID.String(),
		Balance: wallet.Balance,
	})
}

// GetTransactions godoc
//
//	@Summary		List wallet transactions
//	@Description	Returns the wallet with a page of its transactions, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	dto.WalletHistoryResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	limit, offset := httputil.Page(r)

	wallet, transactions, err := h.walletService.History(r.Context(), userID, limit, offset)
	if err != nil {
		respondWithErr(w, err)
		return
	}
	resp := dto.WalletHistoryResponseDTO{
		Wallet:       dto.WalletResponseDTO{ID: wallet.ID.String(), Balance: wallet.Balance},
		Transactions: make([]dto.TransactionResponseDTO, len(transactions)),
	}
	for i, t := range transactions {
		resp.Transactions[i] = dto.NewTransactionResponse(t)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// RequestDeposit godoc
//
//	@Summary		Request a crypto deposit
//	@Description	Records a pending deposit. The balance changes only after an admin confirms it.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request"
//	@Success		202		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/deposits [post]
func (h *WalletHandler) RequestDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.DepositRequestDTO
	if err := httputil.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	tx, err := h.walletService.RequestDeposit(r.Context(), userID, req.Amount, req.CryptoType)
	if err != nil {
		respondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.NewTransactionResponse(*tx))
}

// RequestWithdrawal godoc
//
//	@Summary		Request a crypto withdrawal
//	@Description	Holds the amount immediately and records a pending withdrawal for an admin to settle.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request"
//	@Success		202		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/withdrawals [post]
func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.WithdrawalRequestDTO
	if err := httputil.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	tx, err := h.walletService.RequestWithdrawal(r.Context(), userID, req.Amount, req.CryptoType, req.Address)
	if err != nil {
		respondWithErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, dto.NewTransactionResponse(*tx))
}

// Purchase godoc
//
//	@Summary		Pay for an asset from the wallet
//	@Description	Debits the wallet and, when the buyer was referred, records a pending commission for the referrer.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/purchases [post]
func (h *WalletHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.PurchaseRequestDTO
	if err := httputil.Decode(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	source := domain.CommissionSource{Kind: domain.SourceKind(req.Kind), ID: req.SourceID}
	receipt, err := h.purchaseService.Purchase(r.Context(), userID, source, req.Amount, req.Description)
	if err != nil {
		respondWithErr(w, err)
		return
	}
	resp := dto.PurchaseResponseDTO{Transaction: dto.NewTransactionResponse(*receipt.Transaction)}
	if receipt.Commission != nil {
		c := dto.NewCommissionResponse(*receipt.Commission)
		resp.Commission = &c
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
