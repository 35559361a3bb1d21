package wallet

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httputil"
	"github.com/GlebRadaev/investledger/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type settleFunc func(ctx context.Context, transactionID uuid.UUID) (*domain.WalletTransaction, error)

func (h *WalletHandler) settle(w http.ResponseWriter, r *http.Request, action string, fn settleFunc) {
	id, err := httputil.PathUUID(r, "id")
	if err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	tx, err := fn(r.Context(), id)
	if err != nil {
		code, msg := httputil.StatusFor(err)
		utils.RespondWithFailure(w, code, msg)
		return
	}
	zap.L().Info("Transaction settled by admin",
		zap.String("action", action),
		zap.String("transactionID", id.String()))
	utils.RespondWithResult(w, http.StatusOK, dto.NewTransactionResponse(*tx))
}

// ConfirmDeposit godoc
//
//	@Summary		Confirm a pending deposit
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Transaction ID"
//	@Success		200	{object}	utils.ActionResult{data=dto.TransactionResponseDTO}
//	@Failure		400	{object}	utils.ActionResult	"Invalid transaction id"
//	@Failure		401	{object}	utils.Response		"Admin role required"
//	@Failure		404	{object}	utils.ActionResult	"Transaction not found"
//	@Failure		409	{object}	utils.ActionResult	"Transaction already settled"
//	@Router			/api/admin/transactions/{id}/confirm-deposit [post]
func (h *WalletHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, "confirm-deposit", h.walletService.ConfirmDeposit)
}

// FailDeposit godoc
//
//	@Summary		Mark a pending deposit as failed
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Transaction ID"
//	@Success		200	{object}	utils.ActionResult{data=dto.TransactionResponseDTO}
//	@Failure		401	{object}	utils.Response		"Admin role required"
//	@Failure		404	{object}	utils.ActionResult	"Transaction not found"
//	@Failure		409	{object}	utils.ActionResult	"Transaction already settled"
//	@Router			/api/admin/transactions/{id}/fail-deposit [post]
func (h *WalletHandler) FailDeposit(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, "fail-deposit", h.walletService.FailDeposit)
}

// CompleteWithdrawal godoc
//
//	@Summary		Mark a pending withdrawal as paid out
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Transaction ID"
//	@Success		200	{object}	utils.ActionResult{data=dto.TransactionResponseDTO}
//	@Failure		401	{object}	utils.Response		"Admin role required"
//	@Failure		404	{object}	utils.ActionResult	"Transaction not found"
//	@Failure		409	{object}	utils.ActionResult	"Transaction already settled"
//	@Router			/api/admin/transactions/{id}/complete-withdrawal [post]
func (h *WalletHandler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, "complete-withdrawal", h.walletService.CompleteWithdrawal)
}

// FailWithdrawal godoc
//
//	@Summary		Fail a pending withdrawal and refund the held amount
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Transaction ID"
//	@Success		200	{object}	utils.ActionResult{data=dto.TransactionResponseDTO}
//	@Failure		401	{object}	utils.Response		"Admin role required"
//	@Failure		404	{object}	utils.ActionResult	"Transaction not found"
//	@Failure		409	{object}	utils.ActionResult	"Transaction already settled"
//	@Router			/api/admin/transactions/{id}/fail-withdrawal [post]
func (h *WalletHandler) FailWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.settle(w, r, "fail-withdrawal", h.walletService.FailWithdrawal)
}

// Reconcile godoc
//
//	@Summary		Compare a wallet balance with its ledger
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Wallet ID"
//	@Success		200	{object}	utils.ActionResult{data=domain.Reconciliation}
//	@Failure		401	{object}	utils.Response		"Admin role required"
//	@Failure		404	{object}	utils.ActionResult	"Wallet not found"
//	@Router			/api/admin/wallets/{id}/reconcile [get]
func (h *WalletHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathUUID(r, "id")
	if err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, "Invalid wallet id")
		return
	}
	result, err := h.walletService.Reconcile(r.Context(), id)
	if err != nil {
		code, msg := httputil.StatusFor(err)
		utils.RespondWithFailure(w, code, msg)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, result)
}
