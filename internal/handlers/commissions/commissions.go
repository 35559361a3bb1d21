package commissions

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httputil"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	ForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Commission, error)
	Summary(ctx context.Context, userID uuid.UUID) (*domain.CommissionSummary, error)
	List(ctx context.Context, filter domain.CommissionFilter) ([]domain.Commission, error)
	Pending(ctx context.Context, limit, offset int) ([]domain.Commission, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Commission, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*domain.Commission, error)
	BulkApprove(ctx context.Context, ids []uuid.UUID) domain.BulkResult
	Record(ctx context.Context, qt domain.QualifyingTransaction) (*domain.Commission, error)
	Referrals(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error)
}

type CommissionHandler struct {
	commissionService Service
}

func New(commissionService Service) *CommissionHandler {
	return &CommissionHandler{
		commissionService: commissionService,
	}
}

// GetMine godoc
//
//	@Summary		List commissions earned by the current user
//	@Tags			Commissions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.CommissionResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/commissions [get]
func (h *CommissionHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	limit, offset := httputil.Page(r)

	commissions, err := h.commissionService.ForUser(r.Context(), userID, limit, offset)
	if err != nil {
		code, msg := httputil.StatusFor(err)
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCommissionList(commissions))
}

// GetSummary godoc
//
//	@Summary		Commission totals of the current user by status
//	@Tags			Commissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.CommissionSummary
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/commissions/summary [get]
func (h *CommissionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	summary, err := h.commissionService.Summary(r.Context(), userID)
	if err != nil {
		code, msg := httputil.StatusFor(err)
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// GetReferrals godoc
//
//	@Summary		Users who registered with the current user's referral code
//	@Tags			Commissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *CommissionHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	referrals, err := h.commissionService.Referrals(r.Context(), userID)
	if err != nil {
		code, msg := httputil.StatusFor(err)
		utils.RespondWithError(w, code, msg)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReferralList(referrals))
}
