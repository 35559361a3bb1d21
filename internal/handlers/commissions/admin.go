package commissions

import (
	"net/http"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httputil"
	"github.com/GlebRadaev/investledger/pkg/utils"
	"github.com/google/uuid"
)

func respondWithFailure(w http.ResponseWriter, err error) {
	code, msg := httputil.StatusFor(err)
	utils.RespondWithFailure(w, code, msg)
}

// ListAll godoc
//
//	@Summary		List commissions
//	@Description	Filters by status and referrer. Newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"PENDING, APPROVED, REJECTED or PAID"
//	@Param			user_id	query		string	false	"Referrer ID"
//	@Param			limit	query		int		false	"Page size (default 20, max 100)"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	utils.ActionResult{data=[]dto.CommissionResponseDTO}
//	@Failure		400		{object}	utils.ActionResult	"Invalid filter"
//	@Failure		401		{object}	utils.Response		"Admin role required"
//	@Router			/api/admin/commissions [get]
func (h *CommissionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset := httputil.Page(r)
	filter := domain.CommissionFilter{Limit: limit, Offset: offset}

	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.CommissionStatus(s)
		if !status.Valid() {
			utils.RespondWithFailure(w, http.StatusBadRequest, "Unknown commission status")
			return
		}
		filter.Status = &status
	}
	if s := r.URL.Query().Get("user_id"); s != "" {
		userID, err := uuid.Parse(s)
		if err != nil {
			utils.RespondWithFailure(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		filter.UserID = &userID
	}

	commissions, err := h.commissionService.List(r.Context(), filter)
	if err != nil {
		respondWithFailure(w, err)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, dto.NewCommissionList(commissions))
}

// ListPending godoc
//
//	@Summary		List commissions awaiting review
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	utils.ActionResult{data=[]dto.CommissionResponseDTO}
//	@Failure		401		{object}	utils.Response	"Admin role required"
//	@Router			/api/admin/commissions/pending [get]
func (h *CommissionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	limit, offset := httputil.Page(r)

	commissions, err := h.commissionService.Pending(r.Context(), limit, offset)
	if err != nil {
		respondWithFailure(w, err)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, dto.NewCommissionList(commissions))
}

// Approve godoc
//
//	@Summary		Approve a pending commission
//	@Description	Credits the referrer's wallet with the commission amount and marks it paid out.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Commission ID"
//	@Success		200	{object}	utils.ActionResult{data=dto.CommissionResponseDTO}
//	@Failure		400	{object}	utils.ActionResult	"Invalid commission id"
//	@Failure		401	{object}	utils.Response		"Admin role required"
//	@Failure		404	{object}	utils.ActionResult	"Commission not found"
//	@Failure		409	{object}	utils.ActionResult	"Commission is not pending"
//	@Router			/api/admin/commissions/{id}/approve [post]
func (h *CommissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathUUID(r, "id")
	if err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, "Invalid commission id")
		return
	}
	commission, err := h.commissionService.Approve(r.Context(), id)
	if err != nil {
		respondWithFailure(w, err)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, dto.NewCommissionResponse(*commission))
}

// Reject godoc
//
//	@Summary		Reject a pending commission
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Commission ID"
//	@Param			request	body		dto.RejectCommissionRequestDTO	true	"Rejection reason"
//	@Success		200		{object}	utils.ActionResult{data=dto.CommissionResponseDTO}
//	@Failure		400		{object}	utils.ActionResult	"Invalid request"
//	@Failure		401		{object}	utils.Response		"Admin role required"
//	@Failure		404		{object}	utils.ActionResult	"Commission not found"
//	@Failure		409		{object}	utils.ActionResult	"Commission is not pending"
//	@Router			/api/admin/commissions/{id}/reject [post]
func (h *CommissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathUUID(r, "id")
	if err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, "Invalid commission id")
		return
	}
	var req dto.RejectCommissionRequestDTO
	if err := httputil.Decode(r, &req); err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	commission, err := h.commissionService.Reject(r.Context(), id, req.Reason)
	if err != nil {
		respondWithFailure(w, err)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, dto.NewCommissionResponse(*commission))
}

// BulkApprove godoc
//
//	@Summary		Approve many commissions
//	@Description	Each commission is approved on its own. The result lists the ones that failed.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BulkApproveRequestDTO	true	"Commission IDs"
//	@Success		200		{object}	utils.ActionResult{data=domain.BulkResult}
//	@Failure		400		{object}	utils.ActionResult	"Invalid request"
//	@Failure		401		{object}	utils.Response		"Admin role required"
//	@Router			/api/admin/commissions/bulk-approve [post]
func (h *CommissionHandler) BulkApprove(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkApproveRequestDTO
	if err := httputil.Decode(r, &req); err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	ids := make([]uuid.UUID, len(req.IDs))
	for i, s := range req.IDs {
		ids[i] = uuid.MustParse(s)
	}

	result := h.commissionService.BulkApprove(r.Context(), ids)
	utils.RespondWithResult(w, http.StatusOK, result)
}

// RecordQualifying godoc
//
//	@Summary		Report a completed qualifying transaction
//	@Description	Records a pending commission for the user's referrer. Data is empty when no commission applies.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.QualifyingTransactionRequestDTO	true	"Qualifying transaction"
//	@Success		200		{object}	utils.ActionResult{data=dto.CommissionResponseDTO}
//	@Failure		400		{object}	utils.ActionResult	"Invalid request"
//	@Failure		401		{object}	utils.Response		"Admin role required"
//	@Router			/api/admin/commissions/qualifying [post]
func (h *CommissionHandler) RecordQualifying(w http.ResponseWriter, r *http.Request) {
	var req dto.QualifyingTransactionRequestDTO
	if err := httputil.Decode(r, &req); err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	commission, err := h.commissionService.Record(r.Context(), domain.QualifyingTransaction{
		UserID: uuid.MustParse(req.UserID),
		Amount: req.Amount,
		Source: domain.CommissionSource{Kind: domain.SourceKind(req.SourceKind), ID: req.SourceID},
	})
	if err != nil {
		respondWithFailure(w, err)
		return
	}
	if commission == nil {
		utils.RespondWithResult(w, http.StatusOK, nil)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, dto.NewCommissionResponse(*commission))
}
