package settings

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httputil"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	Get(ctx context.Context) (*domain.RateTable, error)
	Update(ctx context.Context, update domain.RateUpdate, adminID uuid.UUID) (*domain.RateTable, error)
	History(ctx context.Context, limit int) ([]domain.SettingsAudit, error)
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get godoc
//
//	@Summary		Current referral commission rates
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.ActionResult{data=domain.RateTable}
//	@Failure		401	{object}	utils.Response		"Admin role required"
//	@Failure		500	{object}	utils.ActionResult	"Internal server error"
//	@Router			/api/admin/referral-settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	table, err := h.settingsService.Get(r.Context())
	if err != nil {
		code, msg := httputil.StatusFor(err)
		utils.RespondWithFailure(w, code, msg)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, table)
}

// Update godoc
//
//	@Summary		Change referral commission rates
//	@Description	Only the rates present in the body change. Every rate must be between 0 and 20 percent with at most two decimals. At least one rate is required.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"Rates to change"
//	@Success		200		{object}	utils.ActionResult{data=domain.RateTable}
//	@Failure		400		{object}	utils.ActionResult	"Invalid request body"
//	@Failure		401		{object}	utils.Response		"Admin role required"
//	@Failure		422		{object}	utils.ActionResult	"Rate out of range"
//	@Router			/api/admin/referral-settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.UpdateSettingsRequestDTO
	if err := httputil.Decode(r, &req); err != nil {
		utils.RespondWithFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	table, err := h.settingsService.Update(r.Context(), domain.RateUpdate{
		PropertyRate:    req.PropertyRate,
		EquipmentRate:   req.EquipmentRate,
		MarketRate:      req.MarketRate,
		GreenEnergyRate: req.GreenEnergyRate,
	}, adminID)
	if err != nil {
		code, msg := httputil.StatusFor(err)
		utils.RespondWithFailure(w, code, msg)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, table)
}

// History godoc
//
//	@Summary		Audit trail of rate changes
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries (default 50)"
//	@Success		200		{object}	utils.ActionResult{data=[]domain.SettingsAudit}
//	@Failure		401		{object}	utils.Response		"Admin role required"
//	@Failure		500		{object}	utils.ActionResult	"Internal server error"
//	@Router			/api/admin/referral-settings/history [get]
func (h *SettingsHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.settingsService.History(r.Context(), limit)
	if err != nil {
		code, msg := httputil.StatusFor(err)
		utils.RespondWithFailure(w, code, msg)
		return
	}
	utils.RespondWithResult(w, http.StatusOK, history)
}
