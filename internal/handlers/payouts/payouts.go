package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/dto"
	"github.com/mkarenzi/ikimina/internal/service/payoutservice"
	"github.com/mkarenzi/ikimina/internal/service/reportservice"
	"github.com/mkarenzi/ikimina/pkg/auth"
	"github.com/mkarenzi/ikimina/pkg/utils"
)

//go:generate mockgen -source=payouts.go -destination=payouts_mock.go -package=payouts
type Service interface {
	Preview(ctx context.Context, groupID, userID int) (*payoutservice.CyclePreview, error)
	Finalize(ctx context.Context, groupID, userID, minPayments int) (*domain.Payout, error)
	GetPayouts(ctx context.Context, groupID, userID int) ([]domain.Payout, error)
	GetPayoutItems(ctx context.Context, payoutID int) ([]domain.PayoutItem, error)
	MarkItemPaid(ctx context.Context, itemID, userID int) error
}

type Reports interface {
	BuildStatement(ctx context.Context, groupID, cycleNumber int) ([]byte, error)
}

type PayoutHandler struct {
	payoutService Service
	reports       Reports
}

func New(payoutService Service, reports Reports) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
		reports:       reports,
	}
}

// Preview godoc
//
//	@Summary		Preview the active cycle payout
//	@Description	Runs the payout calculator over the active window without persisting anything
//	@Tags			Payouts
//	@Produce		json
//	@Param			groupID	path	int	true	"Group ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PayoutPreviewResponseDTO
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/payouts/preview [get]
func (h *PayoutHandler) Preview(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	preview, err := h.payoutService.Preview(r.Context(), groupID, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := dto.PayoutPreviewResponseDTO{
		CycleNumber: preview.Group.CurrentCycle,
		WindowStart: preview.WindowStart,
		WindowEnd:   preview.WindowEnd,
		Breakdowns:  make([]dto.BreakdownDTO, 0, len(preview.Breakdowns)),
		Totals:      toTotalDTOs(reportservice.Totals(preview.Breakdowns)),
	}
	for _, b := range preview.Breakdowns {
		response.Breakdowns = append(response.Breakdowns, dto.BreakdownDTO{
			MemberID:        b.MemberID,
			MemberName:      b.MemberName,
			Currency:        b.Currency,
			TotalSaved:      b.TotalSaved,
			OrganizerFee:    b.OrganizerFee,
			NetPayout:       b.NetPayout,
			DaysContributed: b.DaysContributed,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Finalize godoc
//
//	@Summary		Finalize the active cycle
//	@Description	Persists the payout, advances the cycle and notifies members; irreversible
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path	int							true	"Group ID"
//	@Param			request	body	dto.FinalizeCycleRequestDTO	false	"Finalize options"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PayoutResponseDTO
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		409	{object}	utils.Response	"Cycle is empty or already finalized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/payouts [post]
func (h *PayoutHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	var req dto.FinalizeCycleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payout, err := h.payoutService.Finalize(r.Context(), groupID, userID, req.MinPayments)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPayoutDTO(payout, nil))
}

// GetPayouts godoc
//
//	@Summary		Payout history
//	@Description	Finalized payouts for the group, newest cycle first, items included
//	@Tags			Payouts
//	@Produce		json
//	@Param			groupID	path	int	true	"Group ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PayoutResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/payouts [get]
func (h *PayoutHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	payouts, err := h.payoutService.GetPayouts(r.Context(), groupID, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if len(payouts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.PayoutResponseDTO, 0, len(payouts))
	for i := range payouts {
		items, err := h.payoutService.GetPayoutItems(r.Context(), payouts[i].ID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		response = append(response, toPayoutDTO(&payouts[i], items))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DownloadStatement godoc
//
//	@Summary		Cycle statement as xlsx
//	@Description	Spreadsheet with one row per payout item and per-currency totals
//	@Tags			Payouts
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			groupID	path	int	true	"Group ID"
//	@Param			cycle	path	int	true	"Cycle number"
//	@Security		BearerAuth
//	@Success		200	{string}	binary			"xlsx file"
//	@Failure		404	{object}	utils.Response	"No finalized payout for this cycle"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/payouts/{cycle}/report [get]
func (h *PayoutHandler) DownloadStatement(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	cycle, ok := pathID(w, r, "cycle")
	if !ok {
		return
	}

	data, err := h.reports.BuildStatement(r.Context(), groupID, cycle)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payout-cycle-%d.xlsx", cycle))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// MarkItemPaid godoc
//
//	@Summary		Mark a payout item as paid
//	@Description	Organizer confirms the cash handover; organizer-only groups
//	@Tags			Payouts
//	@Produce		json
//	@Param			itemID	path	int	true	"Payout item ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Item not found"
//	@Failure		422	{object}	utils.Response	"Wrong group type"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payouts/items/{itemID} [patch]
func (h *PayoutHandler) MarkItemPaid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.payoutService.MarkItemPaid(r.Context(), itemID, userID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Item marked as paid"})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payoutservice.ErrGroupNotFound),
		errors.Is(err, payoutservice.ErrPayoutNotFound),
		errors.Is(err, payoutservice.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, payoutservice.ErrNotOrganizer):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, payoutservice.ErrEmptyCycle),
		errors.Is(err, payoutservice.ErrCycleAlreadyFinalized):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, payoutservice.ErrWrongGroupType):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toTotalDTOs(totals []reportservice.CurrencyTotal) []dto.CurrencyTotalDTO {
	out := make([]dto.CurrencyTotalDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.CurrencyTotalDTO{
			Currency:     t.Currency,
			TotalSaved:   t.TotalSaved,
			OrganizerFee: t.FeeTotal,
			NetPayout:    t.NetTotal,
		})
	}
	return out
}

func toPayoutDTO(payout *domain.Payout, items []domain.PayoutItem) dto.PayoutResponseDTO {
	response := dto.PayoutResponseDTO{
		ID:          payout.ID,
		CycleNumber: payout.CycleNumber,
		PayoutDate:  payout.PayoutDate,
		FeeTotal:    payout.FeeTotal,
		ItemCount:   payout.ItemCount,
	}
	for _, item := range items {
		response.Items = append(response.Items, dto.PayoutItemDTO{
			ID:              item.ID,
			MemberID:        item.MemberID,
			MemberName:      item.MemberName,
			Currency:        item.Currency,
			TotalSaved:      item.TotalSaved,
			OrganizerFee:    item.OrganizerFee,
			NetPayout:       item.NetPayout,
			DaysContributed: item.DaysContributed,
			Status:          item.Status,
		})
	}
	return response
}
