package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/dto"
	"github.com/mkarenzi/ikimina/internal/service/paymentservice"
	"github.com/mkarenzi/ikimina/pkg/auth"
	"github.com/mkarenzi/ikimina/pkg/utils"
)

//go:generate mockgen -source=payments.go -destination=payments_mock.go -package=payments
type Service interface {
	RecordPayment(ctx context.Context, groupID, userID, memberID int, amount decimal.Decimal, currency string, paymentDate time.Time) (*domain.Contribution, error)
	ListPayments(ctx context.Context, groupID, userID int, from, to time.Time) ([]domain.Contribution, error)
	UpdatePayment(ctx context.Context, paymentID, userID int, amount *decimal.Decimal, paymentDate *time.Time) (*domain.Contribution, error)
	ArchivePayment(ctx context.Context, paymentID, userID int) error
	DeclareRate(ctx context.Context, groupID, memberID, userID int, currency string, dailyRate decimal.Decimal) (*domain.RateDeclaration, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

const dateLayout = "2006-01-02"

// RecordPayment godoc
//
//	@Summary		Record a contribution
//	@Description	Save a confirmed contribution; member_id is only honored for the organizer
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path	int							true	"Group ID"
//	@Param			request	body	dto.RecordPaymentRequestDTO	true	"Payment details"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		403	{object}	utils.Response	"Caller may not record for this member"
//	@Failure		404	{object}	utils.Response	"Group or member not found"
//	@Failure		422	{object}	utils.Response	"Invalid amount or date"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/payments [post]
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var paymentDate time.Time
	if req.PaymentDate != "" {
		var err error
		paymentDate, err = time.Parse(dateLayout, req.PaymentDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "payment_date must be YYYY-MM-DD")
			return
		}
	}

	contribution, err := h.paymentService.RecordPayment(r.Context(), groupID, userID, req.MemberID, req.Amount, req.Currency, paymentDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPaymentDTO(contribution))
}

// ListPayments godoc
//
//	@Summary		List contributions
//	@Description	Confirmed contributions in [from, to); defaults to the active cycle window
//	@Tags			Payments
//	@Produce		json
//	@Param			groupID	path	int		true	"Group ID"
//	@Param			from	query	string	false	"Window start (YYYY-MM-DD)"
//	@Param			to		query	string	false	"Window end, exclusive (YYYY-MM-DD)"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		422	{object}	utils.Response	"Bad date format"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/payments [get]
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	from, ok := queryDate(w, r, "from")
	if !ok {
		return
	}
	to, ok := queryDate(w, r, "to")
	if !ok {
		return
	}

	contributions, err := h.paymentService.ListPayments(r.Context(), groupID, userID, from, to)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.PaymentResponseDTO, 0, len(contributions))
	for i := range contributions {
		response = append(response, toPaymentDTO(&contributions[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdatePayment godoc
//
//	@Summary		Correct a contribution
//	@Description	Organizer fixes the amount or date of an entry; full-platform groups only
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			paymentID	path	int							true	"Payment ID"
//	@Param			request		body	dto.UpdatePaymentRequestDTO	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		422	{object}	utils.Response	"Invalid amount or wrong group type"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{paymentID} [patch]
func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	paymentID, ok := pathID(w, r, "paymentID")
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var paymentDate *time.Time
	if req.PaymentDate != nil {
		parsed, err := time.Parse(dateLayout, *req.PaymentDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "payment_date must be YYYY-MM-DD")
			return
		}
		paymentDate = &parsed
	}

	contribution, err := h.paymentService.UpdatePayment(r.Context(), paymentID, userID, req.Amount, paymentDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTO(contribution))
}

// ArchivePayment godoc
//
//	@Summary		Archive a contribution
//	@Description	Soft delete; the entry no longer feeds the payout calculator
//	@Tags			Payments
//	@Produce		json
//	@Param			paymentID	path	int	true	"Payment ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{paymentID} [delete]
func (h *PaymentHandler) ArchivePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	paymentID, ok := pathID(w, r, "paymentID")
	if !ok {
		return
	}

	if err := h.paymentService.ArchivePayment(r.Context(), paymentID, userID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment archived"})
}

// DeclareRate godoc
//
//	@Summary		Declare a daily contribution rate
//	@Description	Upsert the member's declared rate for a currency; the previous active declaration is closed
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			groupID		path	int					true	"Group ID"
//	@Param			memberID	path	int					true	"Member ID"
//	@Param			request		body	dto.RateRequestDTO	true	"Rate"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Caller may not declare for this member"
//	@Failure		404	{object}	utils.Response	"Group or member not found"
//	@Failure		422	{object}	utils.Response	"Invalid rate"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/members/{memberID}/rate [put]
func (h *PaymentHandler) DeclareRate(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}

	var req dto.RateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.paymentService.DeclareRate(r.Context(), groupID, memberID, userID, req.Currency, req.DailyRate); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Rate declared"})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func queryDate(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, name+" must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrGroupNotFound),
		errors.Is(err, paymentservice.ErrMemberNotFound),
		errors.Is(err, paymentservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrNotOrganizer),
		errors.Is(err, paymentservice.ErrNotMember):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, paymentservice.ErrInvalidAmount),
		errors.Is(err, paymentservice.ErrWrongGroupType):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toPaymentDTO(c *domain.Contribution) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:          c.ID,
		MemberID:    c.MemberID,
		Amount:      c.Amount,
		Currency:    c.Currency,
		PaymentDate: c.PaymentDate.Format(dateLayout),
		Status:      c.Status,
	}
}
