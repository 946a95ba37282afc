package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/dto"
	paymentservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/paymentservice"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/utils"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/validate"
)

type Service interface {
	RecordPayment(ctx context.Context, params paymentservice.RecordParams) (*domain.Payment, bool, error)
	GetPayments(ctx context.Context) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// RecordPayment godoc
//
//	@Summary		Record a payment for an order
//	@Description	Append a ledger row with the vendor's new running balance. Repeating the call for the same order and payment type returns the stored row.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		int							true	"Order ID"
//	@Param			request		body		dto.RecordPaymentRequestDTO	true	"Payment payload"
//	@Success		200			{object}	dto.PaymentResponseDTO	"Payment already recorded"
//	@Success		201			{object}	dto.PaymentResponseDTO	"Payment recorded"
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/order/{order_id}/payment [post]
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.RecordPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required payment information")
		return
	}

	payment, replayed, err := h.paymentService.RecordPayment(r.Context(), paymentservice.RecordParams{
		OrderID:       orderID,
		VendorID:      req.VendorID,
		PaymentAmount: req.PaymentAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		PaymentType:   req.PaymentType,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusCreated
	message := "Payment recorded"
	if replayed {
		status = http.StatusOK
		message = "Payment already recorded for this order"
	}
	utils.RespondWithJSON(w, status, toPaymentResponse(payment, message))
}

// GetPayments godoc
//
//	@Summary		Get all payments
//	@Description	List the full payment ledger.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments [get]
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.GetPayments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PaymentResponseDTO, len(payments))
	for i, payment := range payments {
		response[i] = toPaymentResponse(&payment, "")
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPaymentResponse(payment *domain.Payment, message string) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		Message:            message,
		PaymentID:          payment.PaymentID,
		OrderID:            payment.OrderID,
		VendorID:           payment.VendorID,
		PaymentAmount:      payment.PaymentAmount,
		PaymentDate:        payment.PaymentDate,
		PaymentMethod:      payment.PaymentMethod,
		PaymentType:        payment.PaymentType,
		Status:             payment.Status,
		TotalBalanceVendor: payment.TotalBalanceVendor,
	}
}
