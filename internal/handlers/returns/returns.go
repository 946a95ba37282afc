package returns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/dto"
	returnservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/returnservice"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/utils"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/validate"
)

type Service interface {
	InitiateCancel(ctx context.Context, orderID int64, reason string) (*domain.ReturnRequest, error)
	ApproveOrReject(ctx context.Context, params returnservice.ApprovalParams) (*returnservice.ApprovalResult, error)
	UpdateReturnStatus(ctx context.Context, returnID int64, status string, comment *string) (*domain.ReturnRequest, error)
	UpdateReturnReason(ctx context.Context, returnID int64, reason string) (*domain.ReturnRequest, error)
	GetReturnsByCustomer(ctx context.Context, customerID int64) ([]domain.CustomerReturn, error)
	GetReturnDetail(ctx context.Context, returnID int64) (*domain.ReturnDetail, error)
	GetAllReturns(ctx context.Context, status string) ([]domain.AdminReturn, error)
	GetRefunds(ctx context.Context) ([]domain.Refund, error)
}

type ReturnHandler struct {
	returnService Service
}

func New(returnService Service) *ReturnHandler {
	return &ReturnHandler{
		returnService: returnService,
	}
}

// CancelOrder godoc
//
//	@Summary		Request order cancellation
//	@Description	Mark the order as awaiting cancellation approval and open a pending return request.
//	@Tags			Returns
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CancelOrderRequestDTO	true	"Cancellation payload"
//	@Success		201		{object}	dto.CancelOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/cancel [post]
func (h *ReturnHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CancelOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Order id and return reason are required")
		return
	}

	request, err := h.returnService.InitiateCancel(r.Context(), req.OrderID, req.ReturnReason)
	if err != nil {
		switch {
		case errors.Is(err, returnservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CancelOrderResponseDTO{
		Message: "Order cancellation initiated. Awaiting approval.",
		ReturnRequest: dto.ReturnRequestDTO{
			ReturnID:     request.ReturnID,
			OrderID:      request.OrderID,
			ReturnReason: request.ReturnReason,
			Status:       request.Status,
			RequestDate:  request.RequestDate,
		},
	})
}

// ApproveReturn godoc
//
//	@Summary		Approve or reject a return request
//	@Description	Record the admin decision, upsert the refund row and, on approval, debit the vendor balance. A request that is already approved is rejected.
//	@Tags			Returns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApproveReturnRequestDTO	true	"Approval payload"
//	@Success		200		{object}	dto.ApproveReturnResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request, missing payment method, or return already approved"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/admin/approve [put]
func (h *ReturnHandler) ApproveReturn(w http.ResponseWriter, r *http.Request) {
	var req dto.ApproveReturnRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required approval information")
		return
	}

	result, err := h.returnService.ApproveOrReject(r.Context(), returnservice.ApprovalParams{
		OrderID:       req.OrderID,
		ReturnID:      req.ReturnID,
		Status:        req.Status,
		RefundAmount:  *req.RefundAmount,
		Comment:       *req.Comment,
		PaymentMethod: req.PaymentMethod,
		VendorID:      req.VendorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, returnservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, returnservice.ErrAlreadyApproved),
			errors.Is(err, returnservice.ErrPaymentMethodRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveReturnResponseDTO{
		Message:       "Return request processed",
		OrderID:       result.OrderID,
		ReturnID:      result.ReturnID,
		Status:        result.Status,
		RefundAmount:  result.RefundAmount,
		RefundDate:    result.RefundDate,
		Comment:       result.Comment,
		PaymentMethod: result.PaymentMethod,
	})
}

// UpdateReturnStatus godoc
//
//	@Summary		Update return request status
//	@Description	Change the status of a return request. Approving cascades the order into the returned state.
//	@Tags			Returns
//	@Accept			json
//	@Produce		json
//	@Param			return_id	path		int								true	"Return request ID"
//	@Param			request		body		dto.UpdateReturnStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.UpdateReturnStatusResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		404			{object}	utils.Response	"Return request not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/returns/{return_id}/status [put]
func (h *ReturnHandler) UpdateReturnStatus(w http.ResponseWriter, r *http.Request) {
	returnID, err := strconv.ParseInt(chi.URLParam(r, "return_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid return id")
		return
	}

	var req dto.UpdateReturnStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}

	request, err := h.returnService.UpdateReturnStatus(r.Context(), returnID, req.Status, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, returnservice.ErrReturnNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Return request not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateReturnStatusResponseDTO{
		Message:  "Return status updated",
		ReturnID: request.ReturnID,
		Status:   request.Status,
		OrderID:  request.OrderID,
		Comment:  req.Comment,
	})
}

// UpdateReturnReason godoc
//
//	@Summary		Update return reason
//	@Description	Change the reason of a return request that has not been processed yet.
//	@Tags			Returns
//	@Accept			json
//	@Produce		json
//	@Param			return_id	path		int								true	"Return request ID"
//	@Param			request		body		dto.UpdateReturnReasonRequestDTO	true	"New reason"
//	@Success		200			{object}	dto.UpdateReturnReasonResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request, or return not found or already processed"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/returns/{return_id}/reason [put]
func (h *ReturnHandler) UpdateReturnReason(w http.ResponseWriter, r *http.Request) {
	returnID, err := strconv.ParseInt(chi.URLParam(r, "return_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid return id")
		return
	}

	var req dto.UpdateReturnReasonRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Return reason is required")
		return
	}

	request, err := h.returnService.UpdateReturnReason(r.Context(), returnID, req.ReturnReason)
	if err != nil {
		switch {
		case errors.Is(err, returnservice.ErrReturnProcessed):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UpdateReturnReasonResponseDTO{
		Message:      "Return reason updated",
		ReturnID:     request.ReturnID,
		ReturnReason: request.ReturnReason,
	})
}

// GetReturnsByCustomer godoc
//
//	@Summary		Get returns for a customer
//	@Tags			Returns
//	@Produce		json
//	@Param			customer_id	path		int	true	"Customer ID"
//	@Success		200			{array}		dto.CustomerReturnResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid customer id"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/returns/customer/{customer_id} [get]
func (h *ReturnHandler) GetReturnsByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "customer_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	returns, err := h.returnService.GetReturnsByCustomer(r.Context(), customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CustomerReturnResponseDTO, len(returns))
	for i, ret := range returns {
		response[i] = dto.CustomerReturnResponseDTO{
			ReturnID:     ret.ReturnID,
			OrderID:      ret.OrderID,
			ReturnReason: ret.ReturnReason,
			Status:       ret.Status,
			RequestDate:  ret.RequestDate,
			OrderDate:    ret.OrderDate,
			OrderStatus:  ret.OrderStatus,
			ItemID:       ret.ItemID,
			ItemQuantity: ret.ItemQuantity,
			ItemPrice:    ret.ItemPrice,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetReturnDetail godoc
//
//	@Summary		Get one return request with refund details
//	@Tags			Returns
//	@Produce		json
//	@Param			return_id	path		int	true	"Return request ID"
//	@Success		200			{object}	dto.ReturnDetailResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid return id"
//	@Failure		404			{object}	utils.Response	"Return request not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/returns/{return_id} [get]
func (h *ReturnHandler) GetReturnDetail(w http.ResponseWriter, r *http.Request) {
	returnID, err := strconv.ParseInt(chi.URLParam(r, "return_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid return id")
		return
	}

	detail, err := h.returnService.GetReturnDetail(r.Context(), returnID)
	if err != nil {
		switch {
		case errors.Is(err, returnservice.ErrReturnNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Return request not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReturnDetailResponseDTO{
		ReturnID:      detail.ReturnID,
		OrderID:       detail.OrderID,
		ReturnReason:  detail.ReturnReason,
		Status:        detail.Status,
		RequestDate:   detail.RequestDate,
		CustomerID:    detail.CustomerID,
		OrderDate:     detail.OrderDate,
		OrderStatus:   detail.OrderStatus,
		PaymentStatus: detail.PaymentStatus,
		ItemID:        detail.ItemID,
		ItemQuantity:  detail.ItemQuantity,
		ItemPrice:     detail.ItemPrice,
		RefundAmount:  detail.RefundAmount,
		RefundDate:    detail.RefundDate,
		RefundStatus:  detail.RefundStatus,
		RefundComment: detail.RefundComment,
	})
}

// GetAllReturns godoc
//
//	@Summary		Get all return requests
//	@Description	List return requests for the admin dashboard, optionally filtered by status.
//	@Tags			Returns
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Success		200		{array}		dto.AdminReturnResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/returns [get]
func (h *ReturnHandler) GetAllReturns(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	returns, err := h.returnService.GetAllReturns(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AdminReturnResponseDTO, len(returns))
	for i, ret := range returns {
		response[i] = dto.AdminReturnResponseDTO{
			ReturnID:      ret.ReturnID,
			OrderID:       ret.OrderID,
			ReturnReason:  ret.ReturnReason,
			Status:        ret.Status,
			RequestDate:   ret.RequestDate,
			CustomerID:    ret.CustomerID,
			OrderDate:     ret.OrderDate,
			ItemID:        ret.ItemID,
			ItemQuantity:  ret.ItemQuantity,
			ItemPrice:     ret.ItemPrice,
			CustomerName:  ret.CustomerName,
			CustomerEmail: ret.CustomerEmail,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRefunds godoc
//
//	@Summary		Get all refunds
//	@Tags			Returns
//	@Produce		json
//	@Success		200	{array}		dto.RefundResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/refunds [get]
func (h *ReturnHandler) GetRefunds(w http.ResponseWriter, r *http.Request) {
	refunds, err := h.returnService.GetRefunds(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.RefundResponseDTO, len(refunds))
	for i, refund := range refunds {
		response[i] = dto.RefundResponseDTO{
			RefundID:     refund.RefundID,
			OrderID:      refund.OrderID,
			ReturnID:     refund.ReturnID,
			RefundAmount: refund.RefundAmount,
			RefundDate:   refund.RefundDate,
			Status:       refund.Status,
			Comment:      refund.Comment,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
