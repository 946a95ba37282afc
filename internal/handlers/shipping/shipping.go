package shipping

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/dto"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/utils"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/validate"
)

type Service interface {
	CreateShipping(ctx context.Context, shipping *domain.Shipping) (*domain.Shipping, error)
}

type ShippingHandler struct {
	shippingService Service
}

func New(shippingService Service) *ShippingHandler {
	return &ShippingHandler{
		shippingService: shippingService,
	}
}

// CreateShipping godoc
//
//	@Summary		Create a shipping record
//	@Description	Create a shipping record for an order with a generated shipping id.
//	@Tags			Shipping
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateShippingRequestDTO	true	"Shipping payload"
//	@Success		201		{object}	dto.ShippingResponseDTO
//	@Failure		400		{object}	utils.Response	"Order id and shipping method are required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/shipping [post]
func (h *ShippingHandler) CreateShipping(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShippingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Order id and shipping method are required")
		return
	}

	shipping := &domain.Shipping{
		OrderID:        req.OrderID,
		ShippingMethod: req.ShippingMethod,
		ShippingCost:   req.ShippingCost,
		ShippingDate:   req.ShippingDate,
		TrackingNumber: req.TrackingNumber,
		DeliveryDate:   req.DeliveryDate,
		ShippingStatus: req.ShippingStatus,
	}
	created, err := h.shippingService.CreateShipping(r.Context(), shipping)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ShippingResponseDTO{
		ShippingID:     created.ShippingID,
		OrderID:        created.OrderID,
		ShippingMethod: created.ShippingMethod,
		ShippingCost:   created.ShippingCost,
		ShippingDate:   created.ShippingDate,
		TrackingNumber: created.TrackingNumber,
		DeliveryDate:   created.DeliveryDate,
		ShippingStatus: created.ShippingStatus,
	})
}
