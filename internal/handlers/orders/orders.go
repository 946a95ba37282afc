package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/dto"
	orderservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/orderservice"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/utils"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/validate"
)

type Service interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, upd orderservice.Update) (*domain.Order, error)
	GetOrdersByCustomer(ctx context.Context, customerID int64) (map[int64][]domain.Order, error)
	GetOrdersByVendor(ctx context.Context, vendorID int64) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// AddOrder godoc
//
//	@Summary		Place a new order
//	@Description	Create an order for a customer with a generated order id.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing required order information"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/order [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required order information")
		return
	}

	order := &domain.Order{
		CustomerID:      req.CustomerID,
		OrderDate:       req.OrderDate,
		OrderStatus:     req.OrderStatus,
		PaymentStatus:   req.PaymentStatus,
		ShippingAddress: string(req.ShippingAddress),
		ShippingID:      req.ShippingID,
		ItemID:          req.ItemID,
		ItemQuantity:    req.ItemQuantity,
		ItemPrice:       req.ItemPrice,
	}
	created, err := h.orderService.CreateOrder(r.Context(), order)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderResponse(created))
}

// UpdateOrder godoc
//
//	@Summary		Update an order
//	@Description	Apply a partial update to an existing order. Absent fields keep their stored values.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order_id	path		int							true	"Order ID"
//	@Param			request		body		dto.UpdateOrderRequestDTO	true	"Fields to change"
//	@Success		200			{object}	dto.OrderResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request"
//	@Failure		404			{object}	utils.Response	"Order not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/order/{order_id} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.UpdateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := orderservice.Update{
		OrderStatus:   req.OrderStatus,
		PaymentStatus: req.PaymentStatus,
		ShippingID:    req.ShippingID,
		ItemID:        req.ItemID,
		ItemQuantity:  req.ItemQuantity,
		ItemPrice:     req.ItemPrice,
	}
	if len(req.ShippingAddress) > 0 {
		addr := string(req.ShippingAddress)
		upd.ShippingAddress = &addr
	}

	order, err := h.orderService.UpdateOrder(r.Context(), orderID, upd)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderResponse(order))
}

// GetOrdersByCustomer godoc
//
//	@Summary		Get orders for a customer
//	@Description	Retrieve a customer's orders grouped by order id.
//	@Tags			Orders
//	@Produce		json
//	@Param			customer_id	path		int	true	"Customer ID"
//	@Success		200			{object}	map[string][]dto.OrderResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid customer id"
//	@Failure		404			{object}	utils.Response	"No orders found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{customer_id} [get]
func (h *OrderHandler) GetOrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "customer_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid customer id")
		return
	}

	grouped, err := h.orderService.GetOrdersByCustomer(r.Context(), customerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(grouped) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "No orders found for this customer")
		return
	}

	response := make(map[int64][]dto.OrderResponseDTO, len(grouped))
	for orderID, orders := range grouped {
		for _, order := range orders {
			response[orderID] = append(response[orderID], toOrderResponse(&order))
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrdersByVendor godoc
//
//	@Summary		Get orders for a vendor
//	@Description	Retrieve all orders whose items belong to the vendor.
//	@Tags			Orders
//	@Produce		json
//	@Param			vendor_id	path		int	true	"Vendor ID"
//	@Success		200			{array}		dto.OrderResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid vendor id"
//	@Failure		404			{object}	utils.Response	"No orders found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/vendor/{vendor_id} [get]
func (h *OrderHandler) GetOrdersByVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := strconv.ParseInt(chi.URLParam(r, "vendor_id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	orders, err := h.orderService.GetOrdersByVendor(r.Context(), vendorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "No orders found for this vendor")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i, order := range orders {
		response[i] = toOrderResponse(&order)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toOrderResponse(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		OrderID:         order.OrderID,
		CustomerID:      order.CustomerID,
		OrderDate:       order.OrderDate,
		OrderStatus:     order.OrderStatus,
		PaymentStatus:   order.PaymentStatus,
		ShippingAddress: order.ShippingAddress,
		ShippingID:      order.ShippingID,
		ItemID:          order.ItemID,
		ItemQuantity:    order.ItemQuantity,
		ItemPrice:       order.ItemPrice,
	}
}
