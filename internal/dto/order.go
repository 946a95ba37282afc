package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequestDTO struct {
	CustomerID      int64           `json:"customer_id" validate:"required" example:"17"`
	OrderDate       time.Time       `json:"order_date" validate:"required" example:"2025-03-01T10:00:00Z"`
	OrderStatus     string          `json:"order_status" example:"placed"`
	PaymentStatus   string          `json:"payment_status" example:"pending"`
	ShippingAddress json.RawMessage `json:"shipping_address" swaggertype:"object"`
	ShippingID      *int64          `json:"shipping_id"`
	ItemID          int64           `json:"item_id" validate:"required" example:"42"`
	ItemQuantity    int             `json:"item_quantity" validate:"required" example:"2"`
	ItemPrice       decimal.Decimal `json:"item_price" validate:"required" example:"500"`
}

// UpdateOrderRequestDTO carries only the fields the caller wants changed.
// Pointer fields distinguish "absent" from an explicit zero value.
type UpdateOrderRequestDTO struct {
	OrderStatus     *string          `json:"order_status"`
	PaymentStatus   *string          `json:"payment_status"`
	ShippingAddress json.RawMessage  `json:"shipping_address" swaggertype:"object"`
	ShippingID      *int64           `json:"shipping_id"`
	ItemID          *int64           `json:"item_id"`
	ItemQuantity    *int             `json:"item_quantity"`
	ItemPrice       *decimal.Decimal `json:"item_price"`
}

type OrderResponseDTO struct {
	OrderID         int64           `json:"order_id" example:"1893400194150109184"`
	CustomerID      int64           `json:"customer_id" example:"17"`
	OrderDate       time.Time       `json:"order_date" example:"2025-03-01T10:00:00Z"`
	OrderStatus     string          `json:"order_status" example:"placed"`
	PaymentStatus   string          `json:"payment_status" example:"pending"`
	ShippingAddress string          `json:"shipping_address"`
	ShippingID      *int64          `json:"shipping_id"`
	ItemID          int64           `json:"item_id" example:"42"`
	ItemQuantity    int             `json:"item_quantity" example:"2"`
	ItemPrice       decimal.Decimal `json:"item_price" example:"500"`
}
