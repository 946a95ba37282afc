package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateShippingRequestDTO struct {
	OrderID        int64           `json:"order_id" validate:"required" example:"1893400194150109184"`
	ShippingMethod string          `json:"shipping_method" validate:"required" example:"ground"`
	ShippingCost   decimal.Decimal `json:"shipping_cost" example:"49.99"`
	ShippingDate   *time.Time      `json:"shipping_date"`
	TrackingNumber string          `json:"tracking_number" example:"TRK123456"`
	DeliveryDate   *time.Time      `json:"delivery_date"`
	ShippingStatus string          `json:"shipping_status" example:"pending"`
}

type ShippingResponseDTO struct {
	ShippingID     int64           `json:"shipping_id"`
	OrderID        int64           `json:"order_id"`
	ShippingMethod string          `json:"shipping_method"`
	ShippingCost   decimal.Decimal `json:"shipping_cost"`
	ShippingDate   *time.Time      `json:"shipping_date"`
	TrackingNumber string          `json:"tracking_number"`
	DeliveryDate   *time.Time      `json:"delivery_date"`
	ShippingStatus string          `json:"shipping_status"`
}
