package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CancelOrderRequestDTO struct {
	OrderID      int64  `json:"order_id" validate:"required" example:"1893400194150109184"`
	ReturnReason string `json:"return_reason" validate:"required" example:"wrong size"`
}

type ReturnRequestDTO struct {
	ReturnID     int64     `json:"return_id"`
	OrderID      int64     `json:"order_id"`
	ReturnReason string    `json:"return_reason"`
	Status       string    `json:"status"`
	RequestDate  time.Time `json:"request_date"`
}

type CancelOrderResponseDTO struct {
	Message       string           `json:"message"`
	ReturnRequest ReturnRequestDTO `json:"returnrequest"`
}

// ApproveReturnRequestDTO uses pointers for refund_amount and comment:
// both are required-but-may-be-zero in the admin contract. PaymentMethod is
// required only when the status is approved, which the service checks
// case-insensitively.
type ApproveReturnRequestDTO struct {
	OrderID       int64            `json:"order_id" validate:"required"`
	ReturnID      int64            `json:"return_id" validate:"required"`
	Status        string           `json:"status" validate:"required" example:"approved"`
	RefundAmount  *decimal.Decimal `json:"refund_amount" validate:"required" example:"1000"`
	Comment       *string          `json:"comment" validate:"required" example:"customer verified"`
	PaymentMethod string           `json:"payment_method" example:"upi"`
	VendorID      int64            `json:"vendor_id" example:"7"`
}

type ApproveReturnResponseDTO struct {
	Message       string          `json:"message"`
	OrderID       int64           `json:"order_id"`
	ReturnID      int64           `json:"return_id"`
	Status        string          `json:"status"`
	RefundAmount  decimal.Decimal `json:"refund_amount"`
	RefundDate    time.Time       `json:"refund_date"`
	Comment       string          `json:"comment"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

type UpdateReturnStatusRequestDTO struct {
	Status  string  `json:"status" validate:"required" example:"approved"`
	Comment *string `json:"comment"`
}

type UpdateReturnStatusResponseDTO struct {
	Message  string  `json:"message"`
	ReturnID int64   `json:"return_id"`
	Status   string  `json:"status"`
	OrderID  int64   `json:"order_id"`
	Comment  *string `json:"comment"`
}

type UpdateReturnReasonRequestDTO struct {
	ReturnReason string `json:"return_reason" validate:"required" example:"arrived damaged"`
}

type UpdateReturnReasonResponseDTO struct {
	Message      string `json:"message"`
	ReturnID     int64  `json:"return_id"`
	ReturnReason string `json:"return_reason"`
}

type CustomerReturnResponseDTO struct {
	ReturnID     int64           `json:"return_id"`
	OrderID      int64           `json:"order_id"`
	ReturnReason string          `json:"return_reason"`
	Status       string          `json:"status"`
	RequestDate  time.Time       `json:"request_date"`
	OrderDate    time.Time       `json:"order_date"`
	OrderStatus  string          `json:"order_status"`
	ItemID       int64           `json:"item_id"`
	ItemQuantity int             `json:"item_quantity"`
	ItemPrice    decimal.Decimal `json:"item_price"`
}

type ReturnDetailResponseDTO struct {
	ReturnID      int64            `json:"return_id"`
	OrderID       int64            `json:"order_id"`
	ReturnReason  string           `json:"return_reason"`
	Status        string           `json:"status"`
	RequestDate   time.Time        `json:"request_date"`
	CustomerID    int64            `json:"customer_id"`
	OrderDate     time.Time        `json:"order_date"`
	OrderStatus   string           `json:"order_status"`
	PaymentStatus string           `json:"payment_status"`
	ItemID        int64            `json:"item_id"`
	ItemQuantity  int              `json:"item_quantity"`
	ItemPrice     decimal.Decimal  `json:"item_price"`
	RefundAmount  *decimal.Decimal `json:"refund_amount"`
	RefundDate    *time.Time       `json:"refund_date"`
	RefundStatus  *string          `json:"refund_status"`
	RefundComment *string          `json:"refund_comment"`
}

type AdminReturnResponseDTO struct {
	ReturnID      int64           `json:"return_id"`
	OrderID       int64           `json:"order_id"`
	ReturnReason  string          `json:"return_reason"`
	Status        string          `json:"status"`
	RequestDate   time.Time       `json:"request_date"`
	CustomerID    int64           `json:"customer_id"`
	OrderDate     time.Time       `json:"order_date"`
	ItemID        int64           `json:"item_id"`
	ItemQuantity  int             `json:"item_quantity"`
	ItemPrice     decimal.Decimal `json:"item_price"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
}

type RefundResponseDTO struct {
	RefundID     int64           `json:"refund_id"`
	OrderID      int64           `json:"order_id"`
	ReturnID     int64           `json:"return_id"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	RefundDate   time.Time       `json:"refund_date"`
	Status       string          `json:"status"`
	Comment      string          `json:"comment"`
}
