package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordPaymentRequestDTO struct {
	VendorID      int64           `json:"vendor_id" validate:"required" example:"7"`
	PaymentAmount decimal.Decimal `json:"payment_amount" validate:"required" example:"1000"`
	PaymentMethod string          `json:"payment_method" validate:"required" example:"card"`
	Status        string          `json:"status" validate:"required" example:"paid"`
	PaymentType   string          `json:"payment_type" validate:"required,oneof=credit debit" example:"credit"`
}

type PaymentResponseDTO struct {
	Message            string          `json:"message"`
	PaymentID          int64           `json:"payment_id"`
	OrderID            int64           `json:"order_id"`
	VendorID           int64           `json:"vendor_id"`
	PaymentAmount      decimal.Decimal `json:"payment_amount"`
	PaymentDate        time.Time       `json:"payment_date"`
	PaymentMethod      string          `json:"payment_method"`
	PaymentType        string          `json:"payment_type"`
	Status             string          `json:"status"`
	TotalBalanceVendor decimal.Decimal `json:"total_balance_vendor"`
}
