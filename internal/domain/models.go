package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID         int64           `db:"order_id"`
	CustomerID      int64           `db:"customer_id"`
	OrderDate       time.Time       `db:"order_date"`
	OrderStatus     string          `db:"order_status"`
	PaymentStatus   string          `db:"payment_status"`
	ShippingAddress string          `db:"shipping_address"`
	ShippingID      *int64          `db:"shipping_id"`
	ItemID          int64           `db:"item_id"`
	ItemQuantity    int             `db:"item_quantity"`
	ItemPrice       decimal.Decimal `db:"item_price"`
}

type ReturnRequest struct {
	ReturnID     int64     `db:"return_id"`
	OrderID      int64     `db:"order_id"`
	ReturnReason string    `db:"return_reason"`
	Status       string    `db:"status"`
	Comment      string    `db:"comment"`
	RequestDate  time.Time `db:"request_date"`
}

type Refund struct {
	RefundID     int64           `db:"refund_id"`
	OrderID      int64           `db:"order_id"`
	ReturnID     int64           `db:"return_id"`
	RefundAmount decimal.Decimal `db:"refund_amount"`
	RefundDate   time.Time       `db:"refund_date"`
	Status       string          `db:"status"`
	Comment      string          `db:"comment"`
}

// Payment is one ledger row. TotalBalanceVendor snapshots the vendor's
// running balance after this row is applied; the row with the latest
// PaymentDate holds the authoritative current balance.
type Payment struct {
	PaymentID          int64           `db:"payment_id"`
	OrderID            int64           `db:"order_id"`
	VendorID           int64           `db:"vendor_id"`
	PaymentAmount      decimal.Decimal `db:"payment_amount"`
	PaymentDate        time.Time       `db:"payment_date"`
	PaymentMethod      string          `db:"payment_method"`
	PaymentType        string          `db:"payment_type"`
	Status             string          `db:"status"`
	TotalBalanceVendor decimal.Decimal `db:"total_balance_vendor"`
}

type Shipping struct {
	ShippingID     int64           `db:"shipping_id"`
	OrderID        int64           `db:"order_id"`
	ShippingMethod string          `db:"shipping_method"`
	ShippingCost   decimal.Decimal `db:"shipping_cost"`
	ShippingDate   *time.Time      `db:"shipping_date"`
	TrackingNumber string          `db:"tracking_number"`
	DeliveryDate   *time.Time      `db:"delivery_date"`
	ShippingStatus string          `db:"shipping_status"`
}

type Vendor struct {
	VendorID     int64     `db:"vendor_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// CustomerReturn is the returns-by-customer projection (returnrequest
// joined with its order).
type CustomerReturn struct {
	ReturnID     int64           `db:"return_id"`
	OrderID      int64           `db:"order_id"`
	ReturnReason string          `db:"return_reason"`
	Status       string          `db:"status"`
	RequestDate  time.Time       `db:"request_date"`
	OrderDate    time.Time       `db:"order_date"`
	OrderStatus  string          `db:"order_status"`
	ItemID       int64           `db:"item_id"`
	ItemQuantity int             `db:"item_quantity"`
	ItemPrice    decimal.Decimal `db:"item_price"`
}

// ReturnDetail joins a return request with its order and, when present,
// its refund row.
type ReturnDetail struct {
	ReturnID      int64            `db:"return_id"`
	OrderID       int64            `db:"order_id"`
	ReturnReason  string           `db:"return_reason"`
	Status        string           `db:"status"`
	RequestDate   time.Time        `db:"request_date"`
	CustomerID    int64            `db:"customer_id"`
	OrderDate     time.Time        `db:"order_date"`
	OrderStatus   string           `db:"order_status"`
	PaymentStatus string           `db:"payment_status"`
	ItemID        int64            `db:"item_id"`
	ItemQuantity  int              `db:"item_quantity"`
	ItemPrice     decimal.Decimal  `db:"item_price"`
	RefundAmount  *decimal.Decimal `db:"refund_amount"`
	RefundDate    *time.Time       `db:"refund_date"`
	RefundStatus  *string          `db:"refund_status"`
	RefundComment *string          `db:"refund_comment"`
}

// AdminReturn is the all-returns projection for the admin dashboard.
type AdminReturn struct {
	ReturnID      int64           `db:"return_id"`
	OrderID       int64           `db:"order_id"`
	ReturnReason  string          `db:"return_reason"`
	Status        string          `db:"status"`
	RequestDate   time.Time       `db:"request_date"`
	CustomerID    int64           `db:"customer_id"`
	OrderDate     time.Time       `db:"order_date"`
	ItemID        int64           `db:"item_id"`
	ItemQuantity  int             `db:"item_quantity"`
	ItemPrice     decimal.Decimal `db:"item_price"`
	CustomerName  string          `db:"customer_name"`
	CustomerEmail string          `db:"customer_email"`
}
