package orderservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, orderID int64) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, orderID int64, status string) (int64, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error)
	FindByVendorID(ctx context.Context, vendorID int64) ([]domain.Order, error)
}

type IDGenerator interface {
	Next() int64
}

type Service struct {
	repo  Repo
	idGen IDGenerator
}

func New(repo Repo, idGen IDGenerator) *Service {
	return &Service{
		repo:  repo,
		idGen: idGen,
	}
}

const (
	// PlacedOrderStatus is the default status of a freshly created order.
	PlacedOrderStatus string = "placed"
	// ApproveCancelOrderStatus marks an order with a cancellation awaiting admin review.
	ApproveCancelOrderStatus string = "approve_cancel"
	// ReturnedOrderStatus marks an order whose return was approved.
	ReturnedOrderStatus string = "returned"
	// PendingPaymentStatus is the default payment status of a new order.
	PendingPaymentStatus string = "pending"
)

var ErrOrderNotFound = errors.New("order not found")

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.OrderStatus == "" {
		order.OrderStatus = PlacedOrderStatus
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = PendingPaymentStatus
	}
	order.OrderID = s.idGen.Next()

	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// Update carries the fields a partial order update wants changed. Nil means
// "leave the stored value alone"; an explicit zero value overwrites.
type Update struct {
	OrderStatus     *string
	PaymentStatus   *string
	ShippingAddress *string
	ShippingID      *int64
	ItemID          *int64
	ItemQuantity    *int
	ItemPrice       *decimal.Decimal
}

func (s *Service) UpdateOrder(ctx context.Context, orderID int64, upd Update) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if upd.OrderStatus != nil {
		order.OrderStatus = *upd.OrderStatus
	}
	if upd.PaymentStatus != nil {
		order.PaymentStatus = *upd.PaymentStatus
	}
	if upd.ShippingAddress != nil {
		order.ShippingAddress = *upd.ShippingAddress
	}
	if upd.ShippingID != nil {
		order.ShippingID = upd.ShippingID
	}
	if upd.ItemID != nil {
		order.ItemID = *upd.ItemID
	}
	if upd.ItemQuantity != nil {
		order.ItemQuantity = *upd.ItemQuantity
	}
	if upd.ItemPrice != nil {
		order.ItemPrice = *upd.ItemPrice
	}

	if err := s.repo.Update(ctx, order); err != nil {
		zap.L().Error("can't update order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// GetOrdersByCustomer groups a customer's orders by order_id.
func (s *Service) GetOrdersByCustomer(ctx context.Context, customerID int64) (map[int64][]domain.Order, error) {
	orders, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	grouped := make(map[int64][]domain.Order, len(orders))
	for _, order := range orders {
		grouped[order.OrderID] = append(grouped[order.OrderID], order)
	}
	return grouped, nil
}

func (s *Service) GetOrdersByVendor(ctx context.Context, vendorID int64) ([]domain.Order, error) {
	orders, err := s.repo.FindByVendorID(ctx, vendorID)
	if err != nil {
		zap.L().Error("failed to get vendor orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
