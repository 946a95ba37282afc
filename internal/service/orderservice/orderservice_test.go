package orderservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockIDGenerator) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	idGen := NewMockIDGenerator(ctrl)
	service := New(repo, idGen)
	defer ctrl.Finish()
	return service, repo, idGen
}

func TestCreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		order         *domain.Order
		prepareMock   func(repo *MockRepo, idGen *MockIDGenerator)
		expectedError error
	}{
		{
			name: "Defaults applied to a bare order",
			order: &domain.Order{
				CustomerID:   17,
				OrderDate:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
				ItemID:       42,
				ItemQuantity: 2,
				ItemPrice:    decimal.NewFromInt(500),
			},
			prepareMock: func(repo *MockRepo, idGen *MockIDGenerator) {
				idGen.EXPECT().Next().Return(int64(1001))
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, order *domain.Order) error {
						assert.Equal(t, int64(1001), order.OrderID)
						assert.Equal(t, PlacedOrderStatus, order.OrderStatus)
						assert.Equal(t, PendingPaymentStatus, order.PaymentStatus)
						return nil
					})
			},
		},
		{
			name: "Caller statuses kept",
			order: &domain.Order{
				CustomerID:    17,
				OrderStatus:   "confirmed",
				PaymentStatus: "paid",
				ItemID:        42,
				ItemQuantity:  1,
				ItemPrice:     decimal.NewFromInt(100),
			},
			prepareMock: func(repo *MockRepo, idGen *MockIDGenerator) {
				idGen.EXPECT().Next().Return(int64(1002))
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, order *domain.Order) error {
						assert.Equal(t, "confirmed", order.OrderStatus)
						assert.Equal(t, "paid", order.PaymentStatus)
						return nil
					})
			},
		},
		{
			name:  "Save failure propagates",
			order: &domain.Order{CustomerID: 17, ItemID: 42, ItemQuantity: 1, ItemPrice: decimal.NewFromInt(100)},
			prepareMock: func(repo *MockRepo, idGen *MockIDGenerator) {
				idGen.EXPECT().Next().Return(int64(1003))
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, idGen := NewMock(t)
			tt.prepareMock(repo, idGen)

			order, err := service.CreateOrder(context.Background(), tt.order)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, order.OrderID)
			}
		})
	}
}

func TestUpdateOrder(t *testing.T) {
	newStatus := "shipped"
	zeroQuantity := 0

	tests := []struct {
		name          string
		orderID       int64
		upd           Update
		prepareMock   func(repo *MockRepo)
		verify        func(t *testing.T, order *domain.Order)
		expectedError error
	}{
		{
			name:    "Only present fields change",
			orderID: 100,
			upd:     Update{OrderStatus: &newStatus},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(&domain.Order{
					OrderID:       100,
					OrderStatus:   "placed",
					PaymentStatus: "pending",
					ItemQuantity:  2,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "shipped", order.OrderStatus)
				assert.Equal(t, "pending", order.PaymentStatus)
				assert.Equal(t, 2, order.ItemQuantity)
			},
		},
		{
			name:    "Explicit zero overwrites",
			orderID: 100,
			upd:     Update{ItemQuantity: &zeroQuantity},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(&domain.Order{
					OrderID:      100,
					ItemQuantity: 2,
				}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			verify: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, 0, order.ItemQuantity)
			},
		},
		{
			name:    "Unknown order",
			orderID: 999,
			upd:     Update{OrderStatus: &newStatus},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			order, err := service.UpdateOrder(context.Background(), tt.orderID, tt.upd)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				tt.verify(t, order)
			}
		})
	}
}

func TestGetOrdersByCustomer(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().FindByCustomerID(gomock.Any(), int64(17)).Return([]domain.Order{
		{OrderID: 100, CustomerID: 17},
		{OrderID: 101, CustomerID: 17},
	}, nil)

	grouped, err := service.GetOrdersByCustomer(context.Background(), 17)
	assert.NoError(t, err)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[100], 1)
	assert.Len(t, grouped[101], 1)

	repo.EXPECT().FindByCustomerID(gomock.Any(), int64(18)).Return(nil, nil)
	grouped, err = service.GetOrdersByCustomer(context.Background(), 18)
	assert.NoError(t, err)
	assert.Nil(t, grouped)
}

func TestGetOrdersByVendor(t *testing.T) {
	service, repo, _ := NewMock(t)

	orders := []domain.Order{{OrderID: 100}, {OrderID: 101}}
	repo.EXPECT().FindByVendorID(gomock.Any(), int64(7)).Return(orders, nil)

	got, err := service.GetOrdersByVendor(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, orders, got)

	repo.EXPECT().FindByVendorID(gomock.Any(), int64(8)).Return(nil, errors.New("db error"))
	_, err = service.GetOrdersByVendor(context.Background(), 8)
	assert.Error(t, err)
}
