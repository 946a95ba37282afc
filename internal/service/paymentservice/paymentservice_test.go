package paymentservice

import (
	"context"
	"errors"
	"testing"

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

func TestComputeNewBalance(t *testing.T) {
	tests := []struct {
		name            string
		vendorID        int64
		delta           decimal.Decimal
		prepareMock     func(repo *MockRepo)
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:     "Latest ledger row carries the balance",
			vendorID: 7,
			delta:    decimal.NewFromInt(100),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindLatestByVendor(gomock.Any(), int64(7)).Return(&domain.Payment{
					VendorID:           7,
					TotalBalanceVendor: decimal.NewFromInt(500),
				}, nil)
			},
			expectedBalance: decimal.NewFromInt(600),
		},
		{
			name:     "Empty ledger bootstraps from credit sum",
			vendorID: 7,
			delta:    decimal.NewFromInt(-200),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindLatestByVendor(gomock.Any(), int64(7)).Return(nil, nil)
				repo.EXPECT().SumCreditsByVendor(gomock.Any(), int64(7)).Return(decimal.NewFromInt(1000), nil)
			},
			expectedBalance: decimal.NewFromInt(800),
		},
		{
			name:     "Lookup error propagates",
			vendorID: 7,
			delta:    decimal.NewFromInt(100),
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindLatestByVendor(gomock.Any(), int64(7)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			balance, err := service.ComputeNewBalance(context.Background(), tt.vendorID, tt.delta)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expectedBalance.Equal(balance), "expected %s got %s", tt.expectedBalance, balance)
			}
		})
	}
}

func TestRecordPayment(t *testing.T) {
	amount := decimal.NewFromInt(1000)

	tests := []struct {
		name            string
		params          RecordParams
		prepareMock     func(repo *MockRepo, idGen *MockIDGenerator)
		expectedReplay  bool
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name: "Credit payment appends a row with the new balance",
			params: RecordParams{
				OrderID: 100, VendorID: 7, PaymentAmount: amount,
				PaymentMethod: "card", Status: "paid", PaymentType: CreditPaymentType,
			},
			prepareMock: func(repo *MockRepo, idGen *MockIDGenerator) {
				repo.EXPECT().FindByOrderAndType(gomock.Any(), int64(100), CreditPaymentType).Return(nil, nil)
				repo.EXPECT().FindLatestByVendor(gomock.Any(), int64(7)).Return(&domain.Payment{
					TotalBalanceVendor: decimal.NewFromInt(500),
				}, nil)
				idGen.EXPECT().Next().Return(int64(42))
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, payment *domain.Payment) error {
						assert.Equal(t, int64(42), payment.PaymentID)
						assert.True(t, decimal.NewFromInt(1500).Equal(payment.TotalBalanceVendor))
						return nil
					})
			},
			expectedReplay:  false,
			expectedBalance: decimal.NewFromInt(1500),
		},
		{
			name: "Debit payment subtracts from the balance",
			params: RecordParams{
				OrderID: 100, VendorID: 7, PaymentAmount: amount,
				PaymentMethod: "upi", Status: "refunded", PaymentType: DebitPaymentType,
			},
			prepareMock: func(repo *MockRepo, idGen *MockIDGenerator) {
				repo.EXPECT().FindByOrderAndType(gomock.Any(), int64(100), DebitPaymentType).Return(nil, nil)
				repo.EXPECT().FindLatestByVendor(gomock.Any(), int64(7)).Return(&domain.Payment{
					TotalBalanceVendor: decimal.NewFromInt(1500),
				}, nil)
				idGen.EXPECT().Next().Return(int64(43))
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedReplay:  false,
			expectedBalance: decimal.NewFromInt(500),
		},
		{
			name: "Repeated call replays the stored row",
			params: RecordParams{
				OrderID: 100, VendorID: 7, PaymentAmount: amount,
				PaymentMethod: "card", Status: "paid", PaymentType: CreditPaymentType,
			},
			prepareMock: func(repo *MockRepo, idGen *MockIDGenerator) {
				repo.EXPECT().FindByOrderAndType(gomock.Any(), int64(100), CreditPaymentType).Return(&domain.Payment{
					PaymentID:          42,
					OrderID:            100,
					TotalBalanceVendor: decimal.NewFromInt(1500),
				}, nil)
			},
			expectedReplay:  true,
			expectedBalance: decimal.NewFromInt(1500),
		},
		{
			name: "Lookup failure stops the write",
			params: RecordParams{
				OrderID: 100, VendorID: 7, PaymentAmount: amount, PaymentType: CreditPaymentType,
			},
			prepareMock: func(repo *MockRepo, idGen *MockIDGenerator) {
				repo.EXPECT().FindByOrderAndType(gomock.Any(), int64(100), CreditPaymentType).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, idGen := NewMock(t)
			tt.prepareMock(repo, idGen)

			payment, replayed, err := service.RecordPayment(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, payment)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedReplay, replayed)
			assert.True(t, tt.expectedBalance.Equal(payment.TotalBalanceVendor))
		})
	}
}

func TestRecordRefundDebit(t *testing.T) {
	service, repo, idGen := NewMock(t)
	amount := decimal.NewFromInt(300)

	repo.EXPECT().FindLatestByVendor(gomock.Any(), int64(7)).Return(&domain.Payment{
		TotalBalanceVendor: decimal.NewFromInt(1000),
	}, nil)
	idGen.EXPECT().Next().Return(int64(77))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, payment *domain.Payment) error {
			assert.Equal(t, DebitPaymentType, payment.PaymentType)
			assert.True(t, decimal.NewFromInt(700).Equal(payment.TotalBalanceVendor))
			assert.True(t, amount.Equal(payment.PaymentAmount))
			return nil
		})

	payment, err := service.RecordRefundDebit(context.Background(), 100, 7, amount, "upi", "approved")
	assert.NoError(t, err)
	assert.Equal(t, int64(77), payment.PaymentID)
}

func TestGetPayments(t *testing.T) {
	service, repo, _ := NewMock(t)

	payments := []domain.Payment{{PaymentID: 1}, {PaymentID: 2}}
	repo.EXPECT().FindAll(gomock.Any()).Return(payments, nil)

	got, err := service.GetPayments(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, payments, got)
}
