package returnservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockReturnRepo, *MockRefundRepo, *MockLedger, *MockIDGenerator) {
	ctrl := gomock.NewController(t)
	orderRepo := NewMockOrderRepo(ctrl)
	returnRepo := NewMockReturnRepo(ctrl)
	refundRepo := NewMockRefundRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	idGen := NewMockIDGenerator(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	service := New(orderRepo, returnRepo, refundRepo, ledger, idGen, txManager)
	defer ctrl.Finish()
	return service, orderRepo, returnRepo, refundRepo, ledger, idGen
}

func TestInitiateCancel(t *testing.T) {
	service, orderRepo, returnRepo, _, _, idGen := NewMock(t)

	tests := []struct {
		name          string
		orderID       int64
		reason        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Successful cancellation request",
			orderID: 100,
			reason:  "wrong size",
			prepareMock: func() {
				orderRepo.EXPECT().UpdateStatus(gomock.Any(), int64(100), "approve_cancel").Return(int64(1), nil)
				idGen.EXPECT().Next().Return(int64(555))
				returnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, request *domain.ReturnRequest) error {
						assert.Equal(t, int64(555), request.ReturnID)
						assert.Equal(t, int64(100), request.OrderID)
						assert.Equal(t, "wrong size", request.ReturnReason)
						assert.Equal(t, "", request.Status)
						return nil
					})
			},
			expectedError: nil,
		},
		{
			name:    "Order does not exist",
			orderID: 101,
			reason:  "changed my mind",
			prepareMock: func() {
				orderRepo.EXPECT().UpdateStatus(gomock.Any(), int64(101), "approve_cancel").Return(int64(0), nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "Return request insert fails",
			orderID: 102,
			reason:  "damaged",
			prepareMock: func() {
				orderRepo.EXPECT().UpdateStatus(gomock.Any(), int64(102), "approve_cancel").Return(int64(1), nil)
				idGen.EXPECT().Next().Return(int64(556))
				returnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			request, err := service.InitiateCancel(context.Background(), tt.orderID, tt.reason)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.orderID, request.OrderID)
				assert.Equal(t, tt.reason, request.ReturnReason)
			}
		})
	}
}

func TestApproveOrReject(t *testing.T) {
	amount := decimal.NewFromInt(1000)

	tests := []struct {
		name          string
		params        ApprovalParams
		prepareMock   func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo, refundRepo *MockRefundRepo, ledger *MockLedger, idGen *MockIDGenerator)
		expectedError error
	}{
		{
			name: "Approve pending request updates refund and debits vendor",
			params: ApprovalParams{
				OrderID: 100, ReturnID: 555, Status: "approved",
				RefundAmount: amount, Comment: "verified", PaymentMethod: "upi", VendorID: 7,
			},
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo, refundRepo *MockRefundRepo, ledger *MockLedger, idGen *MockIDGenerator) {
				orderRepo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(&domain.Order{OrderID: 100}, nil)
				returnRepo.EXPECT().FindByIDAndOrder(gomock.Any(), int64(555), int64(100)).
					Return(&domain.ReturnRequest{ReturnID: 555, OrderID: 100, Status: ""}, nil)
				returnRepo.EXPECT().UpdateStatusForOrder(gomock.Any(), int64(555), int64(100), "approved").Return(nil)
				refundRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				ledger.EXPECT().RecordRefundDebit(gomock.Any(), int64(100), int64(7), amount, "upi", "approved").
					Return(&domain.Payment{PaymentID: 1}, nil)
			},
			expectedError: nil,
		},
		{
			name: "Second approval is rejected",
			params: ApprovalParams{
				OrderID: 100, ReturnID: 555, Status: "approved",
				RefundAmount: amount, PaymentMethod: "upi", VendorID: 7,
			},
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo, refundRepo *MockRefundRepo, ledger *MockLedger, idGen *MockIDGenerator) {
				orderRepo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(&domain.Order{OrderID: 100}, nil)
				returnRepo.EXPECT().FindByIDAndOrder(gomock.Any(), int64(555), int64(100)).
					Return(&domain.ReturnRequest{ReturnID: 555, OrderID: 100, Status: "approved"}, nil)
			},
			expectedError: ErrAlreadyApproved,
		},
		{
			name: "Reject does not touch the ledger",
			params: ApprovalParams{
				OrderID: 100, ReturnID: 555, Status: "rejected",
				RefundAmount: decimal.Zero, Comment: "item worn", VendorID: 7,
			},
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo, refundRepo *MockRefundRepo, ledger *MockLedger, idGen *MockIDGenerator) {
				orderRepo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(&domain.Order{OrderID: 100}, nil)
				returnRepo.EXPECT().FindByIDAndOrder(gomock.Any(), int64(555), int64(100)).
					Return(&domain.ReturnRequest{ReturnID: 555, OrderID: 100, Status: ""}, nil)
				returnRepo.EXPECT().UpdateStatusForOrder(gomock.Any(), int64(555), int64(100), "rejected").Return(nil)
				refundRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name: "Missing return request row is created",
			params: ApprovalParams{
				OrderID: 100, ReturnID: 556, Status: "approved",
				RefundAmount: amount, PaymentMethod: "card", VendorID: 7,
			},
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo, refundRepo *MockRefundRepo, ledger *MockLedger, idGen *MockIDGenerator) {
				orderRepo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(&domain.Order{OrderID: 100}, nil)
				returnRepo.EXPECT().FindByIDAndOrder(gomock.Any(), int64(556), int64(100)).Return(nil, nil)
				returnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				refundRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				idGen.EXPECT().Next().Return(int64(900))
				refundRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, refund *domain.Refund) error {
						assert.Equal(t, int64(900), refund.RefundID)
						return nil
					})
				ledger.EXPECT().RecordRefundDebit(gomock.Any(), int64(100), int64(7), amount, "card", "approved").
					Return(&domain.Payment{PaymentID: 2}, nil)
			},
			expectedError: nil,
		},
		{
			name: "Approval without payment method is rejected",
			params: ApprovalParams{
				OrderID: 100, ReturnID: 555, Status: "Approved",
				RefundAmount: amount, Comment: "verified", VendorID: 7,
			},
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo, refundRepo *MockRefundRepo, ledger *MockLedger, idGen *MockIDGenerator) {
			},
			expectedError: ErrPaymentMethodRequired,
		},
		{
			name: "Order not found",
			params: ApprovalParams{
				OrderID: 999, ReturnID: 555, Status: "approved",
				RefundAmount: amount, PaymentMethod: "upi", VendorID: 7,
			},
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo, refundRepo *MockRefundRepo, ledger *MockLedger, idGen *MockIDGenerator) {
				orderRepo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "Ledger failure rolls the approval back",
			params: ApprovalParams{
				OrderID: 100, ReturnID: 555, Status: "approved",
				RefundAmount: amount, PaymentMethod: "upi", VendorID: 7,
			},
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo, refundRepo *MockRefundRepo, ledger *MockLedger, idGen *MockIDGenerator) {
				orderRepo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(&domain.Order{OrderID: 100}, nil)
				returnRepo.EXPECT().FindByIDAndOrder(gomock.Any(), int64(555), int64(100)).
					Return(&domain.ReturnRequest{ReturnID: 555, OrderID: 100, Status: ""}, nil)
				returnRepo.EXPECT().UpdateStatusForOrder(gomock.Any(), int64(555), int64(100), "approved").Return(nil)
				refundRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				ledger.EXPECT().RecordRefundDebit(gomock.Any(), int64(100), int64(7), amount, "upi", "approved").
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, orderRepo, returnRepo, refundRepo, ledger, idGen := NewMock(t)
			tt.prepareMock(orderRepo, returnRepo, refundRepo, ledger, idGen)

			result, err := service.ApproveOrReject(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.params.OrderID, result.OrderID)
				assert.Equal(t, tt.params.ReturnID, result.ReturnID)
				assert.Equal(t, tt.params.Status, result.Status)
				if tt.params.Status == "approved" {
					assert.Equal(t, tt.params.PaymentMethod, result.PaymentMethod)
				} else {
					assert.Empty(t, result.PaymentMethod)
				}
			}
		})
	}
}

func TestUpdateReturnStatus(t *testing.T) {
	comment := "inspected"

	tests := []struct {
		name          string
		returnID      int64
		status        string
		comment       *string
		prepareMock   func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo)
		expectedError error
	}{
		{
			name:     "Approving cascades the order to returned",
			returnID: 555,
			status:   "approved",
			comment:  &comment,
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo) {
				returnRepo.EXPECT().FindByID(gomock.Any(), int64(555)).
					Return(&domain.ReturnRequest{ReturnID: 555, OrderID: 100}, nil)
				returnRepo.EXPECT().UpdateStatus(gomock.Any(), int64(555), "approved", &comment).Return(nil)
				orderRepo.EXPECT().UpdateStatus(gomock.Any(), int64(100), "returned").Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name:     "Rejecting leaves the order alone",
			returnID: 555,
			status:   "rejected",
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo) {
				returnRepo.EXPECT().FindByID(gomock.Any(), int64(555)).
					Return(&domain.ReturnRequest{ReturnID: 555, OrderID: 100}, nil)
				returnRepo.EXPECT().UpdateStatus(gomock.Any(), int64(555), "rejected", nil).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown return request",
			returnID: 999,
			status:   "approved",
			prepareMock: func(orderRepo *MockOrderRepo, returnRepo *MockReturnRepo) {
				returnRepo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(nil, nil)
			},
			expectedError: ErrReturnNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, orderRepo, returnRepo, _, _, _ := NewMock(t)
			tt.prepareMock(orderRepo, returnRepo)

			var commentArg *string
			if tt.comment != nil {
				commentArg = tt.comment
			}
			request, err := service.UpdateReturnStatus(context.Background(), tt.returnID, tt.status, commentArg)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, request.Status)
			}
		})
	}
}

func TestUpdateReturnReason(t *testing.T) {
	tests := []struct {
		name          string
		returnID      int64
		reason        string
		prepareMock   func(returnRepo *MockReturnRepo)
		expectedError error
	}{
		{
			name:     "Pending request can change its reason",
			returnID: 555,
			reason:   "arrived damaged",
			prepareMock: func(returnRepo *MockReturnRepo) {
				returnRepo.EXPECT().FindByID(gomock.Any(), int64(555)).
					Return(&domain.ReturnRequest{ReturnID: 555, OrderID: 100, Status: ""}, nil)
				returnRepo.EXPECT().UpdateReason(gomock.Any(), int64(555), "arrived damaged").Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "Processed request refuses the change",
			returnID: 555,
			reason:   "arrived damaged",
			prepareMock: func(returnRepo *MockReturnRepo) {
				returnRepo.EXPECT().FindByID(gomock.Any(), int64(555)).
					Return(&domain.ReturnRequest{ReturnID: 555, OrderID: 100, Status: "approved"}, nil)
			},
			expectedError: ErrReturnProcessed,
		},
		{
			name:     "Unknown request",
			returnID: 999,
			reason:   "arrived damaged",
			prepareMock: func(returnRepo *MockReturnRepo) {
				returnRepo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(nil, nil)
			},
			expectedError: ErrReturnProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, returnRepo, _, _, _ := NewMock(t)
			tt.prepareMock(returnRepo)

			request, err := service.UpdateReturnReason(context.Background(), tt.returnID, tt.reason)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.reason, request.ReturnReason)
			}
		})
	}
}

func TestGetReturnDetail(t *testing.T) {
	service, _, returnRepo, _, _, _ := NewMock(t)

	returnRepo.EXPECT().FindDetail(gomock.Any(), int64(555)).
		Return(&domain.ReturnDetail{ReturnID: 555, OrderID: 100}, nil)
	detail, err := service.GetReturnDetail(context.Background(), 555)
	assert.NoError(t, err)
	assert.Equal(t, int64(555), detail.ReturnID)

	returnRepo.EXPECT().FindDetail(gomock.Any(), int64(999)).Return(nil, nil)
	detail, err = service.GetReturnDetail(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReturnNotFound)
	assert.Nil(t, detail)
}

func TestGetRefunds(t *testing.T) {
	service, _, _, refundRepo, _, _ := NewMock(t)

	refunds := []domain.Refund{{RefundID: 1}, {RefundID: 2}}
	refundRepo.EXPECT().FindAll(gomock.Any()).Return(refunds, nil)

	got, err := service.GetRefunds(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, refunds, got)
}
