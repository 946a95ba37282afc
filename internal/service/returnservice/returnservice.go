package returnservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/pg"
	orderservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/orderservice"
)

type OrderRepo interface {
	FindByID(ctx context.Context, orderID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) (int64, error)
}

type ReturnRepo interface {
	Create(ctx context.Context, request *domain.ReturnRequest) error
	FindByID(ctx context.Context, returnID int64) (*domain.ReturnRequest, error)
	FindByIDAndOrder(ctx context.Context, returnID, orderID int64) (*domain.ReturnRequest, error)
	UpdateStatusForOrder(ctx context.Context, returnID, orderID int64, status string) error
	UpdateStatus(ctx context.Context, returnID int64, status string, comment *string) error
	UpdateReason(ctx context.Context, returnID int64, reason string) error
	FindByCustomerID(ctx context.Context, customerID int64) ([]domain.CustomerReturn, error)
	FindDetail(ctx context.Context, returnID int64) (*domain.ReturnDetail, error)
	FindAll(ctx context.Context, status string) ([]domain.AdminReturn, error)
}

type RefundRepo interface {
	Update(ctx context.Context, refund *domain.Refund) (int64, error)
	Create(ctx context.Context, refund *domain.Refund) error
	FindAll(ctx context.Context) ([]domain.Refund, error)
}

// Ledger appends the debit row an approved refund produces. Calls join the
// surrounding approval transaction through the context.
type Ledger interface {
	RecordRefundDebit(ctx context.Context, orderID, vendorID int64, amount decimal.Decimal, paymentMethod, status string) (*domain.Payment, error)
}

type IDGenerator interface {
	Next() int64
}

type Service struct {
	orderRepo  OrderRepo
	returnRepo ReturnRepo
	refundRepo RefundRepo
	ledger     Ledger
	idGen      IDGenerator
	txManager  pg.TXManager
}

func New(orderRepo OrderRepo, returnRepo ReturnRepo, refundRepo RefundRepo, ledger Ledger, idGen IDGenerator, txManager pg.TXManager) *Service {
	return &Service{
		orderRepo:  orderRepo,
		returnRepo: returnRepo,
		refundRepo: refundRepo,
		ledger:     ledger,
		idGen:      idGen,
		txManager:  txManager,
	}
}

// ApprovedStatus is the terminal status an admin sets on a return request.
const ApprovedStatus string = "approved"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrReturnNotFound  = errors.New("return request not found")
	ErrAlreadyApproved = errors.New("return request is already approved")
	ErrReturnProcessed = errors.New("return request not found or already processed")

	ErrPaymentMethodRequired = errors.New("payment_method is required when status is approved")
)

// InitiateCancel flips the order into approve_cancel and opens a pending
// return request. Both writes share one transaction so a failed insert
// can't leave the order stuck without a return request.
func (s *Service) InitiateCancel(ctx context.Context, orderID int64, reason string) (*domain.ReturnRequest, error) {
	var request *domain.ReturnRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		affected, err := s.orderRepo.UpdateStatus(ctx, orderID, orderservice.ApproveCancelOrderStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotFound
		}

		request = &domain.ReturnRequest{
			ReturnID:     s.idGen.Next(),
			OrderID:      orderID,
			ReturnReason: reason,
			Status:       "",
			RequestDate:  time.Now().UTC(),
		}
		if err := s.returnRepo.Create(ctx, request); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrOrderNotFound) {
			zap.L().Error("can't initiate cancel", zap.Error(err))
		}
		return nil, err
	}
	return request, nil
}

type ApprovalParams struct {
	OrderID       int64
	ReturnID      int64
	Status        string
	RefundAmount  decimal.Decimal
	Comment       string
	PaymentMethod string
	VendorID      int64
}

type ApprovalResult struct {
	OrderID       int64
	ReturnID      int64
	Status        string
	RefundAmount  decimal.Decimal
	RefundDate    time.Time
	Comment       string
	PaymentMethod string
}

// ApproveOrReject runs the admin disposition of a return request as one
// transaction: return-request status, refund upsert and, on approval, the
// debit ledger row. The already-approved check is what keeps the debit from
// ever being applied twice for the same (order_id, return_id).
func (s *Service) ApproveOrReject(ctx context.Context, params ApprovalParams) (*ApprovalResult, error) {
	refundDate := time.Now().UTC()
	approved := strings.EqualFold(params.Status, ApprovedStatus)
	if approved && params.PaymentMethod == "" {
		return nil, ErrPaymentMethodRequired
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByID(ctx, params.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		existing, err := s.returnRepo.FindByIDAndOrder(ctx, params.ReturnID, params.OrderID)
		if err != nil {
			return err
		}
		if existing == nil {
			request := &domain.ReturnRequest{
				ReturnID:    params.ReturnID,
				OrderID:     params.OrderID,
				Status:      params.Status,
				RequestDate: refundDate,
			}
			if err := s.returnRepo.Create(ctx, request); err != nil {
				return err
			}
		} else {
			if strings.EqualFold(existing.Status, ApprovedStatus) {
				return ErrAlreadyApproved
			}
			if err := s.returnRepo.UpdateStatusForOrder(ctx, params.ReturnID, params.OrderID, params.Status); err != nil {
				return err
			}
		}

		refund := &domain.Refund{
			OrderID:      params.OrderID,
			ReturnID:     params.ReturnID,
			RefundAmount: params.RefundAmount,
			RefundDate:   refundDate,
			Status:       params.Status,
			Comment:      params.Comment,
		}
		affected, err := s.refundRepo.Update(ctx, refund)
		if err != nil {
			return err
		}
		if affected == 0 {
			refund.RefundID = s.idGen.Next()
			if err := s.refundRepo.Create(ctx, refund); err != nil {
				return err
			}
		}

		if approved {
			if _, err := s.ledger.RecordRefundDebit(ctx, params.OrderID, params.VendorID, params.RefundAmount, params.PaymentMethod, params.Status); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrOrderNotFound) && !errors.Is(err, ErrAlreadyApproved) {
			zap.L().Error("approval failed", zap.Error(err))
		}
		return nil, err
	}

	result := &ApprovalResult{
		OrderID:      params.OrderID,
		ReturnID:     params.ReturnID,
		Status:       params.Status,
		RefundAmount: params.RefundAmount,
		RefundDate:   refundDate,
		Comment:      params.Comment,
	}
	if approved {
		result.PaymentMethod = params.PaymentMethod
	}
	return result, nil
}

// UpdateReturnStatus is the lightweight status-only transition. Moving to
// approved cascades the order into the returned state.
func (s *Service) UpdateReturnStatus(ctx context.Context, returnID int64, status string, comment *string) (*domain.ReturnRequest, error) {
	existing, err := s.returnRepo.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrReturnNotFound
	}

	if err := s.returnRepo.UpdateStatus(ctx, returnID, status, comment); err != nil {
		return nil, err
	}

	if strings.EqualFold(status, ApprovedStatus) {
		if _, err := s.orderRepo.UpdateStatus(ctx, existing.OrderID, orderservice.ReturnedOrderStatus); err != nil {
			return nil, err
		}
	}

	existing.Status = status
	if comment != nil {
		existing.Comment = *comment
	}
	return existing, nil
}

// UpdateReturnReason is only allowed while the request is still pending.
func (s *Service) UpdateReturnReason(ctx context.Context, returnID int64, reason string) (*domain.ReturnRequest, error) {
	existing, err := s.returnRepo.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.Status != "" {
		return nil, ErrReturnProcessed
	}

	if err := s.returnRepo.UpdateReason(ctx, returnID, reason); err != nil {
		return nil, err
	}
	existing.ReturnReason = reason
	return existing, nil
}

func (s *Service) GetReturnsByCustomer(ctx context.Context, customerID int64) ([]domain.CustomerReturn, error) {
	returns, err := s.returnRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		zap.L().Error("failed to fetch customer returns", zap.Error(err))
		return nil, err
	}
	return returns, nil
}

func (s *Service) GetReturnDetail(ctx context.Context, returnID int64) (*domain.ReturnDetail, error) {
	detail, err := s.returnRepo.FindDetail(ctx, returnID)
	if err != nil {
		zap.L().Error("failed to fetch return detail", zap.Error(err))
		return nil, err
	}
	if detail == nil {
		return nil, ErrReturnNotFound
	}
	return detail, nil
}

func (s *Service) GetAllReturns(ctx context.Context, status string) ([]domain.AdminReturn, error) {
	returns, err := s.returnRepo.FindAll(ctx, status)
	if err != nil {
		zap.L().Error("failed to fetch returns", zap.Error(err))
		return nil, err
	}
	return returns, nil
}

func (s *Service) GetRefunds(ctx context.Context) ([]domain.Refund, error) {
	refunds, err := s.refundRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch refunds", zap.Error(err))
		return nil, err
	}
	return refunds, nil
}
