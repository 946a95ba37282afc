package paymentservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
)

type Repo interface {
	FindByOrderAndType(ctx context.Context, orderID int64, paymentType string) (*domain.Payment, error)
	FindLatestByVendor(ctx context.Context, vendorID int64) (*domain.Payment, error)
	SumCreditsByVendor(ctx context.Context, vendorID int64) (decimal.Decimal, error)
	Create(ctx context.Context, payment *domain.Payment) error
	FindAll(ctx context.Context) ([]domain.Payment, error)
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
	CreditPaymentType string = "credit"
	DebitPaymentType  string = "debit"
)

// ComputeNewBalance derives a vendor's next running balance. The latest
// ledger row carries the current balance; with no rows at all the balance
// bootstraps from the credit-only sum. Never cached between requests.
func (s *Service) ComputeNewBalance(ctx context.Context, vendorID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	last, err := s.repo.FindLatestByVendor(ctx, vendorID)
	if err != nil {
		return decimal.Zero, err
	}
	if last != nil {
		return last.TotalBalanceVendor.Add(delta), nil
	}

	base, err := s.repo.SumCreditsByVendor(ctx, vendorID)
	if err != nil {
		return decimal.Zero, err
	}
	return base.Add(delta), nil
}

type RecordParams struct {
	OrderID       int64
	VendorID      int64
	PaymentAmount decimal.Decimal
	PaymentMethod string
	Status        string
	PaymentType   string
}

// RecordPayment appends one ledger row per (order_id, payment_type). A
// repeated call returns the stored row and reports the replay, so retries
// never double-apply the balance.
func (s *Service) RecordPayment(ctx context.Context, params RecordParams) (*domain.Payment, bool, error) {
	existing, err := s.repo.FindByOrderAndType(ctx, params.OrderID, params.PaymentType)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		zap.L().Info("payment already recorded",
			zap.Int64("order_id", params.OrderID), zap.String("payment_type", params.PaymentType))
		return existing, true, nil
	}

	delta := params.PaymentAmount
	if params.PaymentType == DebitPaymentType {
		delta = delta.Neg()
	}
	balance, err := s.ComputeNewBalance(ctx, params.VendorID, delta)
	if err != nil {
		zap.L().Error("can't compute vendor balance", zap.Error(err))
		return nil, false, err
	}

	payment := &domain.Payment{
		PaymentID:          s.idGen.Next(),
		OrderID:            params.OrderID,
		VendorID:           params.VendorID,
		PaymentAmount:      params.PaymentAmount,
		PaymentDate:        time.Now().UTC(),
		PaymentMethod:      params.PaymentMethod,
		PaymentType:        params.PaymentType,
		Status:             params.Status,
		TotalBalanceVendor: balance,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, false, err
	}
	return payment, false, nil
}

// RecordRefundDebit appends the debit ledger row an approved refund
// produces. It must run inside the caller's approval transaction.
func (s *Service) RecordRefundDebit(ctx context.Context, orderID, vendorID int64, amount decimal.Decimal, paymentMethod, status string) (*domain.Payment, error) {
	balance, err := s.ComputeNewBalance(ctx, vendorID, amount.Neg())
	if err != nil {
		zap.L().Error("can't compute vendor balance", zap.Error(err))
		return nil, err
	}

	payment := &domain.Payment{
		PaymentID:          s.idGen.Next(),
		OrderID:            orderID,
		VendorID:           vendorID,
		PaymentAmount:      amount,
		PaymentDate:        time.Now().UTC(),
		PaymentMethod:      paymentMethod,
		PaymentType:        DebitPaymentType,
		Status:             status,
		TotalBalanceVendor: balance,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		zap.L().Error("can't save refund debit", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (s *Service) GetPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
