package shippingservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, shipping *domain.Shipping) error
	FindForTracking(ctx context.Context, limit uint32) ([]domain.Shipping, error)
	Update(ctx context.Context, shipping *domain.Shipping) error
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

const PendingShippingStatus string = "pending"

func (s *Service) CreateShipping(ctx context.Context, shipping *domain.Shipping) (*domain.Shipping, error) {
	if shipping.ShippingStatus == "" {
		shipping.ShippingStatus = PendingShippingStatus
	}
	shipping.ShippingID = s.idGen.Next()

	if err := s.repo.Create(ctx, shipping); err != nil {
		zap.L().Error("can't create shipping", zap.Error(err))
		return nil, err
	}
	return shipping, nil
}
