package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/config"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1

	DeliveredShippingStatus = "delivered"
	InTransitShippingStatus = "in_transit"
)

var processingShipments sync.Map

type ShippingRepo interface {
	FindForTracking(ctx context.Context, limit uint32) ([]domain.Shipping, error)
	Update(ctx context.Context, shipping *domain.Shipping) error
}

// Response is the carrier tracking payload.
type Response struct {
	TrackingNumber string     `json:"tracking_number"`
	Status         string     `json:"status"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

type Service struct {
	url            string
	shippingRepo   ShippingRepo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, shippingRepo ShippingRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.TrackingAddress,
		shippingRepo:   shippingRepo,
		client:         client,
		limit:          cfg.TrackingLimit,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Duration(cfg.TrackingInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Tracking service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processShipments(ctx)
		}
	}
}

func (s *Service) processShipments(ctx context.Context) {
	shipments, err := s.shippingRepo.FindForTracking(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch shipments for tracking", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, shipment := range shipments {
		shipment := shipment

		if _, loaded := processingShipments.LoadOrStore(shipment.TrackingNumber, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingShipments.Delete(shipment.TrackingNumber)
				return s.handleShipment(ctx, shipment)
			})
			if err != nil {
				processingShipments.Delete(shipment.TrackingNumber)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing shipments", zap.Error(err))
	}
}

func (s *Service) handleShipment(ctx context.Context, shipment domain.Shipping) error {
	url := s.url + "/api/shipments/" + shipment.TrackingNumber
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to track shipment %s after %d retries: %w", shipment.TrackingNumber, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(shipment, respHeaders, attempt)
			case http.StatusNoContent:
				zap.L().Warn("Shipment not known to carrier yet, retrying", zap.String("trackingNumber", shipment.TrackingNumber), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("shipment %s not found after %d retries", shipment.TrackingNumber, maxRetries)

			case http.StatusOK:
				return s.processUpdate(ctx, shipment, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("trackingNumber", shipment.TrackingNumber))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processUpdate(ctx context.Context, shipment domain.Shipping, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.TrackingNumber != shipment.TrackingNumber {
		return fmt.Errorf("tracking number mismatch: expected %s, got %s", shipment.TrackingNumber, response.TrackingNumber)
	}

	switch response.Status {
	case DeliveredShippingStatus:
		shipment.ShippingStatus = DeliveredShippingStatus
		if response.DeliveredAt != nil {
			shipment.DeliveryDate = response.DeliveredAt
		} else {
			now := time.Now().UTC()
			shipment.DeliveryDate = &now
		}
	case InTransitShippingStatus:
		shipment.ShippingStatus = InTransitShippingStatus
	default:
		zap.L().Warn("Unrecognized carrier status", zap.String("trackingNumber", shipment.TrackingNumber), zap.String("status", response.Status))
		return nil
	}

	if err := s.shippingRepo.Update(ctx, &shipment); err != nil {
		return fmt.Errorf("failed to update shipment in repo: %w", err)
	}
	return nil
}

func (s *Service) handleRateLimit(shipment domain.Shipping, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("trackingNumber", shipment.TrackingNumber),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
