package shippingrepo

import (
	"context"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, shipping *domain.Shipping) error {
	query := `
        INSERT INTO shipping (shipping_id, order_id, shipping_method, shipping_cost, shipping_date, tracking_number, delivery_date, shipping_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, shipping.ShippingID, shipping.OrderID, shipping.ShippingMethod,
		shipping.ShippingCost, shipping.ShippingDate, shipping.TrackingNumber, shipping.DeliveryDate, shipping.ShippingStatus)
	if err != nil {
		zap.L().Error("can't save shipping", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindForTracking(ctx context.Context, limit uint32) ([]domain.Shipping, error) {
	query := `
        SELECT shipping_id, order_id, shipping_method, shipping_cost, shipping_date, tracking_number, delivery_date, shipping_status
        FROM shipping
        WHERE shipping_status IN ('shipped', 'in_transit') AND tracking_number <> ''
        ORDER BY shipping_date ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get shipments for tracking", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shipments []domain.Shipping
	for rows.Next() {
		var shipping domain.Shipping
		err := rows.Scan(&shipping.ShippingID, &shipping.OrderID, &shipping.ShippingMethod, &shipping.ShippingCost,
			&shipping.ShippingDate, &shipping.TrackingNumber, &shipping.DeliveryDate, &shipping.ShippingStatus)
		if err != nil {
			zap.L().Error("can't scan shipping row", zap.Error(err))
			return nil, err
		}
		shipments = append(shipments, shipping)
	}
	return shipments, nil
}

func (r *Repository) Update(ctx context.Context, shipping *domain.Shipping) error {
	query := `
        UPDATE shipping
        SET shipping_status = $1, delivery_date = $2
        WHERE shipping_id = $3
    `
	_, err := r.db.Exec(ctx, query, shipping.ShippingStatus, shipping.DeliveryDate, shipping.ShippingID)
	if err != nil {
		zap.L().Error("failed to update shipping", zap.Error(err))
		return err
	}
	return nil
}
