package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	query := `
        SELECT order_id, customer_id, order_date, order_status, payment_status, shipping_address, shipping_id, item_id, item_quantity, item_price
        FROM orders
        WHERE order_id = $1
    `
	row := r.db.QueryRow(ctx, query, orderID)

	var order domain.Order
	err := row.Scan(&order.OrderID, &order.CustomerID, &order.OrderDate, &order.OrderStatus, &order.PaymentStatus,
		&order.ShippingAddress, &order.ShippingID, &order.ItemID, &order.ItemQuantity, &order.ItemPrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (order_id, customer_id, order_date, order_status, payment_status, shipping_address, shipping_id, item_id, item_quantity, item_price)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.OrderID, order.CustomerID, order.OrderDate, order.OrderStatus,
			order.PaymentStatus, order.ShippingAddress, order.ShippingID, order.ItemID, order.ItemQuantity, order.ItemPrice)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET order_status = $1, payment_status = $2, shipping_address = $3, shipping_id = $4, item_id = $5, item_quantity = $6, item_price = $7
        WHERE order_id = $8
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, order.OrderStatus, order.PaymentStatus, order.ShippingAddress,
			order.ShippingID, order.ItemID, order.ItemQuantity, order.ItemPrice, order.OrderID)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateStatus changes only order_status and reports how many rows matched.
func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, status string) (int64, error) {
	query := `
        UPDATE orders
        SET order_status = $1
        WHERE order_id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, orderID)
	if err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) FindByCustomerID(ctx context.Context, customerID int64) ([]domain.Order, error) {
	query := `
        SELECT order_id, customer_id, order_date, order_status, payment_status, shipping_address, shipping_id, item_id, item_quantity, item_price
        FROM orders
        WHERE customer_id = $1
        ORDER BY order_date DESC
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't get orders by customer", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *Repository) FindByVendorID(ctx context.Context, vendorID int64) ([]domain.Order, error) {
	query := `
        SELECT o.order_id, o.customer_id, o.order_date, o.order_status, o.payment_status, o.shipping_address, o.shipping_id, o.item_id, o.item_quantity, o.item_price
        FROM orders AS o
        JOIN item AS i ON o.item_id = i.item_id
        WHERE i.vendor_id = $1
        ORDER BY o.order_date DESC
    `
	rows, err := r.db.Query(ctx, query, vendorID)
	if err != nil {
		zap.L().Error("can't get orders by vendor", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.OrderID, &order.CustomerID, &order.OrderDate, &order.OrderStatus, &order.PaymentStatus,
			&order.ShippingAddress, &order.ShippingID, &order.ItemID, &order.ItemQuantity, &order.ItemPrice)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
