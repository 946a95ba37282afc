package returnrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) Create(ctx context.Context, request *domain.ReturnRequest) error {
	query := `
        INSERT INTO returnrequest (return_id, order_id, return_reason, status, comment, request_date)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query, request.ReturnID, request.OrderID, request.ReturnReason,
		request.Status, request.Comment, request.RequestDate)
	if err != nil {
		zap.L().Error("can't save return request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, returnID int64) (*domain.ReturnRequest, error) {
	query := `
        SELECT return_id, order_id, return_reason, status, comment, request_date
        FROM returnrequest
        WHERE return_id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, returnID))
}

func (r *Repository) FindByIDAndOrder(ctx context.Context, returnID, orderID int64) (*domain.ReturnRequest, error) {
	query := `
        SELECT return_id, order_id, return_reason, status, comment, request_date
        FROM returnrequest
        WHERE return_id = $1 AND order_id = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, returnID, orderID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.ReturnRequest, error) {
	var request domain.ReturnRequest
	err := row.Scan(&request.ReturnID, &request.OrderID, &request.ReturnReason,
		&request.Status, &request.Comment, &request.RequestDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find return request", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

func (r *Repository) UpdateStatusForOrder(ctx context.Context, returnID, orderID int64, status string) error {
	query := `
        UPDATE returnrequest
        SET status = $1
        WHERE return_id = $2 AND order_id = $3
    `
	_, err := r.db.Exec(ctx, query, status, returnID, orderID)
	if err != nil {
		zap.L().Error("failed to update return status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, returnID int64, status string, comment *string) error {
	if comment != nil {
		query := `
            UPDATE returnrequest
            SET status = $1, comment = $2
            WHERE return_id = $3
        `
		_, err := r.db.Exec(ctx, query, status, *comment, returnID)
		if err != nil {
			zap.L().Error("failed to update return status", zap.Error(err))
			return err
		}
		return nil
	}
	query := `
        UPDATE returnrequest
        SET status = $1
        WHERE return_id = $2
    `
	_, err := r.db.Exec(ctx, query, status, returnID)
	if err != nil {
		zap.L().Error("failed to update return status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateReason(ctx context.Context, returnID int64, reason string) error {
	query := `
        UPDATE returnrequest
        SET return_reason = $1
        WHERE return_id = $2
    `
	_, err := r.db.Exec(ctx, query, reason, returnID)
	if err != nil {
		zap.L().Error("failed to update return reason", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByCustomerID(ctx context.Context, customerID int64) ([]domain.CustomerReturn, error) {
	query := `
        SELECT rr.return_id, rr.order_id, rr.return_reason, rr.status, rr.request_date,
               o.order_date, o.order_status, o.item_id, o.item_quantity, o.item_price
        FROM returnrequest rr
        JOIN orders o ON rr.order_id = o.order_id
        WHERE o.customer_id = $1
        ORDER BY rr.request_date DESC
    `
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		zap.L().Error("can't get returns by customer", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var returns []domain.CustomerReturn
	for rows.Next() {
		var ret domain.CustomerReturn
		err := rows.Scan(&ret.ReturnID, &ret.OrderID, &ret.ReturnReason, &ret.Status, &ret.RequestDate,
			&ret.OrderDate, &ret.OrderStatus, &ret.ItemID, &ret.ItemQuantity, &ret.ItemPrice)
		if err != nil {
			zap.L().Error("can't scan return row", zap.Error(err))
			return nil, err
		}
		returns = append(returns, ret)
	}
	return returns, nil
}

func (r *Repository) FindDetail(ctx context.Context, returnID int64) (*domain.ReturnDetail, error) {
	query := `
        SELECT rr.return_id, rr.order_id, rr.return_reason, rr.status, rr.request_date,
               o.customer_id, o.order_date, o.order_status, o.payment_status, o.item_id, o.item_quantity, o.item_price,
               rf.refund_amount, rf.refund_date, rf.status, rf.comment
        FROM returnrequest rr
        JOIN orders o ON rr.order_id = o.order_id
        LEFT JOIN refund rf ON rr.order_id = rf.order_id AND rr.return_id = rf.return_id
        WHERE rr.return_id = $1
    `
	row := r.db.QueryRow(ctx, query, returnID)

	var detail domain.ReturnDetail
	err := row.Scan(&detail.ReturnID, &detail.OrderID, &detail.ReturnReason, &detail.Status, &detail.RequestDate,
		&detail.CustomerID, &detail.OrderDate, &detail.OrderStatus, &detail.PaymentStatus,
		&detail.ItemID, &detail.ItemQuantity, &detail.ItemPrice,
		&detail.RefundAmount, &detail.RefundDate, &detail.RefundStatus, &detail.RefundComment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get return detail", zap.Error(err))
		return nil, err
	}
	return &detail, nil
}

func (r *Repository) FindAll(ctx context.Context, status string) ([]domain.AdminReturn, error) {
	query := `
        SELECT rr.return_id, rr.order_id, rr.return_reason, rr.status, rr.request_date,
               o.customer_id, o.order_date, o.item_id, o.item_quantity, o.item_price,
               c.name, c.email
        FROM returnrequest rr
        JOIN orders o ON rr.order_id = o.order_id
        JOIN customer c ON o.customer_id = c.customer_id
    `
	args := []any{}
	if status != "" {
		query += ` WHERE rr.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY rr.request_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get returns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var returns []domain.AdminReturn
	for rows.Next() {
		var ret domain.AdminReturn
		err := rows.Scan(&ret.ReturnID, &ret.OrderID, &ret.ReturnReason, &ret.Status, &ret.RequestDate,
			&ret.CustomerID, &ret.OrderDate, &ret.ItemID, &ret.ItemQuantity, &ret.ItemPrice,
			&ret.CustomerName, &ret.CustomerEmail)
		if err != nil {
			zap.L().Error("can't scan return row", zap.Error(err))
			return nil, err
		}
		returns = append(returns, ret)
	}
	return returns, nil
}
