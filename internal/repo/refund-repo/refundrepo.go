package refundrepo

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

// Update rewrites the refund row for (order_id, return_id) and reports how
// many rows matched, so the caller can fall back to an insert.
func (r *Repository) Update(ctx context.Context, refund *domain.Refund) (int64, error) {
	query := `
        UPDATE refund
        SET refund_amount = $1, refund_date = $2, status = $3, comment = $4
        WHERE order_id = $5 AND return_id = $6
    `
	tag, err := r.db.Exec(ctx, query, refund.RefundAmount, refund.RefundDate, refund.Status,
		refund.Comment, refund.OrderID, refund.ReturnID)
	if err != nil {
		zap.L().Error("failed to update refund", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) Create(ctx context.Context, refund *domain.Refund) error {
	query := `
        INSERT INTO refund (refund_id, order_id, return_id, refund_amount, refund_date, status, comment)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.Exec(ctx, query, refund.RefundID, refund.OrderID, refund.ReturnID,
		refund.RefundAmount, refund.RefundDate, refund.Status, refund.Comment)
	if err != nil {
		zap.L().Error("can't save refund", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Refund, error) {
	query := `
        SELECT refund_id, order_id, return_id, refund_amount, refund_date, status, comment
        FROM refund
        ORDER BY refund_date DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get refunds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var refunds []domain.Refund
	for rows.Next() {
		var refund domain.Refund
		err := rows.Scan(&refund.RefundID, &refund.OrderID, &refund.ReturnID,
			&refund.RefundAmount, &refund.RefundDate, &refund.Status, &refund.Comment)
		if err != nil {
			zap.L().Error("can't scan refund row", zap.Error(err))
			return nil, err
		}
		refunds = append(refunds, refund)
	}
	return refunds, nil
}
