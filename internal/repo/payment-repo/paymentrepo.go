package paymentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

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

func (r *Repository) FindByOrderAndType(ctx context.Context, orderID int64, paymentType string) (*domain.Payment, error) {
	query := `
        SELECT payment_id, order_id, vendor_id, payment_amount, payment_date, payment_method, payment_type, status, total_balance_vendor
        FROM payment
        WHERE order_id = $1 AND payment_type = $2
        ORDER BY payment_date ASC
        LIMIT 1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, orderID, paymentType))
}

// FindLatestByVendor returns the ledger row holding the vendor's current
// running balance, or nil when the vendor has no rows yet.
func (r *Repository) FindLatestByVendor(ctx context.Context, vendorID int64) (*domain.Payment, error) {
	query := `
        SELECT payment_id, order_id, vendor_id, payment_amount, payment_date, payment_method, payment_type, status, total_balance_vendor
        FROM payment
        WHERE vendor_id = $1
        ORDER BY payment_date DESC
        LIMIT 1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, vendorID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(&payment.PaymentID, &payment.OrderID, &payment.VendorID, &payment.PaymentAmount,
		&payment.PaymentDate, &payment.PaymentMethod, &payment.PaymentType, &payment.Status, &payment.TotalBalanceVendor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

// SumCreditsByVendor bootstraps a balance from credit rows only. Debits are
// deliberately left out of this path; the steady-state balance carries them.
func (r *Repository) SumCreditsByVendor(ctx context.Context, vendorID int64) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(payment_amount), 0)
        FROM payment
        WHERE vendor_id = $1 AND payment_type = 'credit'
    `
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, query, vendorID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum vendor credits", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payment (payment_id, order_id, vendor_id, payment_amount, payment_date, payment_method, payment_type, status, total_balance_vendor)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, payment.PaymentID, payment.OrderID, payment.VendorID, payment.PaymentAmount,
			payment.PaymentDate, payment.PaymentMethod, payment.PaymentType, payment.Status, payment.TotalBalanceVendor)
		if err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	query := `
        SELECT payment_id, order_id, vendor_id, payment_amount, payment_date, payment_method, payment_type, status, total_balance_vendor
        FROM payment
        ORDER BY payment_date DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.PaymentID, &payment.OrderID, &payment.VendorID, &payment.PaymentAmount,
			&payment.PaymentDate, &payment.PaymentMethod, &payment.PaymentType, &payment.Status, &payment.TotalBalanceVendor)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
