package returnrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var returnColumns = []string{"return_id", "order_id", "return_reason", "status", "comment", "request_date"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	request := &domain.ReturnRequest{
		ReturnID:     501,
		OrderID:      100,
		ReturnReason: "wrong size",
		RequestDate:  now,
	}

	t.Run("Successful insert", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO returnrequest")).
			WithArgs(request.ReturnID, request.OrderID, request.ReturnReason, request.Status, request.Comment, request.RequestDate).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(context.Background(), request)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO returnrequest")).
			WithArgs(request.ReturnID, request.OrderID, request.ReturnReason, request.Status, request.Comment, request.RequestDate).
			WillReturnError(errors.New("database error"))

		err := repo.Create(context.Background(), request)
		assert.Error(t, err)
	})
}

func TestRepository_FindByIDAndOrder(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.ReturnRequest
	}{
		{
			name: "Request exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(returnColumns).
					AddRow(int64(501), int64(100), "wrong size", "approved", "ok", now)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE return_id = $1 AND order_id = $2")).
					WithArgs(int64(501), int64(100)).
					WillReturnRows(rows)
			},
			result: &domain.ReturnRequest{
				ReturnID:     501,
				OrderID:      100,
				ReturnReason: "wrong size",
				Status:       "approved",
				Comment:      "ok",
				RequestDate:  now,
			},
		},
		{
			name: "Request does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE return_id = $1 AND order_id = $2")).
					WithArgs(int64(501), int64(100)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE return_id = $1 AND order_id = $2")).
					WithArgs(int64(501), int64(100)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByIDAndOrder(context.Background(), 501, 100)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("With comment", func(t *testing.T) {
		comment := "verified"
		mock.ExpectExec(regexp.QuoteMeta("SET status = $1, comment = $2")).
			WithArgs("approved", "verified", int64(501)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(context.Background(), 501, "approved", &comment)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Without comment", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET status = $1")).
			WithArgs("rejected", int64(501)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(context.Background(), 501, "rejected", nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateReason(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET return_reason = $1")).
		WithArgs("arrived damaged", int64(501)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateReason(context.Background(), 501, "arrived damaged")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindDetail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	detailColumns := []string{
		"return_id", "order_id", "return_reason", "status", "request_date",
		"customer_id", "order_date", "order_status", "payment_status", "item_id", "item_quantity", "item_price",
		"refund_amount", "refund_date", "refund_status", "refund_comment",
	}

	t.Run("Detail without refund row", func(t *testing.T) {
		rows := pgxmock.NewRows(detailColumns).
			AddRow(int64(501), int64(100), "wrong size", "", now,
				int64(17), now, "approve_cancel", "paid", int64(42), 2, decimal.NewFromInt(500),
				(*decimal.Decimal)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil))
		mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN refund rf ON rr.order_id = rf.order_id AND rr.return_id = rf.return_id")).
			WithArgs(int64(501)).
			WillReturnRows(rows)

		detail, err := repo.FindDetail(context.Background(), 501)
		assert.NoError(t, err)
		assert.NotNil(t, detail)
		assert.Nil(t, detail.RefundAmount)
		assert.Equal(t, int64(100), detail.OrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Detail not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN refund rf ON rr.order_id = rf.order_id AND rr.return_id = rf.return_id")).
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		detail, err := repo.FindDetail(context.Background(), 999)
		assert.NoError(t, err)
		assert.Nil(t, detail)
	})
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	adminColumns := []string{
		"return_id", "order_id", "return_reason", "status", "request_date",
		"customer_id", "order_date", "item_id", "item_quantity", "item_price",
		"name", "email",
	}

	t.Run("Without status filter", func(t *testing.T) {
		rows := pgxmock.NewRows(adminColumns).
			AddRow(int64(501), int64(100), "wrong size", "approved", now,
				int64(17), now, int64(42), 2, decimal.NewFromInt(500), "Avery", "avery@mail.test")
		mock.ExpectQuery(regexp.QuoteMeta("JOIN customer c ON o.customer_id = c.customer_id")).
			WillReturnRows(rows)

		returns, err := repo.FindAll(context.Background(), "")
		assert.NoError(t, err)
		assert.Len(t, returns, 1)
		assert.Equal(t, "Avery", returns[0].CustomerName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("With status filter", func(t *testing.T) {
		rows := pgxmock.NewRows(adminColumns)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE rr.status = $1")).
			WithArgs("pending").
			WillReturnRows(rows)

		returns, err := repo.FindAll(context.Background(), "pending")
		assert.NoError(t, err)
		assert.Empty(t, returns)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
