package vendorrepo

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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := repo.db.QueryRow(ctx, "SELECT vendor_id, name, email, phone, password_hash FROM vendor WHERE email = $1", email).
		Scan(&vendor.VendorID, &vendor.Name, &vendor.Email, &vendor.Phone, &vendor.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find vendor", zap.Error(err))
		return nil, err
	}
	return &vendor, nil
}

func (repo *Repository) Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	query := `
		INSERT INTO vendor (name, email, phone, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING vendor_id
	`
	err := repo.db.QueryRow(ctx, query, vendor.Name, vendor.Email, vendor.Phone, vendor.PasswordHash).Scan(&vendor.VendorID)
	if err != nil {
		zap.L().Error("can't save vendor", zap.Error(err))
		return nil, err
	}
	return vendor, nil
}
