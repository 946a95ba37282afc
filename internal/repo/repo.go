package repo

import (
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/pg"
	orderrepo "github.com/sushmithabungatavula/ThrifstoreBackend/internal/repo/order-repo"
	paymentrepo "github.com/sushmithabungatavula/ThrifstoreBackend/internal/repo/payment-repo"
	refundrepo "github.com/sushmithabungatavula/ThrifstoreBackend/internal/repo/refund-repo"
	returnrepo "github.com/sushmithabungatavula/ThrifstoreBackend/internal/repo/return-repo"
	shippingrepo "github.com/sushmithabungatavula/ThrifstoreBackend/internal/repo/shipping-repo"
	vendorrepo "github.com/sushmithabungatavula/ThrifstoreBackend/internal/repo/vendor-repo"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/orderservice"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/paymentservice"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/returnservice"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/shippingservice"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/vendorservice"
)

type Repositories struct {
	OrderRepo    orderservice.Repo
	ReturnRepo   returnservice.ReturnRepo
	RefundRepo   returnservice.RefundRepo
	PaymentRepo  paymentservice.Repo
	ShippingRepo shippingservice.Repo
	VendorRepo   vendorservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	orderRepo := orderrepo.New(conn, txManager)
	returnRepo := returnrepo.New(conn)
	refundRepo := refundrepo.New(conn)
	paymentRepo := paymentrepo.New(conn, txManager)
	shippingRepo := shippingrepo.New(conn)
	vendorRepo := vendorrepo.New(conn)

	return &Repositories{
		OrderRepo:    orderRepo,
		ReturnRepo:   returnRepo,
		RefundRepo:   refundRepo,
		PaymentRepo:  paymentRepo,
		ShippingRepo: shippingRepo,
		VendorRepo:   vendorRepo,
	}
}
