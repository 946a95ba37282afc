package service

import (
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/orders"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/payments"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/returns"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/shipping"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/vendors"

	pkgauth "github.com/sushmithabungatavula/ThrifstoreBackend/pkg/auth"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/idgen"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/pg"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/repo"
	orderservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/orderservice"
	paymentservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/paymentservice"
	returnservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/returnservice"
	shippingservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/shippingservice"
	vendorservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/vendorservice"
)

type Services struct {
	OrderService    orders.Service
	ReturnService   returns.Service
	PaymentService  payments.Service
	ShippingService shipping.Service
	VendorService   vendors.Service
}

func New(repo *repo.Repositories, idGen *idgen.Generator, txManager pg.TXManager) *Services {
	orderService := orderservice.New(repo.OrderRepo, idGen)
	paymentService := paymentservice.New(repo.PaymentRepo, idGen)
	returnService := returnservice.New(repo.OrderRepo, repo.ReturnRepo, repo.RefundRepo, paymentService, idGen, txManager)
	shippingService := shippingservice.New(repo.ShippingRepo, idGen)
	vendorService := vendorservice.New(repo.VendorRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		OrderService:    orderService,
		ReturnService:   returnService,
		PaymentService:  paymentService,
		ShippingService: shippingService,
		VendorService:   vendorService,
	}
}
