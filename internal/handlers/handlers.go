package handlers

import (
	"net/http"

	_ "github.com/sushmithabungatavula/ThrifstoreBackend/docs"
	ordershandlers "github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/orders"
	paymentshandlers "github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/payments"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/resource"
	returnshandlers "github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/returns"
	shippinghandlers "github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/shipping"
	vendorshandlers "github.com/sushmithabungatavula/ThrifstoreBackend/internal/handlers/vendors"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/pg"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/service"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type OrderHandler interface {
	AddOrder(w http.ResponseWriter, r *http.Request)
	UpdateOrder(w http.ResponseWriter, r *http.Request)
	GetOrdersByCustomer(w http.ResponseWriter, r *http.Request)
	GetOrdersByVendor(w http.ResponseWriter, r *http.Request)
}

type ReturnHandler interface {
	CancelOrder(w http.ResponseWriter, r *http.Request)
	ApproveReturn(w http.ResponseWriter, r *http.Request)
	UpdateReturnStatus(w http.ResponseWriter, r *http.Request)
	UpdateReturnReason(w http.ResponseWriter, r *http.Request)
	GetReturnsByCustomer(w http.ResponseWriter, r *http.Request)
	GetReturnDetail(w http.ResponseWriter, r *http.Request)
	GetAllReturns(w http.ResponseWriter, r *http.Request)
	GetRefunds(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	RecordPayment(w http.ResponseWriter, r *http.Request)
	GetPayments(w http.ResponseWriter, r *http.Request)
}

type ShippingHandler interface {
	CreateShipping(w http.ResponseWriter, r *http.Request)
}

type VendorHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler    OrderHandler
	ReturnHandler   ReturnHandler
	PaymentHandler  PaymentHandler
	ShippingHandler ShippingHandler
	VendorHandler   VendorHandler

	conn pg.Database
}

func New(s *service.Services, conn pg.Database) *Handlers {
	return &Handlers{
		OrderHandler:    ordershandlers.New(s.OrderService),
		ReturnHandler:   returnshandlers.New(s.ReturnService),
		PaymentHandler:  paymentshandlers.New(s.PaymentService),
		ShippingHandler: shippinghandlers.New(s.ShippingService),
		VendorHandler:   vendorshandlers.New(s.VendorService),
		conn:            conn,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/vendor/signup", h.VendorHandler.Signup)
		r.Post("/vendor/login", h.VendorHandler.Login)

		r.Route("/order", func(r chi.Router) {
			r.Post("/", h.OrderHandler.AddOrder)
			r.Put("/{order_id}", h.OrderHandler.UpdateOrder)
			r.Post("/{order_id}/payment", h.PaymentHandler.RecordPayment)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/cancel", h.ReturnHandler.CancelOrder)
			r.Post("/shipping", h.ShippingHandler.CreateShipping)
			r.Get("/vendor/{vendor_id}", h.OrderHandler.GetOrdersByVendor)
			r.Get("/{customer_id}", h.OrderHandler.GetOrdersByCustomer)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Put("/admin/approve", h.ReturnHandler.ApproveReturn)
			})
		})
		r.Route("/returns", func(r chi.Router) {
			r.Get("/", h.ReturnHandler.GetAllReturns)
			r.Get("/customer/{customer_id}", h.ReturnHandler.GetReturnsByCustomer)
			r.Get("/{return_id}", h.ReturnHandler.GetReturnDetail)
			r.Put("/{return_id}/status", h.ReturnHandler.UpdateReturnStatus)
			r.Put("/{return_id}/reason", h.ReturnHandler.UpdateReturnReason)
		})
		r.Get("/payments", h.PaymentHandler.GetPayments)
		r.Get("/refunds", h.ReturnHandler.GetRefunds)

		h.initResourceRoutes(r)
	})

	return r
}

// initResourceRoutes mounts plain CRUD for the catalog-style tables that
// carry no workflow logic.
func (h *Handlers) initResourceRoutes(r chi.Router) {
	mounts := []struct {
		path     string
		table    string
		idColumn string
		columns  []string
	}{
		{"/customer", "customer", "customer_id",
			[]string{"name", "email", "phone", "address"}},
		{"/item", "item", "item_id",
			[]string{"vendor_id", "name", "brand", "size", "color", "item_condition",
				"cost_price", "selling_price", "stock_quantity", "image_url", "description"}},
		{"/cart", "cart_items", "id",
			[]string{"cart_id", "item_id", "quantity"}},
		{"/wishlist", "wishlist_items", "id",
			[]string{"wishlist_id", "item_id"}},
	}
	for _, mount := range mounts {
		handler := resource.New(h.conn, mount.table, mount.idColumn, mount.columns)
		r.Route(mount.path, handler.InitRoutes)
	}
}
