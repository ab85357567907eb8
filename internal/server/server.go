package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"abcretail/internal/web"
)

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func New(port int, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:        fmt.Sprintf(":%d", port),
			Handler:     handler,
			ReadTimeout: 30 * time.Second,
			// Writes can carry file uploads being relayed to the backend.
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

func NewRouter(ctrl *web.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", ctrl.HandleDashboard)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", ctrl.HandleListCustomers)
		r.Post("/", ctrl.HandleCreateCustomer)
		r.Get("/{id}", ctrl.HandleGetCustomer)
		r.Put("/{id}", ctrl.HandleUpdateCustomer)
		r.Delete("/{id}", ctrl.HandleDeleteCustomer)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", ctrl.HandleListProducts)
		r.Post("/", ctrl.HandleCreateProduct)
		r.Get("/{id}", ctrl.HandleGetProduct)
		r.Put("/{id}", ctrl.HandleUpdateProduct)
		r.Delete("/{id}", ctrl.HandleDeleteProduct)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ctrl.HandleListOrders)
		r.Post("/", ctrl.HandleCreateOrder)
		r.Get("/product-price", ctrl.HandleGetProductPrice)
		r.Get("/{id}", ctrl.HandleGetOrder)
		r.Post("/{id}/status", ctrl.HandleUpdateOrderStatus)
		r.Delete("/{id}", ctrl.HandleDeleteOrder)
	})

	r.Post("/uploads/proof-of-payment", ctrl.HandleUploadProofOfPayment)

	return r
}
