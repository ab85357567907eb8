package web

import (
	"net/http"

	"go.uber.org/zap"
)

// HandleDashboard aggregates counts for the landing page. A failing backend
// degrades to zero counts instead of breaking the page.
func (c *Controller) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := c.backend.GetProducts(ctx)
	if err != nil {
		c.logger.Warn("dashboard: loading products failed", zap.Error(err))
	}
	customers, err := c.backend.GetCustomers(ctx)
	if err != nil {
		c.logger.Warn("dashboard: loading customers failed", zap.Error(err))
	}
	orders, err := c.backend.GetOrders(ctx)
	if err != nil {
		c.logger.Warn("dashboard: loading orders failed", zap.Error(err))
	}

	featured := make([]productResponse, 0, 5)
	for _, p := range products {
		if len(featured) == 5 {
			break
		}
		featured = append(featured, toProductResponse(p))
	}

	c.writeJSON(w, http.StatusOK, dashboardResponse{
		CustomerCount:    len(customers),
		ProductCount:     len(products),
		OrderCount:       len(orders),
		FeaturedProducts: featured,
	})
}
