// Package router defines how HTTP routes are registered for the storefront.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/juanpgarcia/cine-estructurales/internal/handler"
)

// RegisterRoutes maps the storefront endpoints onto the Echo instance.  The
// route shapes mirror the original storefront front end, so the existing
// pages keep working unchanged.  cacheMW is applied only to the immutable
// read endpoints; seat occupancy must always be fresh.
func RegisterRoutes(e *echo.Echo, h *handler.StoreHandler, cacheMW echo.MiddlewareFunc) {
	// Health probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Read side: the cartelera and the combo menu never change at runtime,
	// occupied seats do.
	e.GET("/cartelera", h.GetCartelera, cacheMW)
	e.GET("/menu", h.GetMenu, cacheMW)
	e.GET("/asientos-ocupados/:sala", h.GetOccupiedSeats)

	// Purchase side.
	e.POST("/procesar_compra", h.ProcessPurchase)
	e.POST("/comprar-combo", h.PurchaseCombo)
}
