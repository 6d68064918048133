package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/juanpgarcia/cine-estructurales/internal/model"
	"github.com/juanpgarcia/cine-estructurales/internal/queue"
	"github.com/juanpgarcia/cine-estructurales/internal/store"
)

// PublishFunc publishes a sale event to the broker.  It is injected so
// tests can run the handlers without RabbitMQ.
type PublishFunc func(ctx context.Context, ev queue.SaleCompletedEvent) error

// StoreHandler exposes the storefront facade over HTTP.  Every business
// rejection surfaces as a 400 with a displayable Spanish reason; anything
// unexpected becomes a generic 500 body so no internal detail leaks.
type StoreHandler struct {
	Store   *store.Storefront
	publish PublishFunc
}

// NewStoreHandler builds a StoreHandler.  publish may be nil, in which case
// sale events are simply not emitted.
func NewStoreHandler(s *store.Storefront, publish PublishFunc) *StoreHandler {
	if s == nil {
		panic("nil storefront passed to NewStoreHandler")
	}
	return &StoreHandler{Store: s, publish: publish}
}

// GetCartelera handles GET /cartelera.  It returns the single showing on
// sale: movie title, start time and room.
func (h *StoreHandler) GetCartelera(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Showing())
}

// GetMenu handles GET /menu.  It returns the combo menu with the composite
// descriptions and computed prices.
func (h *StoreHandler) GetMenu(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Store.ComboMenu()})
}

// GetOccupiedSeats handles GET /asientos-ocupados/:sala.  The :sala path
// segment is kept for front-end compatibility; only one showing exists, so
// it is not consulted.  The response is a plain JSON array of seat ids.
func (h *StoreHandler) GetOccupiedSeats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.OccupiedSeats())
}

// ProcessPurchase handles POST /procesar_compra.  The body carries the
// selected seats and the card data:
//
//	{"asientos": ["Sala_IMAX-1"], "payment_data": {"cardNumber": ...}}
//
// On success it returns the rendered HTML tickets, one per seat.
func (h *StoreHandler) ProcessPurchase(c echo.Context) error {
	var body struct {
		Asientos    []string          `json:"asientos"`
		PaymentData model.PaymentData `json:"payment_data"`
		Sala        string            `json:"sala"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Datos inválidos"})
	}
	if len(body.Asientos) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "No se seleccionaron asientos"})
	}

	tickets, err := h.Store.ProcessPurchase(body.Asientos, body.PaymentData)
	if err != nil {
		return purchaseError(c, err, "Error en el procesamiento de la compra")
	}

	h.publishSale(c.Request().Context(), queue.SaleCompletedEvent{
		Tipo:          queue.TipoEntrada,
		Pelicula:      h.Store.Showing().Pelicula,
		Sala:          h.Store.Showing().Sala,
		Hora:          h.Store.Showing().Hora,
		Asientos:      body.Asientos,
		PrecioAsiento: h.Store.SeatPrice(),
		Total:         h.Store.SeatPrice() * float64(len(body.Asientos)),
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "tickets": tickets})
}

// PurchaseCombo handles POST /comprar-combo with a body of
// {"combo": "<nombre>", "payment_data": {...}}.  On success it returns the
// rendered HTML ticket for the combo.
func (h *StoreHandler) PurchaseCombo(c echo.Context) error {
	var body struct {
		Combo       string            `json:"combo"`
		PaymentData model.PaymentData `json:"payment_data"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Datos inválidos"})
	}
	if body.Combo == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Datos incompletos"})
	}

	tkt, err := h.Store.PurchaseCombo(body.Combo, body.PaymentData)
	if err != nil {
		return purchaseError(c, err, "Error procesando la compra")
	}

	for _, entry := range h.Store.ComboMenu() {
		if entry.Nombre != body.Combo {
			continue
		}
		h.publishSale(c.Request().Context(), queue.SaleCompletedEvent{
			Tipo:        queue.TipoCombo,
			Combo:       entry.Nombre,
			Descripcion: entry.Descripcion,
			Total:       entry.Precio,
		})
		break
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "ticket": tkt})
}

// publishSale stamps and publishes a sale event, best effort.  Broker
// failures are already logged by the publisher and never fail the request.
func (h *StoreHandler) publishSale(ctx context.Context, ev queue.SaleCompletedEvent) {
	if h.publish == nil {
		return
	}
	ev.VendidoEn = time.Now().UTC().Format(time.RFC3339)
	_ = h.publish(ctx, ev)
}

// purchaseError translates facade errors into HTTP responses: business
// rejections keep their reason with a 400, anything else gets the generic
// fallback with a 500.
func purchaseError(c echo.Context, err error, fallback string) error {
	var rej *store.RejectionError
	if errors.As(err, &rej) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": rej.Reason})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": fallback})
}
