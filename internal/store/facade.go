package store

import (
	"errors"
	"log"
	"sync"

	"github.com/juanpgarcia/cine-estructurales/internal/model"
	"github.com/juanpgarcia/cine-estructurales/internal/ticket"
)

// ErrTicketEmission is returned when a ticket fails to render.  The exact
// cause is logged server side; callers only see a generic failure so no
// internal detail leaks to the visitor.
var ErrTicketEmission = errors.New("error al generar los tickets")

// Storefront is the facade the web layer calls into.  It owns the seat
// ledger and the combo menu for the lifetime of the process and serializes
// purchase attempts under a single mutex, so two visitors racing for the
// same seat cannot both pass the availability check.
type Storefront struct {
	mu        sync.Mutex
	showing   model.Showing
	ledger    *SeatLedger
	validator PaymentValidator
	menu      []model.MenuItem
	channel   ticket.Channel
	seatPrice float64
}

// New builds a Storefront with an empty ledger.  The channel decides how
// tickets are rendered; the web server passes ticket.WebChannel.
func New(showing model.Showing, menu []model.MenuItem, channel ticket.Channel, seatPrice float64) *Storefront {
	if channel == nil {
		panic("nil channel passed to store.New")
	}
	return &Storefront{
		showing:   showing,
		ledger:    NewSeatLedger(),
		menu:      menu,
		channel:   channel,
		seatPrice: seatPrice,
	}
}

// Showing returns the single scheduled screening.
func (s *Storefront) Showing() model.Showing {
	return s.showing
}

// ComboEntry is one row of the combo menu as exposed to the web layer.
type ComboEntry struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
}

// ComboMenu lists the combos on sale.  Rows are rebuilt from the composite
// tree on every call, so repeated calls without intervening mutation return
// identical results.
func (s *Storefront) ComboMenu() []ComboEntry {
	out := make([]ComboEntry, 0, len(s.menu))
	for _, item := range s.menu {
		out = append(out, ComboEntry{
			Nombre:      item.Name(),
			Descripcion: item.Description(),
			Precio:      item.Price(),
		})
	}
	return out
}

// IsAvailable reports whether every requested seat is still free, with a
// displayable reason naming the first occupied seat when not.
func (s *Storefront) IsAvailable(asientos []string) (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.IsAvailable(asientos)
}

// OccupiedSeats returns the ids of all seats sold so far.
func (s *Storefront) OccupiedSeats() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.ListOccupied()
}

// SeatPrice returns the fixed price of a regular seat.
func (s *Storefront) SeatPrice() float64 {
	return s.seatPrice
}

// ProcessPurchase runs the full purchase flow for a batch of seats:
// availability check, one payment validation for the whole batch, ticket
// emission per seat in input order, then the ledger update.  The returned
// tickets are rendered receipts, one per seat.
//
// The flow is atomic: tickets for the whole batch are rendered before any
// seat is marked occupied, and everything runs inside one critical section.
// A failure therefore leaves the ledger exactly as it was.
func (s *Storefront) ProcessPurchase(asientos []string, pago model.PaymentData) ([]string, error) {
	if len(asientos) == 0 {
		return nil, reject("no se seleccionaron asientos")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if ok, reason := s.ledger.IsAvailable(asientos); !ok {
		return nil, &RejectionError{Reason: reason}
	}
	if err := s.validator.Validate(pago); err != nil {
		return nil, err
	}

	sale := ticket.NewRegularSale(s.channel, s.seatPrice)
	tickets := make([]string, 0, len(asientos))
	for _, a := range asientos {
		t, err := sale.Realize(a)
		if err != nil {
			log.Printf("store: ticket emission failed for seat %s: %v", a, err)
			return nil, ErrTicketEmission
		}
		tickets = append(tickets, t)
	}
	for _, a := range asientos {
		s.ledger.MarkOccupied(a)
	}
	return tickets, nil
}

// PurchaseCombo validates payment first, then looks the combo up by exact
// name in the fixed menu and emits its ticket through the sale bridge.
// Combos are not seat-limited, so the ledger is not involved.
func (s *Storefront) PurchaseCombo(nombre string, pago model.PaymentData) (string, error) {
	if err := s.validator.Validate(pago); err != nil {
		return "", err
	}
	for _, item := range s.menu {
		if item.Name() != nombre {
			continue
		}
		t, err := ticket.NewComboSale(s.channel, item).Realize(nombre)
		if err != nil {
			log.Printf("store: combo ticket emission failed for %q: %v", nombre, err)
			return "", ErrTicketEmission
		}
		return t, nil
	}
	return "", reject("combo '%s' no disponible", nombre)
}
