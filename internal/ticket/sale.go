package ticket

import "github.com/juanpgarcia/cine-estructurales/internal/model"

// Sale computes the base price for one kind of sale and realizes it through
// the channel it was constructed with.  RegularSale and ComboSale are the
// kinds currently offered; preferential seating or promotions would be added
// as further implementations.
type Sale interface {
	// BasePrice returns the price this sale charges before realization.
	BasePrice() float64
	// Realize emits the receipt for the given subject (the seat id for seat
	// sales; combo sales carry their subject internally and ignore it).
	Realize(subject string) (string, error)
}

// RegularSale sells a standard seat at a fixed price.
type RegularSale struct {
	channel Channel
	price   float64
}

// NewRegularSale builds a seat sale emitting through the given channel.
func NewRegularSale(channel Channel, price float64) *RegularSale {
	return &RegularSale{channel: channel, price: price}
}

func (s *RegularSale) BasePrice() float64 { return s.price }

// Realize emits a seat ticket for the given seat at the sale's base price.
func (s *RegularSale) Realize(subject string) (string, error) {
	return s.channel.Emit(SeatData{Asiento: subject, Precio: s.BasePrice()})
}

// ComboSale sells a combo from the menu.  The price comes from the combo's
// own composite computation rather than a fixed base.
type ComboSale struct {
	channel Channel
	combo   model.MenuItem
}

// NewComboSale builds a combo sale emitting through the given channel.
func NewComboSale(channel Channel, combo model.MenuItem) *ComboSale {
	return &ComboSale{channel: channel, combo: combo}
}

func (s *ComboSale) BasePrice() float64 { return s.combo.Price() }

// Realize emits the combo ticket.  The subject argument is ignored; the
// combo itself is the subject.
func (s *ComboSale) Realize(string) (string, error) {
	return s.channel.Emit(ComboData{
		Combo:       s.combo.Name(),
		Descripcion: s.combo.Description(),
		Precio:      s.combo.Price(),
	})
}
