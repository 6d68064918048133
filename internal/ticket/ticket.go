// Package ticket implements the sale side of the storefront.  What is being
// sold (a seat or a combo) and the channel it is rendered through (web HTML
// or a printed receipt) vary independently, so new sale kinds and new output
// channels can be added without touching each other.
package ticket

// Data is the closed set of ticket payloads a channel can render.  The
// variant is chosen at the call site; channels switch on the concrete type
// instead of sniffing fields at runtime.
type Data interface{ ticketData() }

// SeatData describes a single reserved seat.
type SeatData struct {
	Asiento string  // seat identifier, e.g. "Sala_IMAX-12"
	Precio  float64 // price charged for the seat
}

// ComboData describes a purchased food combo.
type ComboData struct {
	Combo       string  // combo display name
	Descripcion string  // recursive description of the bundle contents
	Precio      float64 // computed composite price
}

func (SeatData) ticketData()  {}
func (ComboData) ticketData() {}
