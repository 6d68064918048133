package ticket

import (
	"fmt"

	"github.com/juanpgarcia/cine-estructurales/internal/utils"
)

// Channel renders tickets for one output medium.  WebChannel and
// PrintChannel are the two supported media.
type Channel interface {
	// Emit renders the given ticket payload into a receipt string.
	Emit(d Data) (string, error)
}

// WebChannel renders HTML fragments that the storefront pages insert
// directly into the DOM.  Each ticket embeds its own QR code as a base64
// data URI, so no extra static asset is needed.
type WebChannel struct{}

const seatTicketHTML = `
<div class='ticket-web'>
    <h3>🎟️ Ticket Virtual</h3>
    <p>Asiento: %s</p>
    <p>Precio: $%s</p>
    <img src='%s' width='100'>
</div>
`

const comboTicketHTML = `
<div class='ticket-web'>
    <h3>🍔 Combo Comprado</h3>
    <p><strong>%s</strong></p>
    <p>Incluye: %s</p>
    <p>Precio: $%s</p>
    <img src='%s' width='100'>
</div>
`

// Emit renders the HTML ticket for the given payload.
func (WebChannel) Emit(d Data) (string, error) {
	switch t := d.(type) {
	case SeatData:
		qr, err := qrDataURI("asiento:" + t.Asiento)
		if err != nil {
			return "", fmt.Errorf("ticket qr: %w", err)
		}
		return fmt.Sprintf(seatTicketHTML, t.Asiento, utils.FormatPrice(t.Precio), qr), nil
	case ComboData:
		qr, err := qrDataURI("combo:" + t.Combo)
		if err != nil {
			return "", fmt.Errorf("ticket qr: %w", err)
		}
		return fmt.Sprintf(comboTicketHTML, t.Combo, t.Descripcion, utils.FormatPrice(t.Precio), qr), nil
	default:
		return "", fmt.Errorf("unsupported ticket payload %T", d)
	}
}

// PrintChannel renders single-line plain text receipts, used by the sales
// log consumer and suitable for a box office printer.
type PrintChannel struct{}

// Emit renders the plain text receipt for the given payload.
func (PrintChannel) Emit(d Data) (string, error) {
	switch t := d.(type) {
	case SeatData:
		return fmt.Sprintf("TICKET | Asiento: %s | Precio: $%s", t.Asiento, utils.FormatPrice(t.Precio)), nil
	case ComboData:
		return fmt.Sprintf("COMBO | %s | Incluye: %s | Total: $%s", t.Combo, t.Descripcion, utils.FormatPrice(t.Precio)), nil
	default:
		return "", fmt.Errorf("unsupported ticket payload %T", d)
	}
}
