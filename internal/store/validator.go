package store

import (
	"strings"

	"github.com/juanpgarcia/cine-estructurales/internal/model"
)

// Accepted test card.  These literals are a fixed contract shared with the
// front end, not configuration.
const (
	acceptedCardNumber = "4242424242424242"
	acceptedCardExpiry = "12/25"
	acceptedCardCvv    = "123"
)

// PaymentValidator checks submitted card data against the accepted test
// card.  It is a deliberate stub boundary: a real payment gateway client
// would be substituted here without touching the purchase flow.
type PaymentValidator struct{}

// Validate returns nil when the payment data matches the accepted card and
// a RejectionError naming the first mismatched field otherwise.  Fields are
// checked in order: number, expiry, CVV; only the first failure is reported.
func (PaymentValidator) Validate(p model.PaymentData) error {
	if p.IsEmpty() {
		return reject("datos de pago faltantes")
	}
	if strings.TrimSpace(p.CardNumber) != acceptedCardNumber {
		return reject("número de tarjeta inválido")
	}
	if strings.TrimSpace(p.CardExpiry) != acceptedCardExpiry {
		return reject("fecha de expiración inválida")
	}
	if strings.TrimSpace(p.CardCvv) != acceptedCardCvv {
		return reject("código de seguridad inválido")
	}
	return nil
}
