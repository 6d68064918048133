package store_test

import (
	"errors"
	"testing"

	"github.com/juanpgarcia/cine-estructurales/internal/model"
	"github.com/juanpgarcia/cine-estructurales/internal/store"
)

func validPayment() model.PaymentData {
	return model.PaymentData{
		CardNumber: "4242424242424242",
		CardExpiry: "12/25",
		CardCvv:    "123",
	}
}

// paymentPatch aliases PaymentData for the validPaymentWith helper.
type paymentPatch = model.PaymentData

// validPaymentWith returns the accepted test card with one mutation applied.
func validPaymentWith(mod func(*paymentPatch)) model.PaymentData {
	p := validPayment()
	mod(&p)
	return p
}

func TestPaymentValidator(t *testing.T) {
	tests := []struct {
		name       string
		payment    model.PaymentData
		wantReason string // empty means the payment must be accepted
	}{
		{
			name:    "accepted test card",
			payment: validPayment(),
		},
		{
			name: "surrounding whitespace is trimmed",
			payment: model.PaymentData{
				CardNumber: "  4242424242424242 ",
				CardExpiry: " 12/25",
				CardCvv:    "123 ",
			},
		},
		{
			name:       "empty payment data",
			payment:    model.PaymentData{},
			wantReason: "datos de pago faltantes",
		},
		{
			name:       "whitespace only counts as missing",
			payment:    model.PaymentData{CardNumber: "   ", CardExpiry: " ", CardCvv: ""},
			wantReason: "datos de pago faltantes",
		},
		{
			name: "wrong card number",
			payment: model.PaymentData{
				CardNumber: "4111111111111111",
				CardExpiry: "12/25",
				CardCvv:    "123",
			},
			wantReason: "número de tarjeta inválido",
		},
		{
			name: "wrong expiry",
			payment: model.PaymentData{
				CardNumber: "4242424242424242",
				CardExpiry: "01/30",
				CardCvv:    "123",
			},
			wantReason: "fecha de expiración inválida",
		},
		{
			name: "wrong cvv",
			payment: model.PaymentData{
				CardNumber: "4242424242424242",
				CardExpiry: "12/25",
				CardCvv:    "999",
			},
			wantReason: "código de seguridad inválido",
		},
		{
			name: "all fields wrong reports the number first",
			payment: model.PaymentData{
				CardNumber: "1234",
				CardExpiry: "01/01",
				CardCvv:    "000",
			},
			wantReason: "número de tarjeta inválido",
		},
		{
			name: "wrong expiry and cvv reports the expiry first",
			payment: model.PaymentData{
				CardNumber: "4242424242424242",
				CardExpiry: "01/01",
				CardCvv:    "000",
			},
			wantReason: "fecha de expiración inválida",
		},
	}

	var v store.PaymentValidator
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.payment)
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want accepted", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() accepted, want rejection %q", tt.wantReason)
			}
			var rej *store.RejectionError
			if !errors.As(err, &rej) {
				t.Fatalf("Validate() error type = %T, want *RejectionError", err)
			}
			if rej.Reason != tt.wantReason {
				t.Errorf("Validate() reason = %q, want %q", rej.Reason, tt.wantReason)
			}
		})
	}
}
