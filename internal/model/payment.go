package model

import "strings"

// PaymentData carries the card fields submitted with a purchase.  The JSON
// field names match what the storefront front end sends.  Values are opaque
// strings compared against a fixed accepted test card; no real gateway is
// involved at this layer.
type PaymentData struct {
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCvv    string `json:"cardCvv"`
}

// IsEmpty reports whether no card data was submitted at all, ignoring
// surrounding whitespace.
func (p PaymentData) IsEmpty() bool {
	return strings.TrimSpace(p.CardNumber) == "" &&
		strings.TrimSpace(p.CardExpiry) == "" &&
		strings.TrimSpace(p.CardCvv) == ""
}
