// Package store implements the storefront core: the seat ledger, the mock
// payment validator and the facade that orchestrates seat and combo
// purchases.  Handlers distinguish business rejections from unexpected
// failures through the RejectionError type defined here.
package store

import "fmt"

// RejectionError marks a purchase attempt rejected by a business rule: a
// seat already taken, bad payment data, an unknown combo.  The Reason is
// written in the visitor's language and is safe to display verbatim;
// handlers translate it into an HTTP 400 instead of a server fault.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string { return e.Reason }

// reject builds a RejectionError from a format string.
func reject(format string, args ...any) error {
	return &RejectionError{Reason: fmt.Sprintf(format, args...)}
}
