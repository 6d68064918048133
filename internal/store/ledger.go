package store

import (
	"fmt"
	"sort"
)

// SeatStatus tags the state of a seat in the ledger.  Only StatusOccupied
// exists today; a temporary hold state would be added here.
type SeatStatus string

// StatusOccupied marks a seat that has been sold.  There is no cancellation,
// so an occupied seat never becomes free again.
const StatusOccupied SeatStatus = "ocupado"

// SeatLedger records which seats of the single active showing are already
// sold.  A seat id absent from the map is free.  The ledger itself does no
// locking; it is owned by the Storefront facade, which serializes every
// access under its own mutex.
type SeatLedger struct {
	seats map[string]SeatStatus // seat id -> status
}

// NewSeatLedger returns an empty ledger.
func NewSeatLedger() *SeatLedger {
	return &SeatLedger{seats: make(map[string]SeatStatus)}
}

// IsAvailable reports whether every requested seat is still free.  It stops
// at the first conflict and names that seat in the returned reason.
func (l *SeatLedger) IsAvailable(asientos []string) (bool, string) {
	for _, a := range asientos {
		if _, taken := l.seats[a]; taken {
			return false, fmt.Sprintf("el asiento %s ya está ocupado", a)
		}
	}
	return true, ""
}

// MarkOccupied records a seat as sold.  Marking an already occupied seat is
// a no-op; the purchase flow checks availability before committing.
func (l *SeatLedger) MarkOccupied(asiento string) {
	l.seats[asiento] = StatusOccupied
}

// ListOccupied returns the occupied seat ids.  The ids are sorted so that
// responses stay stable, no meaning is attached to the order.
func (l *SeatLedger) ListOccupied() []string {
	out := make([]string, 0, len(l.seats))
	for a := range l.seats {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
