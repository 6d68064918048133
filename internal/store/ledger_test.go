package store_test

import (
	"strings"
	"testing"

	"github.com/juanpgarcia/cine-estructurales/internal/store"
)

func TestSeatLedgerAvailability(t *testing.T) {
	l := store.NewSeatLedger()
	l.MarkOccupied("A2")

	ok, reason := l.IsAvailable([]string{"A1"})
	if !ok || reason != "" {
		t.Errorf("IsAvailable(free seat) = %v, %q; want true", ok, reason)
	}

	// The first conflict in input order wins.
	l.MarkOccupied("A3")
	ok, reason = l.IsAvailable([]string{"A1", "A3", "A2"})
	if ok {
		t.Fatal("IsAvailable() = true for a batch with occupied seats")
	}
	if !strings.Contains(reason, "A3") {
		t.Errorf("IsAvailable() reason = %q, want first occupied seat A3 named", reason)
	}
}

func TestSeatLedgerMarkOccupiedIdempotent(t *testing.T) {
	l := store.NewSeatLedger()
	l.MarkOccupied("B1")
	l.MarkOccupied("B1")

	got := l.ListOccupied()
	if len(got) != 1 || got[0] != "B1" {
		t.Errorf("ListOccupied() = %v, want [B1]", got)
	}
}

func TestSeatLedgerListOccupiedSorted(t *testing.T) {
	l := store.NewSeatLedger()
	for _, a := range []string{"C3", "A1", "B2"} {
		l.MarkOccupied(a)
	}
	got := l.ListOccupied()
	want := []string{"A1", "B2", "C3"}
	if len(got) != len(want) {
		t.Fatalf("ListOccupied() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListOccupied()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
