package cryptofolio

import (
	"errors"
	"testing"

	"github.com/etnz/cryptofolio/date"
)

func TestAddAccumulatesWeightedAverage(t *testing.T) {
	l := NewLedger()
	on := date.New(2026, 1, 10)

	if err := l.Add("bitcoin", Q(2.0), Q(100.0), on); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := l.Add("bitcoin", Q(6.0), Q(200.0), on.Add(30)); err != nil {
		t.Fatalf("second Add: %v", err)
	}

	h, ok := l.Get("bitcoin")
	if !ok {
		t.Fatal("bitcoin should be in the ledger")
	}
	if !h.Amount.Equal(Q(8.0)) {
		t.Errorf("amount = %s, want 8", h.Amount)
	}
	// (100*2 + 200*6) / 8 = 175
	if !h.AvgCost.Equal(Q(175.0)) {
		t.Errorf("avg cost = %s, want 175", h.AvgCost)
	}
	// the acquisition date is the date of the first purchase
	if h.Added != on {
		t.Errorf("added = %s, want %s", h.Added, on)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	l := NewLedger()
	on := date.Today()

	cases := []struct {
		name   string
		id     string
		amount Quantity
		price  Quantity
	}{
		{name: "zero amount", id: "bitcoin", amount: Q(0), price: Q(10.0)},
		{name: "negative amount", id: "bitcoin", amount: Q(-1.0), price: Q(10.0)},
		{name: "negative price", id: "bitcoin", amount: Q(1.0), price: Q(-10.0)},
		{name: "empty id", id: "", amount: Q(1.0), price: Q(10.0)},
	}
	for _, c := range cases {
		err := l.Add(c.id, c.amount, c.price, on)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: Add() error = %v, want ErrInvalidInput", c.name, err)
		}
	}
	if l.Len() != 0 {
		t.Errorf("ledger should still be empty, has %d entries", l.Len())
	}
}

func TestRemovePartial(t *testing.T) {
	l := NewLedger()
	if err := l.Add("ethereum", Q(5.0), Q(1000.0), date.Today()); err != nil {
		t.Fatal(err)
	}

	gone, err := l.Remove("ethereum", Q(2.0))
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if gone {
		t.Error("partial removal should not delete the entry")
	}
	h, ok := l.Get("ethereum")
	if !ok || !h.Amount.Equal(Q(3.0)) {
		t.Errorf("remaining amount = %s, want 3", h.Amount)
	}
	// the average cost of the remaining position is unchanged
	if !h.AvgCost.Equal(Q(1000.0)) {
		t.Errorf("avg cost = %s, want 1000", h.AvgCost)
	}
}

func TestRemoveAll(t *testing.T) {
	cases := []struct {
		name   string
		amount Quantity
	}{
		{name: "zero amount means all", amount: Q(0)},
		{name: "exact amount", amount: Q(5.0)},
		{name: "more than held", amount: Q(50.0)},
	}
	for _, c := range cases {
		l := NewLedger()
		if err := l.Add("ethereum", Q(5.0), Q(1000.0), date.Today()); err != nil {
			t.Fatal(err)
		}
		gone, err := l.Remove("ethereum", c.amount)
		if err != nil {
			t.Errorf("%s: Remove: %v", c.name, err)
			continue
		}
		if !gone {
			t.Errorf("%s: entry should be gone", c.name)
		}
		if _, ok := l.Get("ethereum"); ok {
			t.Errorf("%s: ethereum should be absent from the ledger", c.name)
		}
	}
}

func TestRemoveUnknownAsset(t *testing.T) {
	l := NewLedger()
	if err := l.Add("bitcoin", Q(1.0), Q(100.0), date.Today()); err != nil {
		t.Fatal(err)
	}

	_, err := l.Remove("dogecoin", Q(0))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove of unknown asset: error = %v, want ErrNotFound", err)
	}
	// the ledger is untouched
	if l.Len() != 1 {
		t.Errorf("ledger has %d entries, want 1", l.Len())
	}
}
