package cryptofolio

import (
	"fmt"
	"sort"

	"github.com/etnz/cryptofolio/date"
)

// Holding is one ledger entry: the position held on a single asset.
type Holding struct {
	// Amount is the quantity of the asset held. Always positive: an entry
	// whose amount reaches zero is removed from the ledger entirely.
	Amount Quantity
	// AvgCost is the volume-weighted average purchase price, in whatever
	// currency was active at purchase time.
	AvgCost Quantity
	// Added is the date of the first acquisition.
	Added date.Date
}

// Invested returns the capital invested in this holding (avg cost times amount).
func (h Holding) Invested() Quantity { return h.AvgCost.Mul(h.Amount) }

// Ledger maps asset ids (CoinGecko ids like "bitcoin") to holdings.
// It is a plain in-memory value: persistence is the Store's concern, and the
// single interactive session is the only mutator.
type Ledger struct {
	holdings map[string]Holding
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{holdings: make(map[string]Holding)}
}

// Len returns the number of assets tracked.
func (l *Ledger) Len() int { return len(l.holdings) }

// Get returns the holding for an asset id.
func (l *Ledger) Get(assetID string) (Holding, bool) {
	h, ok := l.holdings[assetID]
	return h, ok
}

// AssetIDs returns the tracked asset ids in lexical order, for deterministic
// reports.
func (l *Ledger) AssetIDs() []string {
	ids := make([]string, 0, len(l.holdings))
	for id := range l.holdings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Add records a purchase of amount units of assetID at the given unit price.
//
// On an existing entry the average cost becomes the volume-weighted average
// of the old and new purchases and the amount accumulates; Add is therefore
// additive, never a set operation. A new entry records 'on' as its
// acquisition date.
func (l *Ledger) Add(assetID string, amount, price Quantity, on date.Date) error {
	if assetID == "" {
		return fmt.Errorf("empty asset id: %w", ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s must be positive: %w", amount, ErrInvalidInput)
	}
	if price.IsNegative() {
		return fmt.Errorf("price %s must not be negative: %w", price, ErrInvalidInput)
	}

	h, exists := l.holdings[assetID]
	if exists {
		newAmount := h.Amount.Add(amount)
		// new_avg = (old_avg*old_amount + price*amount) / (old_amount+amount)
		h.AvgCost = h.AvgCost.Mul(h.Amount).Add(price.Mul(amount)).Div(newAmount)
		h.Amount = newAmount
	} else {
		h = Holding{Amount: amount, AvgCost: price, Added: on}
	}
	l.holdings[assetID] = h
	return nil
}

// Remove sells amount units of assetID. A zero amount, or any amount greater
// than or equal to the position, removes the entry entirely; gone reports
// that case. The held amount never goes negative.
func (l *Ledger) Remove(assetID string, amount Quantity) (gone bool, err error) {
	h, exists := l.holdings[assetID]
	if !exists {
		return false, fmt.Errorf("%q: %w", assetID, ErrNotFound)
	}
	if amount.IsNegative() {
		return false, fmt.Errorf("amount %s must not be negative: %w", amount, ErrInvalidInput)
	}
	if amount.IsZero() || !amount.LessThan(h.Amount) {
		delete(l.holdings, assetID)
		return true, nil
	}
	h.Amount = h.Amount.Sub(amount)
	l.holdings[assetID] = h
	return false, nil
}
