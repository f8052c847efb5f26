package cryptofolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/cryptofolio/date"
)

// This file defines the wire format of the ledger document:
//
//	{
//	  "bitcoin": {"amount": 0.5, "avg_price": 61250.0, "added": "2026-01-15"},
//	  ...
//	}
//
// Numbers are bare JSON numbers for human inspection, keys are emitted in
// lexical order so that successive saves diff cleanly.

// MarshalJSON implements json.Marshaler for Holding in the document format.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", jsonNumber(h.Amount.value))
	w.Append("avg_price", jsonNumber(h.AvgCost.value))
	w.Append("added", h.Added)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler for Holding.
func (h *Holding) UnmarshalJSON(data []byte) error {
	var payload struct {
		Amount   Quantity  `json:"amount"`
		AvgPrice Quantity  `json:"avg_price"`
		Added    date.Date `json:"added"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	h.Amount = payload.Amount
	h.AvgCost = payload.AvgPrice
	h.Added = payload.Added
	return nil
}

// MarshalJSON implements json.Marshaler for Ledger as the asset->holding
// object. encoding/json sorts map keys, which gives the stable order.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.holdings)
}

// UnmarshalJSON implements json.Unmarshaler for Ledger.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	holdings := make(map[string]Holding)
	if err := json.Unmarshal(data, &holdings); err != nil {
		return err
	}
	l.holdings = holdings
	return nil
}

// DecodeLedger reads a ledger document. It is strict: a malformed document is
// an error, and deciding to collapse that error to an empty ledger belongs to
// the Store boundary.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	l := NewLedger()
	if err := json.NewDecoder(r).Decode(l); err != nil {
		return nil, fmt.Errorf("could not decode ledger document: %w", err)
	}
	return l, nil
}

// EncodeLedger writes the ledger document, indented for human inspection.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("could not encode ledger document: %w", err)
	}
	return nil
}
