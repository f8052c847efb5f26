package cryptofolio

import "errors"

// The error taxonomy of the tracker. Callers match with errors.Is; the
// wrapping message carries the asset or input concerned.
var (
	// ErrQuoteUnavailable is returned when a live quote cannot be obtained:
	// network failure, malformed response, or an asset unknown to the
	// provider.
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrNotFound is returned when an operation names an asset absent from
	// the ledger.
	ErrNotFound = errors.New("not in portfolio")

	// ErrInvalidInput is returned when a user-supplied number, date, or
	// currency does not parse or is out of range. Nothing is persisted.
	ErrInvalidInput = errors.New("invalid input")
)
