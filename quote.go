package cryptofolio

import "context"

// Quote is a transient snapshot of one asset in a quote currency. It is
// fetched fresh on every read and never cached: the goals view and the
// portfolio view each re-fetch prices independently.
type Quote struct {
	// Price is the spot price in the requested currency.
	Price Quantity `json:"price"`
	// Change24h is the 24 hour change. Zero when the provider omits it.
	Change24h Percent `json:"change24h"`
	// MarketCap is the market capitalization. Zero when omitted.
	MarketCap Quantity `json:"marketCap"`
}

// Quoter provides live market quotes. The coingecko package implements it;
// tests inject fakes.
//
// Quote returns ErrQuoteUnavailable (possibly wrapped) when no quote can be
// obtained for the asset; it never panics or blocks past its provider's
// timeout.
type Quoter interface {
	Quote(ctx context.Context, assetID, currency string) (Quote, error)
}
