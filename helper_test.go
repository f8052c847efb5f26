package cryptofolio

import (
	"context"
	"fmt"
)

// USD is a helper for tests to create usd money from const.
func USD(v float64) Money { return M(v, "usd") }

// fakeQuoter serves canned quotes; assets not in the map are unavailable.
type fakeQuoter struct {
	quotes map[string]Quote
	calls  int
}

func (f *fakeQuoter) Quote(_ context.Context, assetID, _ string) (Quote, error) {
	f.calls++
	q, ok := f.quotes[assetID]
	if !ok {
		return Quote{}, fmt.Errorf("%q: %w", assetID, ErrQuoteUnavailable)
	}
	return q, nil
}
