package coingecko

import (
	"context"
	"net/url"
)

// MaxSearchResults caps the results returned by Search.
const MaxSearchResults = 5

// SearchResult is one coin matching a search query. ID is the CoinGecko
// asset id used everywhere else in the API.
type SearchResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Search looks up coins by free text and returns at most MaxSearchResults
// of them, best match first. On any error the result list is empty.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	// https://api.coingecko.com/api/v3/search?query=bitco
	// { "coins": [ {"id": "bitcoin", "name": "Bitcoin", "symbol": "BTC", ...}, ... ] }
	params := url.Values{}
	params.Set("query", query)

	var payload struct {
		Coins []SearchResult `json:"coins"`
	}
	if err := c.jwget(ctx, "/search", params, &payload); err != nil {
		return nil, err
	}
	if len(payload.Coins) > MaxSearchResults {
		payload.Coins = payload.Coins[:MaxSearchResults]
	}
	return payload.Coins, nil
}
