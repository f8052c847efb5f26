package coingecko

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cryptofolio"
	"github.com/shopspring/decimal"
)

// Quote fetches the spot price, 24h change and market cap of one asset in
// the given currency. It implements cryptofolio.Quoter.
//
// Any transport failure, malformed body, or the asset being absent from the
// response degrades to cryptofolio.ErrQuoteUnavailable. The optional fields
// default to zero when the provider omits them.
func (c *Client) Quote(ctx context.Context, assetID, currency string) (cryptofolio.Quote, error) {
	// https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd&include_24hr_change=true&include_market_cap=true
	// {
	//   "bitcoin": {
	//     "usd": 67234.12,
	//     "usd_market_cap": 1323456789012.3,
	//     "usd_24h_change": -1.234
	//   }
	// }
	params := url.Values{}
	params.Set("ids", assetID)
	params.Set("vs_currencies", currency)
	params.Set("include_24hr_change", "true")
	params.Set("include_market_cap", "true")

	// The response object is keyed by asset id and currency, so the payload
	// cannot be a static struct; fields are extracted by jsonpath instead.
	var jobj interface{}
	if err := c.jwget(ctx, "/simple/price", params, &jobj); err != nil {
		return cryptofolio.Quote{}, fmt.Errorf("%q: %w: %v", assetID, cryptofolio.ErrQuoteUnavailable, err)
	}

	price, err := jsonFloat(jobj, assetID, currency)
	if err != nil {
		// The id is unknown to the provider, or the body is not the
		// expected shape.
		return cryptofolio.Quote{}, fmt.Errorf("%q: %w: %v", assetID, cryptofolio.ErrQuoteUnavailable, err)
	}

	// optional fields, zero when absent
	change, _ := jsonFloat(jobj, assetID, currency+"_24h_change")
	marketCap, _ := jsonFloat(jobj, assetID, currency+"_market_cap")

	return cryptofolio.Quote{
		Price:     cryptofolio.Q(decimal.NewFromFloat(price)),
		Change24h: cryptofolio.Percent(change),
		MarketCap: cryptofolio.Q(decimal.NewFromFloat(marketCap)),
	}, nil
}

// jsonFloat extracts jobj[key][field] as a float64.
// Keys are quoted in the path because asset ids may contain hyphens
// ("matic-network").
func jsonFloat(jobj interface{}, key, field string) (float64, error) {
	path := fmt.Sprintf("$[%q][%q]", key, field)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a number: %v", path, jval)
	}
	return val, nil
}

var _ cryptofolio.Quoter = (*Client)(nil)
