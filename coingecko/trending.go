package coingecko

import (
	"context"
	"net/url"
)

// MaxTrendingCoins caps the list returned by Trending.
const MaxTrendingCoins = 7

// TrendingCoin is one entry of the trending list. Rank is the market cap
// rank; zero means the provider left it unranked.
type TrendingCoin struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Rank   int    `json:"rank"`
}

// Trending returns the coins currently trending on CoinGecko, most popular
// first, at most MaxTrendingCoins of them. On any error the list is empty.
func (c *Client) Trending(ctx context.Context) ([]TrendingCoin, error) {
	// https://api.coingecko.com/api/v3/search/trending
	// { "coins": [ {"item": {"name": "...", "symbol": "...", "market_cap_rank": 12, ...}}, ... ] }
	var payload struct {
		Coins []struct {
			Item struct {
				Name          string `json:"name"`
				Symbol        string `json:"symbol"`
				MarketCapRank int    `json:"market_cap_rank"`
			} `json:"item"`
		} `json:"coins"`
	}
	if err := c.jwget(ctx, "/search/trending", url.Values{}, &payload); err != nil {
		return nil, err
	}

	coins := make([]TrendingCoin, 0, MaxTrendingCoins)
	for _, c := range payload.Coins {
		if len(coins) == MaxTrendingCoins {
			break
		}
		coins = append(coins, TrendingCoin{
			Name:   c.Item.Name,
			Symbol: c.Item.Symbol,
			Rank:   c.Item.MarketCapRank,
		})
	}
	return coins, nil
}
