package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/coingecko"
	md "github.com/nao1215/markdown"
)

// QuoteMarkdown renders a quick price check for one asset.
func QuoteMarkdown(assetID string, q cryptofolio.Quote, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(strings.ToUpper(assetID))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Price"), md.Bold(q.Price.In(currency).String())},
		Rows: [][]string{
			{"24h Change", q.Change24h.SignedString()},
		},
	}
	if q.MarketCap.IsPositive() {
		table.Rows = append(table.Rows, []string{"Market Cap", q.MarketCap.In(currency).String()})
	}
	doc.Table(table)

	return doc.String()
}

// TrendingMarkdown renders the trending coin list.
func TrendingMarkdown(coins []coingecko.TrendingCoin) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trending")

	if len(coins) == 0 {
		doc.PlainText("Could not fetch trending data.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"#", "Name", "Symbol", "Rank"},
		Rows:      [][]string{},
	}
	for i, coin := range coins {
		rank := "unranked"
		if coin.Rank > 0 {
			rank = fmt.Sprintf("#%d", coin.Rank)
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			coin.Name,
			strings.ToUpper(coin.Symbol),
			rank,
		})
	}
	doc.Table(table)

	return doc.String()
}

// SearchMarkdown renders search results with a ready-to-use add command for
// each, the way a user would paste it back.
func SearchMarkdown(query string, results []coingecko.SearchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Search %q", query))

	if len(results) == 0 {
		doc.PlainText("No results found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Name", "Symbol", "Add with"},
		Rows:      [][]string{},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{
			r.Name,
			strings.ToUpper(r.Symbol),
			fmt.Sprintf("`cft add %s <amount>`", r.ID),
		})
	}
	doc.Table(table)

	return doc.String()
}
