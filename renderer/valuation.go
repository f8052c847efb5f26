package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// ValuationMarkdown renders the portfolio valuation report.
func ValuationMarkdown(r *cryptofolio.ValuationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio (%s)", cryptofolio.CurrencyName(r.Currency)))

	if len(r.Lines) == 0 && !r.Partial {
		doc.PlainText("No holdings yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Holdings", "Price", "Value", "P/L", "24h"},
		Rows:   [][]string{},
	}
	for _, line := range r.Lines {
		table.Rows = append(table.Rows, []string{
			strings.ToUpper(line.AssetID),
			line.Amount.String(),
			line.Price.String(),
			line.Value.String(),
			fmt.Sprintf("%s (%s)", line.Profit.SignedString(), line.ProfitPct.SignedString()),
			line.Change24h.SignedString(),
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Value"), md.Bold(r.TotalValue.String())},
		Rows: [][]string{
			{"Total Invested", r.TotalInvested.String()},
			{"Total P/L", fmt.Sprintf("%s (%s)", r.TotalProfit.SignedString(), r.TotalProfitPct.SignedString())},
		},
	})

	if r.Partial {
		doc.PlainText(fmt.Sprintf("⚠ Partial data: no quote for %s; totals exclude them.",
			strings.Join(r.Skipped, ", ")))
	}

	return doc.String()
}
