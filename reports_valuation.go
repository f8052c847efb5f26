package cryptofolio

import (
	"context"
	"time"

	"github.com/etnz/cryptofolio/date"
	"golang.org/x/time/rate"
)

// QuoteThrottle paces successive quote requests. The provider enforces
// informal per-IP rate limits, so valuation fetches one quote at a time with
// a fixed delay in between instead of going parallel.
const QuoteThrottle = 300 * time.Millisecond

// ValuationLine is the report line for one holding, quoted live.
type ValuationLine struct {
	AssetID   string    `json:"assetId"`
	Amount    Quantity  `json:"amount"`
	Added     date.Date `json:"added"`
	AvgCost   Money     `json:"avgCost"`
	Price     Money     `json:"price"`
	Value     Money     `json:"value"`
	Invested  Money     `json:"invested"`
	Profit    Money     `json:"profit"`
	ProfitPct Percent   `json:"profitPct"`
	Change24h Percent   `json:"change24h"`
}

// ValuationReport values the whole ledger in one currency.
//
// Assets whose quote could not be fetched are excluded from Lines and from
// every total, and surfaced in Skipped with Partial set: totals understate
// the portfolio during a provider outage and the reader deserves to know.
type ValuationReport struct {
	Currency       string          `json:"currency"`
	Lines          []ValuationLine `json:"lines"`
	TotalValue     Money           `json:"totalValue"`
	TotalInvested  Money           `json:"totalInvested"`
	TotalProfit    Money           `json:"totalProfit"`
	TotalProfitPct Percent         `json:"totalProfitPct"`
	Partial        bool            `json:"partial,omitempty"`
	Skipped        []string        `json:"skipped,omitempty"`
}

// NewValuationReport fetches a fresh quote for every holding, pacing calls
// through throttle, and aggregates value, invested capital and profit.
//
// A nil throttle disables pacing (tests). The only error returned is a
// context cancellation while waiting on the throttle: quote failures degrade
// to skipped lines instead.
func NewValuationReport(ctx context.Context, quoter Quoter, throttle *rate.Limiter, ledger *Ledger, currency string) (*ValuationReport, error) {
	report := &ValuationReport{
		Currency:      currency,
		TotalValue:    M(0, currency),
		TotalInvested: M(0, currency),
	}

	for i, assetID := range ledger.AssetIDs() {
		if throttle != nil && i > 0 {
			if err := throttle.Wait(ctx); err != nil {
				return nil, err
			}
		}
		holding, _ := ledger.Get(assetID)

		quote, err := quoter.Quote(ctx, assetID, currency)
		if err != nil {
			report.Partial = true
			report.Skipped = append(report.Skipped, assetID)
			continue
		}

		line := ValuationLine{
			AssetID:   assetID,
			Amount:    holding.Amount,
			Added:     holding.Added,
			AvgCost:   holding.AvgCost.In(currency),
			Price:     quote.Price.In(currency),
			Change24h: quote.Change24h,
		}
		line.Value = line.Price.Mul(holding.Amount)
		line.Invested = line.AvgCost.Mul(holding.Amount)
		line.Profit = line.Value.Sub(line.Invested)
		if line.Invested.IsPositive() {
			line.ProfitPct = line.Profit.PercentOf(line.Invested)
		}

		report.Lines = append(report.Lines, line)
		report.TotalValue = report.TotalValue.Add(line.Value)
		report.TotalInvested = report.TotalInvested.Add(line.Invested)
	}

	report.TotalProfit = report.TotalValue.Sub(report.TotalInvested)
	if report.TotalInvested.IsPositive() {
		report.TotalProfitPct = report.TotalProfit.PercentOf(report.TotalInvested)
	}
	return report, nil
}

// NewQuoteThrottle returns the rate limiter used between successive quote
// calls.
func NewQuoteThrottle() *rate.Limiter {
	return rate.NewLimiter(rate.Every(QuoteThrottle), 1)
}
