package cryptofolio

import (
	"context"
	"testing"

	"github.com/etnz/cryptofolio/date"
)

func TestNewValuationReport(t *testing.T) {
	ledger := NewLedger()
	// 2 units at 10 invests 20, quoted at 15 values 30: +10 profit
	if err := ledger.Add("bitcoin", Q(2.0), Q(10.0), date.New(2026, 1, 1)); err != nil {
		t.Fatal(err)
	}
	// 1 unit at 100 invests 100, quoted at 90 values 90: -10 profit
	if err := ledger.Add("ethereum", Q(1.0), Q(100.0), date.New(2026, 2, 1)); err != nil {
		t.Fatal(err)
	}

	quoter := &fakeQuoter{quotes: map[string]Quote{
		"bitcoin":  {Price: Q(15.0), Change24h: 2.5},
		"ethereum": {Price: Q(90.0), Change24h: -1.0},
	}}

	report, err := NewValuationReport(context.Background(), quoter, nil, ledger, "usd")
	if err != nil {
		t.Fatalf("NewValuationReport: %v", err)
	}

	if len(report.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(report.Lines))
	}
	// lines come out in lexical asset order
	btc, eth := report.Lines[0], report.Lines[1]
	if btc.AssetID != "bitcoin" || eth.AssetID != "ethereum" {
		t.Fatalf("line order = %s, %s", btc.AssetID, eth.AssetID)
	}

	if !btc.Value.Equal(USD(30)) || !btc.Invested.Equal(USD(20)) || !btc.Profit.Equal(USD(10)) {
		t.Errorf("bitcoin line = %+v", btc)
	}
	if !btc.ProfitPct.Equal(50) {
		t.Errorf("bitcoin profit pct = %s, want 50%%", btc.ProfitPct)
	}
	if !eth.Profit.Equal(USD(-10)) || !eth.ProfitPct.Equal(-10) {
		t.Errorf("ethereum line = %+v", eth)
	}

	if !report.TotalValue.Equal(USD(120)) {
		t.Errorf("total value = %s, want $120", report.TotalValue)
	}
	if !report.TotalInvested.Equal(USD(120)) {
		t.Errorf("total invested = %s, want $120", report.TotalInvested)
	}
	if !report.TotalProfit.IsZero() || !report.TotalProfitPct.Equal(0) {
		t.Errorf("total profit = %s (%s), want zero", report.TotalProfit, report.TotalProfitPct)
	}
	if report.Partial || len(report.Skipped) != 0 {
		t.Errorf("report should be complete, skipped %v", report.Skipped)
	}
	if quoter.calls != 2 {
		t.Errorf("quoter called %d times, want 2", quoter.calls)
	}
}

func TestNewValuationReportPartial(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.Add("bitcoin", Q(1.0), Q(10.0), date.Today()); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Add("obscurecoin", Q(5.0), Q(1.0), date.Today()); err != nil {
		t.Fatal(err)
	}

	quoter := &fakeQuoter{quotes: map[string]Quote{
		"bitcoin": {Price: Q(12.0)},
	}}

	report, err := NewValuationReport(context.Background(), quoter, nil, ledger, "usd")
	if err != nil {
		t.Fatal(err)
	}

	if !report.Partial {
		t.Error("report should be flagged partial")
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != "obscurecoin" {
		t.Errorf("skipped = %v, want [obscurecoin]", report.Skipped)
	}
	// the unquotable asset contributes to no total
	if len(report.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(report.Lines))
	}
	if !report.TotalValue.Equal(USD(12)) || !report.TotalInvested.Equal(USD(10)) {
		t.Errorf("totals = %s / %s", report.TotalValue, report.TotalInvested)
	}
}

func TestNewValuationReportEmptyLedger(t *testing.T) {
	quoter := &fakeQuoter{}
	report, err := NewValuationReport(context.Background(), quoter, nil, NewLedger(), "eur")
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Lines) != 0 || quoter.calls != 0 {
		t.Errorf("empty ledger: %d lines, %d calls", len(report.Lines), quoter.calls)
	}
	if !report.TotalValue.IsZero() || !report.TotalProfitPct.Equal(0) {
		t.Errorf("empty ledger totals = %+v", report)
	}
	if report.Currency != "eur" {
		t.Errorf("currency = %q, want eur", report.Currency)
	}
}

func TestNewValuationReportFreeQuote(t *testing.T) {
	// a free asset invests nothing; the percent stays zero instead of
	// dividing by zero
	ledger := NewLedger()
	if err := ledger.Add("airdropcoin", Q(100.0), Q(0), date.Today()); err != nil {
		t.Fatal(err)
	}
	quoter := &fakeQuoter{quotes: map[string]Quote{
		"airdropcoin": {Price: Q(0.5)},
	}}

	report, err := NewValuationReport(context.Background(), quoter, nil, ledger, "usd")
	if err != nil {
		t.Fatal(err)
	}
	line := report.Lines[0]
	if !line.Invested.IsZero() || !line.ProfitPct.Equal(0) {
		t.Errorf("free asset line = %+v", line)
	}
	if !report.TotalProfitPct.Equal(0) {
		t.Errorf("total profit pct = %s, want 0", report.TotalProfitPct)
	}
}

func TestNewValuationReportCancelled(t *testing.T) {
	ledger := NewLedger()
	ledger.Add("bitcoin", Q(1.0), Q(10.0), date.Today())
	ledger.Add("ethereum", Q(1.0), Q(10.0), date.Today())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	quoter := &fakeQuoter{quotes: map[string]Quote{
		"bitcoin":  {Price: Q(1.0)},
		"ethereum": {Price: Q(1.0)},
	}}
	_, err := NewValuationReport(ctx, quoter, NewQuoteThrottle(), ledger, "usd")
	if err == nil {
		t.Error("cancelled context should abort the throttled valuation")
	}
}
