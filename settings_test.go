package cryptofolio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/cryptofolio/date"
)

func TestParseGoal(t *testing.T) {
	g, err := ParseGoal("10000", "2026-12-31", "2500")
	if err != nil {
		t.Fatalf("ParseGoal: %v", err)
	}
	if !g.TargetValue.Equal(Q(10000.0)) {
		t.Errorf("target = %s, want 10000", g.TargetValue)
	}
	if g.TargetDate != date.New(2026, 12, 31) {
		t.Errorf("target date = %s, want 2026-12-31", g.TargetDate)
	}
	if !g.InitialInvestment.Equal(Q(2500.0)) {
		t.Errorf("initial = %s, want 2500", g.InitialInvestment)
	}
	if !g.IsSet() {
		t.Error("goal with a target value should be set")
	}
}

func TestParseGoalOptionalFields(t *testing.T) {
	g, err := ParseGoal("10000", "", "")
	if err != nil {
		t.Fatalf("ParseGoal: %v", err)
	}
	if !g.TargetDate.IsZero() {
		t.Errorf("target date = %s, want zero", g.TargetDate)
	}
	if !g.InitialInvestment.IsZero() {
		t.Errorf("initial = %s, want zero", g.InitialInvestment)
	}

	// all empty is a cleared goal, not an error
	g, err = ParseGoal("", "", "")
	if err != nil {
		t.Fatalf("ParseGoal of empty inputs: %v", err)
	}
	if g.IsSet() {
		t.Error("empty goal should not be set")
	}
}

func TestParseGoalInvalid(t *testing.T) {
	cases := []struct {
		name                    string
		target, targetDate, ini string
	}{
		{name: "bad target", target: "lots", targetDate: "2026-12-31", ini: "100"},
		{name: "negative target", target: "-5", targetDate: "", ini: ""},
		{name: "bad date", target: "10000", targetDate: "soon", ini: ""},
		{name: "bad initial", target: "10000", targetDate: "", ini: "x"},
		{name: "negative initial", target: "10000", targetDate: "", ini: "-1"},
	}
	for _, c := range cases {
		g, err := ParseGoal(c.target, c.targetDate, c.ini)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: error = %v, want ErrInvalidInput", c.name, err)
		}
		// one invalid field fails the whole goal
		if g.IsSet() {
			t.Errorf("%s: goal should be empty on error", c.name)
		}
	}
}

func TestEncodeSettingsDocument(t *testing.T) {
	s := Settings{
		Currency: "eur",
		Goals:    Goal{TargetValue: Q(10000.0), InitialInvestment: Q(2500.0)},
	}

	var buf bytes.Buffer
	if err := EncodeSettings(&buf, s); err != nil {
		t.Fatal(err)
	}
	got := buf.String()

	// an unset target date is serialized as the empty string
	want := `{
  "currency": "eur",
  "goals": {
    "target_value": 10000,
    "target_date": "",
    "initial_investment": 2500
  }
}
`
	if got != want {
		t.Errorf("document = %s, want %s", got, want)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := Settings{
		Currency: "gbp",
		Goals: Goal{
			TargetValue:       Q(50000.0),
			TargetDate:        date.New(2027, 6, 1),
			InitialInvestment: Q(12000.0),
		},
	}

	var buf bytes.Buffer
	if err := EncodeSettings(&buf, s); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSettings(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if got.Currency != s.Currency {
		t.Errorf("currency = %q, want %q", got.Currency, s.Currency)
	}
	if !got.Goals.TargetValue.Equal(s.Goals.TargetValue) ||
		got.Goals.TargetDate != s.Goals.TargetDate ||
		!got.Goals.InitialInvestment.Equal(s.Goals.InitialInvestment) {
		t.Errorf("goals = %+v, want %+v", got.Goals, s.Goals)
	}
}

func TestDecodeSettingsDefaults(t *testing.T) {
	// a document without a currency falls back to the default
	s, err := DecodeSettings(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("DecodeSettings: %v", err)
	}
	if s.Currency != DefaultCurrency {
		t.Errorf("currency = %q, want %q", s.Currency, DefaultCurrency)
	}
	if s.Goals.IsSet() {
		t.Error("empty document should not carry a goal")
	}

	if _, err := DecodeSettings(strings.NewReader(`nope`)); err == nil {
		t.Error("non-JSON settings document should not decode")
	}
}
