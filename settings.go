package cryptofolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/cryptofolio/date"
)

// Goal is the user-defined investment target. A zero TargetValue means no
// goal is set; setting a goal overwrites the previous one, no history is
// kept.
type Goal struct {
	// TargetValue is the portfolio value to reach, in the active currency.
	TargetValue Quantity
	// TargetDate is the optional day to reach it by.
	TargetDate date.Date
	// InitialInvestment is the optional capital originally committed, used
	// for ROI. Zero means unset.
	InitialInvestment Quantity
}

// IsSet reports whether a goal has been defined.
func (g Goal) IsSet() bool { return g.TargetValue.IsPositive() }

// ParseGoal builds a Goal from the raw user inputs. Empty strings leave the
// corresponding field unset. Any invalid field fails the whole goal with
// ErrInvalidInput so that a mixed valid/invalid goal is never persisted.
func ParseGoal(target, targetDate, initial string) (Goal, error) {
	var g Goal
	if target != "" {
		v, err := ParseQuantity(target)
		if err != nil || v.IsNegative() {
			return Goal{}, fmt.Errorf("target value %q must be a non-negative number: %w", target, ErrInvalidInput)
		}
		g.TargetValue = v
	}
	if targetDate != "" {
		d, err := date.Parse(targetDate)
		if err != nil {
			return Goal{}, fmt.Errorf("target date %q: %w", targetDate, ErrInvalidInput)
		}
		g.TargetDate = d
	}
	if initial != "" {
		v, err := ParseQuantity(initial)
		if err != nil || v.IsNegative() {
			return Goal{}, fmt.Errorf("initial investment %q must be a non-negative number: %w", initial, ErrInvalidInput)
		}
		g.InitialInvestment = v
	}
	return g, nil
}

// MarshalJSON emits the goal in the settings document format, with an empty
// string for an unset target date.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("target_value", jsonNumber(g.TargetValue.value))
	targetDate := ""
	if !g.TargetDate.IsZero() {
		targetDate = g.TargetDate.String()
	}
	w.Append("target_date", targetDate)
	w.Append("initial_investment", jsonNumber(g.InitialInvestment.value))
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler for Goal.
func (g *Goal) UnmarshalJSON(data []byte) error {
	var payload struct {
		TargetValue       Quantity `json:"target_value"`
		TargetDate        string   `json:"target_date"`
		InitialInvestment Quantity `json:"initial_investment"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	g.TargetValue = payload.TargetValue
	g.InitialInvestment = payload.InitialInvestment
	g.TargetDate = date.Date{}
	if payload.TargetDate != "" {
		d, err := date.Parse(payload.TargetDate)
		if err != nil {
			return err
		}
		g.TargetDate = d
	}
	return nil
}

// Settings is the single user-preferences record persisted alongside the
// ledger.
type Settings struct {
	Currency string `json:"currency"`
	Goals    Goal   `json:"goals"`
}

// DefaultSettings returns the settings used when no document exists.
func DefaultSettings() Settings {
	return Settings{Currency: DefaultCurrency}
}

// DecodeSettings reads a settings document. Like DecodeLedger it is strict;
// a missing currency still defaults to DefaultCurrency because an otherwise
// valid document may simply predate the currency setting.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("could not decode settings document: %w", err)
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	return s, nil
}

// EncodeSettings writes the settings document, indented.
func EncodeSettings(w io.Writer, s Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("could not encode settings document: %w", err)
	}
	return nil
}
