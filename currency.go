package cryptofolio

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currencies is the fixed set of quote currencies supported by the tracker,
// in their lowercase wire form. The first one is the default.
var Currencies = []string{"usd", "inr", "eur", "gbp"}

// DefaultCurrency is used when the settings document has no currency.
const DefaultCurrency = "usd"

// IsSupportedCurrency reports whether code is one of the supported quote
// currencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}

// ParseCurrency normalizes and validates a user-supplied currency code.
func ParseCurrency(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !IsSupportedCurrency(code) {
		return "", fmt.Errorf("unsupported currency %q (want one of %s): %w", code, strings.Join(Currencies, ", "), ErrInvalidInput)
	}
	return code, nil
}

// CurrencySymbol returns the display symbol for a currency code ("$", "₹",
// "€", "£"). Unsupported codes fall back to the USD symbol.
func CurrencySymbol(code string) string {
	return currencyOrUSD(code).Grapheme
}

// CurrencyName returns the display name for a currency code ("USD", "INR",
// ...). Unsupported codes fall back to USD.
func CurrencyName(code string) string {
	return currencyOrUSD(code).Code
}

func currencyOrUSD(code string) *money.Currency {
	if cur := money.GetCurrency(strings.ToUpper(code)); cur != nil && IsSupportedCurrency(strings.ToLower(code)) {
		return cur
	}
	return money.GetCurrency(money.USD)
}
