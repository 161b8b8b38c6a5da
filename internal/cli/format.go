// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the ISO 4217 code used when none is configured.
const DefaultCurrency = money.USD

var (
	printer  = message.NewPrinter(language.AmericanEnglish)
	currency = money.GetCurrency(DefaultCurrency)
)

// ParseLocale parses a BCP 47 tag such as "en-US" or "de-DE".
func ParseLocale(tag string) (language.Tag, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", tag, err)
	}
	return t, nil
}

// SetLocale switches number grouping to the given BCP 47 tag. An empty tag
// resets to en-US.
func SetLocale(tag string) error {
	if tag == "" {
		printer = message.NewPrinter(language.AmericanEnglish)
		return nil
	}
	t, err := ParseLocale(tag)
	if err != nil {
		return err
	}
	printer = message.NewPrinter(t)
	return nil
}

// SetCurrency switches the currency symbol and its placement to an ISO 4217
// code such as "EUR". An empty code resets to USD.
func SetCurrency(code string) error {
	code, err := ParseCurrency(code)
	if err != nil {
		return err
	}
	currency = money.GetCurrency(code)
	return nil
}

// ParseCurrency normalizes an ISO 4217 code, e.g. "eur" -> "EUR". An empty
// code means USD.
func ParseCurrency(code string) (string, error) {
	if code == "" {
		return DefaultCurrency, nil
	}
	code = strings.ToUpper(code)
	if money.GetCurrency(code) == nil {
		return "", fmt.Errorf("unknown currency %q", code)
	}
	return code, nil
}

// CurrencySymbol returns the active currency's symbol, e.g. "$".
func CurrencySymbol() string {
	return currency.Grapheme
}

// FormatCurrency formats an amount with no fractional digits, locale
// grouping, and the currency's symbol placement, e.g. 1000 -> "$1,000".
func FormatCurrency(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	// Templates mark the amount with "1" and the symbol with "$".
	s := strings.Replace(currency.Template, "1", printer.Sprintf("%d", n), 1)
	return sign + strings.Replace(s, "$", currency.Grapheme, 1)
}

// FormatPercent formats a whole percentage.
func FormatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}
