// Package currency formats integer amounts in the smallest currency
// unit for display: locale-aware digit grouping, a currency symbol and
// no decimal digits.
package currency

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders prices for one locale and currency symbol.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New creates a formatter for the given BCP 47 locale tag and currency
// symbol, e.g. ("en-IN", "₹").
func New(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// Default returns the storefront's default formatter: Indian English
// grouping with the rupee symbol.
func Default() *Formatter {
	return &Formatter{
		printer: message.NewPrinter(language.MustParse("en-IN")),
		symbol:  "₹",
	}
}

// Format renders an amount with grouping and the currency symbol,
// e.g. 134900 -> "₹1,34,900" under en-IN.
func (f *Formatter) Format(amount int64) string {
	return f.printer.Sprintf("%s%v", f.symbol, number.Decimal(amount, number.MaxFractionDigits(0)))
}
