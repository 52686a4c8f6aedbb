// Package money parses and formats dollar amounts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

var amountNoise = strings.NewReplacer("$", "", ",", "", " ", "")

// Parse reads a user or sheet supplied amount. Currency symbols, thousands
// separators and accounting parentheses are accepted; anything else reads
// as zero.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	d, err := decimal.NewFromString(amountNoise.Replace(s))
	if err != nil {
		return decimal.Zero
	}
	if negative {
		d = d.Neg()
	}
	return d
}

// FormatUSD renders d as US dollars with grouping and two decimals, e.g.
// $1,234.50 or -$12.00.
func FormatUSD(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "$" + printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
