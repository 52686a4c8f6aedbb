package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatUSD(t *testing.T) {
	cases := map[string]string{
		"0":          "$0.00",
		"12":         "$12.00",
		"1234.5":     "$1,234.50",
		"1000000.01": "$1,000,000.01",
		"-45.1":      "-$45.10",
		"0.005":      "$0.01",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			if got := FormatUSD(decimal.RequireFromString(in)); got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	cases := map[string]string{
		"":          "0",
		"12.5":      "12.5",
		"$1,234.50": "1234.5",
		"(45.10)":   "-45.1",
		" $ 7 ":     "7",
		"abc":       "0",
		"1.2.3":     "0",
		"-3":        "-3",
	}
	for in, want := range cases {
		if got := Parse(in); !got.Equal(decimal.RequireFromString(want)) {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
}
