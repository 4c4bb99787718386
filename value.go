package portdash

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Brokerage exports format numbers for humans: a currency symbol, thousands
// separators, and parentheses for negative amounts. The accepted grammar is
//
//	[ "(" ] [ "$" ] digits [ "," digits ]* [ "." digits ] [ ")" ]
//
// with an optional leading sign instead of the parentheses. Anything else,
// including Fidelity's "--" placeholder, is rejected.

// parseNumeric coerces a formatted cell to an exact decimal.
func parseNumeric(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	neg := false
	if len(v) > 2 && strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		neg = true
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	v = strings.ReplaceAll(v, "$", "")
	v = strings.ReplaceAll(v, ",", "")
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero, err
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

// ParseMoney coerces a currency-formatted cell ("$1,234.56", "(12.00)") to
// Money, or returns a *MalformedValueError.
func ParseMoney(s string) (Money, error) {
	d, err := parseNumeric(s)
	if err != nil {
		return Money{}, &MalformedValueError{Value: s, Err: err}
	}
	return Money{value: d}, nil
}

// ParseQuantity coerces a formatted cell to a Quantity, or returns a
// *MalformedValueError.
func ParseQuantity(s string) (Quantity, error) {
	d, err := parseNumeric(s)
	if err != nil {
		return Quantity{}, &MalformedValueError{Value: s, Err: err}
	}
	return Quantity{value: d}, nil
}
