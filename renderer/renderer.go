// Package renderer turns the canonical position table and its metrics into
// markdown documents for the terminal.
package renderer

import (
	"github.com/jsandler/portdash"
)

// dash is the placeholder for undefined figures.
const dash = "-"

func moneyOrDash(m *portdash.Money) string {
	if m == nil {
		return dash
	}
	return m.String()
}

func signedMoneyOrDash(m *portdash.Money) string {
	if m == nil {
		return dash
	}
	return m.SignedString()
}

func percentOrDash(p *portdash.Percent) string {
	if p == nil {
		return dash
	}
	return p.String()
}

func signedPercentOrDash(p *portdash.Percent) string {
	if p == nil {
		return dash
	}
	return p.SignedString()
}
