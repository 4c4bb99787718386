package portdash

import (
	"errors"
	"strings"
	"testing"
)

const fidelityExport = `Account Number,Account Name,Symbol,Description,Quantity,Last Price,Current Value,Cost Basis Total,Type
X123,Individual TOD,AAPL,APPLE INC,10,$150.00,"$1,500.00","$1,000.00",Cash
X123,Individual TOD,MSFT,MICROSOFT CORP,5,$300.00,"$1,500.00",--,Cash
X123,Individual TOD,SPAXX**,FIDELITY GOVERNMENT MONEY MARKET,,$1.00,"$2,000.00",--,Cash
X456,ROTH IRA,VTI,VANGUARD TOTAL STOCK MARKET ETF,3,$220.00,$660.00,$600.00,Cash
X456,ROTH IRA,Pending Activity,,,,$12.00,,
,,,,,,,,

"The data and information in this spreadsheet is provided to you solely for your use, is not intended for distribution."
`

func TestParseFidelity(t *testing.T) {
	positions, err := Parse(Fidelity, strings.NewReader(fidelityExport), Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(positions) != 4 {
		t.Fatalf("len(positions) = %d, want 4", len(positions))
	}

	aapl := positions[0]
	if aapl.Symbol != "AAPL" || aapl.Account != "Brokerage" || aapl.Source != Fidelity {
		t.Errorf("unexpected first position: %+v", aapl)
	}
	if !aapl.Quantity.Equal(Q(10)) || !aapl.CurrentValue.Equal(USD(1500)) {
		t.Errorf("AAPL = %v @ %v, want 10 @ $1,500.00", aapl.Quantity, aapl.CurrentValue)
	}
	if aapl.CostBasis == nil || !aapl.CostBasis.Equal(USD(1000)) {
		t.Errorf("AAPL cost basis = %v, want $1,000.00", aapl.CostBasis)
	}
	if aapl.Cash {
		t.Errorf("AAPL classified as cash")
	}

	msft := positions[1]
	if msft.CostBasis != nil {
		t.Errorf("MSFT cost basis = %v, want unknown (nil)", msft.CostBasis)
	}

	spaxx := positions[2]
	if !spaxx.Cash {
		t.Errorf("SPAXX** not classified as cash")
	}
	if !spaxx.Price.Equal(USD(1)) || !spaxx.Quantity.Equal(Q(2000)) {
		t.Errorf("SPAXX = %v @ %v, want 2000 @ $1.00", spaxx.Quantity, spaxx.Price)
	}
	if spaxx.CostBasis == nil || !spaxx.CostBasis.Equal(USD(2000)) {
		t.Errorf("SPAXX cost basis = %v, want $2,000.00", spaxx.CostBasis)
	}

	vti := positions[3]
	if vti.Account != "Roth IRA" {
		t.Errorf("VTI account = %q, want %q", vti.Account, "Roth IRA")
	}

	for _, p := range positions {
		if p.Symbol == "" {
			t.Errorf("position with empty symbol: %+v", p)
		}
		if p.CurrentValue.IsNegative() {
			t.Errorf("position with negative value: %+v", p)
		}
	}
}

func TestParseFidelity_MissingColumn(t *testing.T) {
	export := "Account Name,Symbol,Description,Quantity,Last Price,Current Value\n" +
		"Individual,AAPL,APPLE INC,10,$150.00,\"$1,500.00\"\n"
	_, err := Parse(Fidelity, strings.NewReader(export), Options{})
	var mc *MissingColumnError
	if !errors.As(err, &mc) {
		t.Fatalf("Parse() error = %v, want *MissingColumnError", err)
	}
	if mc.Column != "Cost Basis Total" {
		t.Errorf("missing column = %q, want %q", mc.Column, "Cost Basis Total")
	}
}

func TestParseFidelity_PartialFailure(t *testing.T) {
	export := "Account Name,Symbol,Description,Quantity,Last Price,Current Value,Cost Basis Total\n" +
		"Individual,AAPL,APPLE INC,10,$150.00,\"$1,500.00\",\"$1,000.00\"\n" +
		"Individual,BAD,BROKEN ROW,oops,$1.00,not a number,$1.00\n" +
		"Individual,VTI,VANGUARD,3,$220.00,$660.00,$600.00\n"
	positions, err := Parse(Fidelity, strings.NewReader(export), Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("len(positions) = %d, want 2 (malformed row skipped)", len(positions))
	}
	if positions[0].Symbol != "AAPL" || positions[1].Symbol != "VTI" {
		t.Errorf("kept symbols = %q, %q; want AAPL, VTI", positions[0].Symbol, positions[1].Symbol)
	}
}
