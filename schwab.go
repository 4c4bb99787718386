package portdash

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Schwab "Positions" exports open with disclaimer and account-summary rows,
// then the real column header, then holdings grouped by account. Each group
// starts with a row whose Symbol cell is the account name; the label applies
// to every holding until the next group. A footer repeats disclaimer text.

const (
	schwabSymbol   = "Symbol"
	schwabDesc     = "Description"
	schwabQuantity = "Qty (Quantity)"
	schwabPrice    = "Price"
	schwabValue    = "Mkt Val (Market Value)"
	schwabCost     = "Cost Basis"
	schwabSecType  = "Security Type"
)

// schwabSignature identifies the real header row among the leading noise.
var schwabSignature = []string{schwabSymbol, schwabDesc, schwabQuantity}

var schwabRequired = []string{
	schwabSymbol,
	schwabDesc,
	schwabQuantity,
	schwabPrice,
	schwabValue,
	schwabCost,
	schwabSecType,
}

// isSchwabAccountRow spots the group rows naming an account inside the
// Symbol column ("Individual ...123", "Roth Contributory IRA ...456").
func isSchwabAccountRow(symbol, qty string) bool {
	if qty != "" {
		return false
	}
	for _, marker := range []string{"Individual", "Roth", "Contributory", "Traditional"} {
		if strings.Contains(symbol, marker) {
			return true
		}
	}
	return false
}

func parseSchwab(r io.Reader, opt Options) ([]Position, error) {
	log := opt.logger()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read schwab export: %w", err)
	}

	header := -1
scan:
	for i, row := range rows {
		col := indexColumns(row)
		for _, name := range schwabSignature {
			if _, ok := col[name]; !ok {
				continue scan
			}
		}
		header = i
		break
	}
	if header < 0 {
		return nil, &MissingColumnError{Source: Schwab, Column: schwabSymbol}
	}

	col := indexColumns(rows[header])
	for _, name := range schwabRequired {
		if _, ok := col[name]; !ok {
			return nil, &MissingColumnError{Source: Schwab, Column: name}
		}
	}

	var positions []Position
	account := ""
	for i, row := range rows[header+1:] {
		line := header + i + 2

		if blankRow(row) {
			// A fully blank row separates the data from the footer.
			break
		}

		symbol := cell(row, col, schwabSymbol)
		qtyCell := cell(row, col, schwabQuantity)
		if symbol == "" || symbol == schwabSymbol {
			// empty filler or a repeated header
			continue
		}
		if isSchwabAccountRow(symbol, qtyCell) {
			account = normalizeAccount(symbol)
			continue
		}
		if strings.Contains(symbol, "Total") {
			continue
		}
		secType := cell(row, col, schwabSecType)
		cash := strings.Contains(symbol, "Cash") || opt.isCashSymbol(symbol)
		if !cash && (secType == "" || secType == "--") {
			// account-summary noise between the header and the holdings
			continue
		}

		value, err := ParseMoney(cell(row, col, schwabValue))
		if err != nil {
			log.Warn("skipping row", zap.String("source", string(Schwab)),
				zap.Int("line", line), zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		if value.IsNegative() {
			log.Warn("skipping row with negative value", zap.String("source", string(Schwab)),
				zap.Int("line", line), zap.String("symbol", symbol))
			continue
		}

		p := Position{
			Symbol:       symbol,
			Description:  cell(row, col, schwabDesc),
			Account:      account,
			CurrentValue: value,
			Source:       Schwab,
		}

		if cash {
			p.Cash = true
			p.Quantity = value.AsQuantity()
			p.Price = M(1)
			cost := value
			p.CostBasis = &cost
			positions = append(positions, p)
			continue
		}

		qty, err := ParseQuantity(qtyCell)
		if err != nil {
			log.Warn("skipping row", zap.String("source", string(Schwab)),
				zap.Int("line", line), zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		price, err := ParseMoney(cell(row, col, schwabPrice))
		if err != nil {
			log.Warn("skipping row", zap.String("source", string(Schwab)),
				zap.Int("line", line), zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		p.Quantity = qty
		p.Price = price

		if costCell := cell(row, col, schwabCost); costCell != "" && costCell != "--" {
			cost, err := ParseMoney(costCell)
			if err != nil {
				log.Warn("skipping row", zap.String("source", string(Schwab)),
					zap.Int("line", line), zap.String("symbol", symbol), zap.Error(err))
				continue
			}
			p.CostBasis = &cost
		}

		positions = append(positions, p)
	}
	return positions, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
