package portdash

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Fidelity "Portfolio Positions" exports carry a single header row with
// fixed column names, one holding per row, then free-text disclaimer lines.
// Cash core positions leave the Quantity cell empty.

const (
	fidelityAccount  = "Account Name"
	fidelitySymbol   = "Symbol"
	fidelityDesc     = "Description"
	fidelityQuantity = "Quantity"
	fidelityPrice    = "Last Price"
	fidelityValue    = "Current Value"
	fidelityCost     = "Cost Basis Total"
)

var fidelityRequired = []string{
	fidelityAccount,
	fidelitySymbol,
	fidelityDesc,
	fidelityQuantity,
	fidelityPrice,
	fidelityValue,
	fidelityCost,
}

func parseFidelity(r io.Reader, opt Options) ([]Position, error) {
	log := opt.logger()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read fidelity export: %w", err)
	}
	if len(rows) == 0 {
		return nil, &MissingColumnError{Source: Fidelity, Column: fidelitySymbol}
	}

	col := indexColumns(rows[0])
	for _, name := range fidelityRequired {
		if _, ok := col[name]; !ok {
			return nil, &MissingColumnError{Source: Fidelity, Column: name}
		}
	}

	var positions []Position
	for i, row := range rows[1:] {
		line := i + 2

		account := cell(row, col, fidelityAccount)
		symbol := cell(row, col, fidelitySymbol)
		// Summary, pending-activity and trailing disclaimer rows have no
		// account name or no symbol.
		if account == "" || symbol == "" {
			continue
		}
		if symbol == "Pending Activity" || strings.HasPrefix(symbol, "Total") {
			continue
		}

		value, err := ParseMoney(cell(row, col, fidelityValue))
		if err != nil {
			log.Warn("skipping row", zap.String("source", string(Fidelity)),
				zap.Int("line", line), zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		if value.IsNegative() {
			log.Warn("skipping row with negative value", zap.String("source", string(Fidelity)),
				zap.Int("line", line), zap.String("symbol", symbol))
			continue
		}

		p := Position{
			Symbol:       symbol,
			Description:  cell(row, col, fidelityDesc),
			Account:      normalizeAccount(account),
			CurrentValue: value,
			Source:       Fidelity,
		}

		qtyCell := cell(row, col, fidelityQuantity)
		if qtyCell == "" || opt.isCashSymbol(symbol) {
			// Cash behaves like a position at $1.00 per unit.
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
			log.Warn("skipping row", zap.String("source", string(Fidelity)),
				zap.Int("line", line), zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		price, err := ParseMoney(cell(row, col, fidelityPrice))
		if err != nil {
			log.Warn("skipping row", zap.String("source", string(Fidelity)),
				zap.Int("line", line), zap.String("symbol", symbol), zap.Error(err))
			continue
		}
		p.Quantity = qty
		p.Price = price

		// "--" means Fidelity does not know the cost basis. That is a
		// missing value, not zero.
		if costCell := cell(row, col, fidelityCost); costCell != "" && costCell != "--" {
			cost, err := ParseMoney(costCell)
			if err != nil {
				log.Warn("skipping row", zap.String("source", string(Fidelity)),
					zap.Int("line", line), zap.String("symbol", symbol), zap.Error(err))
				continue
			}
			p.CostBasis = &cost
		}

		positions = append(positions, p)
	}
	return positions, nil
}
