package portdash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	table := &Table{Positions: []Position{
		{Symbol: "AAPL", Quantity: Q(10), Price: USD(150), CurrentValue: USD(1500), CostBasis: cb(1000), Source: Fidelity},
		{Symbol: "MSFT", Quantity: Q(2), Price: USD(100), CurrentValue: USD(200), Source: Fidelity},
		{Symbol: "SPAXX**", Quantity: Q(300), Price: USD(1), CurrentValue: USD(300), CostBasis: cb(300), Cash: true, Source: Fidelity},
	}}

	m := Compute(table)
	require.Len(t, m.Rows, 3)

	// the concrete reference case: $1,500.00 now for $1,000.00 in
	aapl := m.Rows[0]
	require.NotNil(t, aapl.PnL)
	assert.True(t, aapl.PnL.Equal(USD(500)), "AAPL PnL = %v, want $500.00", aapl.PnL)
	require.NotNil(t, aapl.PnLPercent)
	assert.True(t, aapl.PnLPercent.Equal(Percent(50)), "AAPL PnL%% = %v, want 50%%", aapl.PnLPercent)

	// unknown cost basis must stay unknown, not read as breakeven
	msft := m.Rows[1]
	assert.Nil(t, msft.PnL)
	assert.Nil(t, msft.PnLPercent)
	assert.Nil(t, msft.WeightByCost)

	assert.True(t, m.TotalValue.Equal(USD(2000)), "TotalValue = %v", m.TotalValue)
	assert.True(t, m.TotalCost.Equal(USD(1300)), "TotalCost = %v", m.TotalCost)
	assert.True(t, m.TotalCash.Equal(USD(300)), "TotalCash = %v", m.TotalCash)
	assert.True(t, m.TotalInvested.Equal(USD(1700)), "TotalInvested = %v", m.TotalInvested)

	assert.True(t, *m.Rows[0].WeightByValue == Percent(75), "AAPL weight = %v", m.Rows[0].WeightByValue)
	assert.True(t, m.Rows[2].WeightByCost != nil)
}

func TestCompute_WeightsSumToOne(t *testing.T) {
	table := &Table{Positions: []Position{
		{Symbol: "A", CurrentValue: USD(123.45), CostBasis: cb(100)},
		{Symbol: "B", CurrentValue: USD(67.89), CostBasis: cb(70)},
		{Symbol: "C", CurrentValue: USD(1000.01)},
		{Symbol: "D", CurrentValue: USD(0.04), CostBasis: cb(0.01)},
	}}
	m := Compute(table)
	require.True(t, m.Weighted)

	sum := 0.0
	for _, row := range m.Rows {
		require.NotNil(t, row.WeightByValue)
		sum += float64(*row.WeightByValue) / 100
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	costSum := 0.0
	for _, row := range m.Rows {
		if row.WeightByCost != nil {
			costSum += float64(*row.WeightByCost) / 100
		}
	}
	assert.InDelta(t, 1.0, costSum, 1e-9)
}

func TestCompute_ZeroValueTable(t *testing.T) {
	table := &Table{Positions: []Position{
		{Symbol: "A", CurrentValue: USD(0)},
		{Symbol: "B", CurrentValue: USD(0)},
	}}
	m := Compute(table)

	assert.False(t, m.Weighted)
	assert.False(t, m.CostWeighted)
	require.Len(t, m.Rows, 2)
	for _, row := range m.Rows {
		assert.Nil(t, row.WeightByValue)
		assert.Nil(t, row.WeightByCost)
	}
}

func TestCompute_EmptyTable(t *testing.T) {
	m := Compute(&Table{})
	// distinct from the zero-value case: no rows at all
	assert.Empty(t, m.Rows)
	assert.False(t, m.Weighted)
	assert.True(t, m.TotalValue.IsZero())
}

func TestCompute_ZeroCostBasis(t *testing.T) {
	table := &Table{Positions: []Position{
		{Symbol: "FREE", CurrentValue: USD(10), CostBasis: cb(0)},
	}}
	m := Compute(table)
	require.NotNil(t, m.Rows[0].PnL)
	assert.True(t, m.Rows[0].PnL.Equal(USD(10)))
	// ratio over a zero basis is undefined, not infinite
	assert.Nil(t, m.Rows[0].PnLPercent)
	assert.False(t, m.CostWeighted)
}

func TestConsolidatedWeights(t *testing.T) {
	table := &Table{Positions: []Position{
		{Symbol: "AAPL", CurrentValue: USD(1500), CostBasis: cb(1000), Source: Fidelity},
		{Symbol: "AAPL", CurrentValue: USD(500), CostBasis: cb(500), Source: Schwab},
		{Symbol: "VTI", CurrentValue: USD(2000), CostBasis: cb(1500), Source: Schwab},
	}}
	weights := ConsolidatedWeights(table)
	require.Len(t, weights, 2)

	assert.Equal(t, "AAPL", weights[0].Symbol)
	require.NotNil(t, weights[0].ByValue)
	assert.True(t, weights[0].ByValue.Equal(Percent(50)), "AAPL weight = %v", weights[0].ByValue)
	require.NotNil(t, weights[0].ByCost)
	assert.True(t, weights[0].ByCost.Equal(Percent(50)), "AAPL cost weight = %v", weights[0].ByCost)
}
