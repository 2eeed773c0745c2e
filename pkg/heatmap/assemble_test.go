package heatmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"heatmap-api/pkg/universe"
)

var testInstruments = []universe.Instrument{
	{Symbol: "AAA.IS", Name: "Alpha"},
	{Symbol: "BBB.IS", Name: "Beta"},
	{Symbol: "CCC.IS", Name: "Gamma"},
}

func TestAssembleSortsByMarketCap(t *testing.T) {
	returns := map[string]float64{"AAA.IS": 0.10, "BBB.IS": -0.30}
	caps := map[string]float64{"AAA.IS": 1000, "BBB.IS": 500}

	ds, err := Assemble(testInstruments, returns, caps)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 2)
	require.Equal(t, "AAA.IS", ds.Rows[0].Symbol)
	require.Equal(t, "BBB.IS", ds.Rows[1].Symbol)
	require.InDelta(t, 0.30, ds.ScaleBound, 1e-12)
}

func TestAssembleExcludesUnusableInstruments(t *testing.T) {
	returns := map[string]float64{
		"AAA.IS": 0.10,
		// BBB.IS has no return at all.
		"CCC.IS": 0.05, // valid series but cap resolved to zero
	}
	caps := map[string]float64{
		"AAA.IS": 1000,
		"BBB.IS": 900,
		"CCC.IS": 0,
	}

	ds, err := Assemble(testInstruments, returns, caps)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	require.Equal(t, "AAA.IS", ds.Rows[0].Symbol)

	for _, row := range ds.Rows {
		require.Greater(t, row.MarketCap, 0.0)
	}
}

func TestAssembleEmptyDataset(t *testing.T) {
	_, err := Assemble(testInstruments, map[string]float64{}, map[string]float64{})
	require.ErrorIs(t, err, ErrEmptyDataset)

	// A cap without a return does not make a row either.
	_, err = Assemble(testInstruments, map[string]float64{}, map[string]float64{"AAA.IS": 1000})
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestAssembleScaleBoundFloor(t *testing.T) {
	returns := map[string]float64{"AAA.IS": 0.0}
	caps := map[string]float64{"AAA.IS": 1000}

	ds, err := Assemble(testInstruments, returns, caps)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	require.InDelta(t, 0.01, ds.ScaleBound, 1e-12, "degenerate scale gets a positive floor")
}

func TestAssembleScaleBoundCoversAllRows(t *testing.T) {
	returns := map[string]float64{"AAA.IS": 0.02, "BBB.IS": -0.45, "CCC.IS": 0.17}
	caps := map[string]float64{"AAA.IS": 10, "BBB.IS": 20, "CCC.IS": 30}

	ds, err := Assemble(testInstruments, returns, caps)
	require.NoError(t, err)
	require.Greater(t, ds.ScaleBound, 0.0)
	for _, row := range ds.Rows {
		require.LessOrEqual(t, row.Return, ds.ScaleBound)
		require.GreaterOrEqual(t, row.Return, -ds.ScaleBound)
	}
}
