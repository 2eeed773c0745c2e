package heatmap

import (
	"errors"
	"math"
	"sort"

	"heatmap-api/pkg/universe"
)

// ErrEmptyDataset signals that no instrument survived filtering; the caller
// should show an empty-state message instead of rendering a chart.
var ErrEmptyDataset = errors.New("heatmap: no instruments with usable data")

// minScaleBound keeps the color scale from collapsing to zero width when
// every included return is exactly zero.
const minScaleBound = 0.01

// Row is one instrument in the final dataset. Return is a fraction
// (0.05 == +5%); MarketCap is in upstream currency units.
type Row struct {
	Symbol    string
	Name      string
	Return    float64
	MarketCap float64
}

// Dataset is the assembled output handed to the presentation layer.
// ScaleBound is the symmetric color-scale bound: rows color within
// [-ScaleBound, +ScaleBound].
type Dataset struct {
	Rows       []Row
	ScaleBound float64
}

// Assemble joins per-symbol returns with per-symbol market caps. An
// instrument is included only when both its return and a positive market cap
// resolved; everything else is silently excluded. Rows are ordered by market
// cap descending. Returns ErrEmptyDataset when nothing survives.
func Assemble(instruments []universe.Instrument, returns map[string]float64, caps map[string]float64) (*Dataset, error) {
	rows := make([]Row, 0, len(instruments))
	for _, inst := range instruments {
		ret, hasReturn := returns[inst.Symbol]
		cap, hasCap := caps[inst.Symbol]
		if !hasReturn || !hasCap || cap <= 0 {
			continue
		}
		rows = append(rows, Row{
			Symbol:    inst.Symbol,
			Name:      inst.Name,
			Return:    ret,
			MarketCap: cap,
		})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MarketCap != rows[j].MarketCap {
			return rows[i].MarketCap > rows[j].MarketCap
		}
		return rows[i].Symbol < rows[j].Symbol
	})

	bound := 0.0
	for _, row := range rows {
		if abs := math.Abs(row.Return); abs > bound {
			bound = abs
		}
	}
	if bound == 0 {
		bound = minScaleBound
	}

	return &Dataset{Rows: rows, ScaleBound: bound}, nil
}
