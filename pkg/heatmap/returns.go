package heatmap

import (
	"heatmap-api/pkg/market"
)

// Return computes the fractional price change from the most recent close back
// to the last available close on or before (latest date - lookbackDays).
//
// The lookback counts calendar days, not trading sessions, so the realized
// number of sessions in the window varies slightly with weekends and
// holidays. That matches how the selectable intervals ("1 Month" = 30 days)
// are defined.
//
// The boolean is false when the series is empty, when no close exists at or
// before the target date, or when the past close is zero. The function is
// pure: same inputs, same result.
func Return(series []market.PricePoint, lookbackDays int) (float64, bool) {
	if len(series) == 0 || lookbackDays < 0 {
		return 0, false
	}

	last := series[0]
	for _, point := range series[1:] {
		if point.Date.After(last.Date) {
			last = point
		}
	}

	target := last.Date.AddDate(0, 0, -lookbackDays)

	var past market.PricePoint
	found := false
	for _, point := range series {
		if point.Date.After(target) {
			continue
		}
		if !found || point.Date.After(past.Date) {
			past = point
			found = true
		}
	}
	if !found || past.Close == 0 {
		return 0, false
	}
	return (last.Close / past.Close) - 1, true
}
