// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type InstrumentView struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type InstrumentsResp struct {
	Instruments []InstrumentView `json:"instruments"`
}

type IntervalView struct {
	Label string `json:"label"`
	Days  int    `json:"days"`
}

type IntervalsResp struct {
	Intervals []IntervalView `json:"intervals"`
}

type HeatmapReq struct {
	Interval string `form:"interval,default=1 Month"`
	Symbols  string `form:"symbols,optional"`
}

type HeatmapRow struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	ReturnPct float64 `json:"returnPct"`
	MarketCap float64 `json:"marketCap"`
}

type HeatmapResp struct {
	Interval     string       `json:"interval"`
	LookbackDays int          `json:"lookbackDays"`
	AsOf         string       `json:"asOf"`
	ScaleBound   float64      `json:"scaleBound"`
	Rows         []HeatmapRow `json:"rows"`
	Message      string       `json:"message,omitempty"`
}
