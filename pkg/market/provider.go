package market

import (
	"context"
	"time"
)

// PricePoint is a single daily close. Date is normalised to midnight UTC.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// CapSource identifies which resolution strategy produced a market cap figure.
type CapSource string

const (
	// CapSourceQuote is the upstream's point-in-time market cap field.
	CapSourceQuote CapSource = "quote"
	// CapSourceProfile is the extended company-info market cap field.
	CapSourceProfile CapSource = "profile"
	// CapSourceSharesPrice is shares outstanding multiplied by last price.
	CapSourceSharesPrice CapSource = "shares_x_price"
)

// CapSnapshot is a best-effort market capitalization figure for one symbol.
type CapSnapshot struct {
	Symbol    string
	MarketCap float64 // currency units, always > 0 when the snapshot exists
	Source    CapSource
}

// Provider exposes upstream market data for listed equities.
type Provider interface {
	// DailyCloses returns at least minDays trailing calendar days of daily
	// closes for the symbol, ordered by date ascending with unique dates.
	// A symbol unknown upstream yields an empty series, not an error.
	DailyCloses(ctx context.Context, symbol string, minDays int) ([]PricePoint, error)
	// MarketCap resolves a market capitalization snapshot for the symbol.
	// A nil snapshot with nil error means no resolution strategy succeeded.
	MarketCap(ctx context.Context, symbol string) (*CapSnapshot, error)
}
