package sim

import (
	"context"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"heatmap-api/pkg/market"
)

const historyBufferDays = 10

// Provider generates deterministic synthetic market data, keyed off the
// symbol name, for offline development and tests. The same symbol always
// yields the same price path and market cap for a given day.
type Provider struct {
	now func() time.Time
}

// ProviderOption customises the simulated provider.
type ProviderOption func(*Provider)

// WithNow overrides the clock, anchoring the generated history.
func WithNow(now func() time.Time) ProviderOption {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// New constructs a simulated market data provider.
func New(opts ...ProviderOption) *Provider {
	p := &Provider{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func init() {
	market.RegisterProvider("sim", func(name string, cfg *market.ProviderConfig) (market.Provider, error) {
		return New(), nil
	})
}

func symbolSeed(symbol string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToUpper(strings.TrimSpace(symbol))))
	return int64(h.Sum64())
}

// DailyCloses implements market.Provider with a seeded random walk over
// weekday sessions ending today.
func (p *Provider) DailyCloses(ctx context.Context, symbol string, minDays int) ([]market.PricePoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seed := symbolSeed(symbol)
	rng := rand.New(rand.NewSource(seed))
	price := 10 + float64(uint64(seed)%490)

	end := p.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(minDays + historyBufferDays))

	points := make([]market.PricePoint, 0, minDays+historyBufferDays)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		// The walk advances every calendar day so paths stay anchored to the
		// seed, but only weekday sessions produce a close.
		step := 1 + (rng.Float64()-0.5)*0.04
		price *= step
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		points = append(points, market.PricePoint{Date: date, Close: price})
	}
	return points, nil
}

// MarketCap implements market.Provider with a deterministic shares x price
// figure derived from the symbol seed.
func (p *Provider) MarketCap(ctx context.Context, symbol string) (*market.CapSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	series, err := p.DailyCloses(ctx, symbol, 1)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, nil
	}
	shares := 1e8 + float64(uint64(symbolSeed(symbol))%9)*1e8
	last := series[len(series)-1].Close
	return &market.CapSnapshot{
		Symbol:    symbol,
		MarketCap: shares * last,
		Source:    market.CapSourceSharesPrice,
	}, nil
}
