package gateway

import (
	"context"
	"sync"

	"github.com/zeromicro/go-zero/core/logx"

	"heatmap-api/internal/cache"
	"heatmap-api/pkg/market"
)

const defaultWorkers = 8

// Gateway fronts a market data provider with the process-wide TTL cache and
// per-symbol failure containment: an upstream failure never aborts a batch,
// it just leaves that symbol without usable data.
type Gateway struct {
	provider market.Provider
	name     string
	memo     *cache.Memo
	ttl      cache.TTLSet
	workers  int
}

// Option customises a Gateway.
type Option func(*Gateway)

// WithWorkers bounds the per-batch fetch concurrency.
func WithWorkers(n int) Option {
	return func(g *Gateway) {
		if n > 0 {
			g.workers = n
		}
	}
}

// New constructs a gateway around the named provider.
func New(name string, provider market.Provider, ttl cache.TTLSet, opts ...Option) *Gateway {
	g := &Gateway{
		provider: provider,
		name:     name,
		memo:     cache.NewMemo(),
		ttl:      ttl,
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PriceHistory returns the (possibly cached) daily close series for symbol.
// A nil series means no usable data: either the upstream has none or the
// fetch failed; failures are logged and converted, never propagated.
func (g *Gateway) PriceHistory(ctx context.Context, symbol string, minDays int) []market.PricePoint {
	key := cache.PriceHistoryKey(g.name, symbol, minDays)
	series, err := cache.Fetch(g.memo, key, g.ttl.History, func() ([]market.PricePoint, error) {
		return g.provider.DailyCloses(ctx, symbol, minDays)
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("gateway: price history provider=%s symbol=%s err=%v", g.name, symbol, err)
		return nil
	}
	return series
}

// MarketCap returns the (possibly cached) market cap snapshot for symbol.
// Nil means unresolvable, whether upstream said so or the fetch failed.
func (g *Gateway) MarketCap(ctx context.Context, symbol string) *market.CapSnapshot {
	key := cache.MarketCapKey(g.name, symbol)
	snap, err := cache.Fetch(g.memo, key, g.ttl.Snapshot, func() (*market.CapSnapshot, error) {
		return g.provider.MarketCap(ctx, symbol)
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("gateway: market cap provider=%s symbol=%s err=%v", g.name, symbol, err)
		return nil
	}
	return snap
}

// SymbolData bundles everything the assembler needs for one instrument.
type SymbolData struct {
	Symbol  string
	History []market.PricePoint
	Cap     *market.CapSnapshot
}

// FetchAll gathers history and cap for every symbol through a bounded worker
// pool. Each symbol writes only its own slot, so the result order matches the
// input order; there is no ordering guarantee between the fetches themselves.
func (g *Gateway) FetchAll(ctx context.Context, symbols []string, minDays int) []SymbolData {
	results := make([]SymbolData, len(symbols))
	sem := make(chan struct{}, g.workers)
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = SymbolData{
				Symbol:  symbol,
				History: g.PriceHistory(ctx, symbol, minDays),
				Cap:     g.MarketCap(ctx, symbol),
			}
		}(i, symbol)
	}
	wg.Wait()
	return results
}
