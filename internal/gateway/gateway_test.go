package gateway

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"heatmap-api/internal/cache"
	"heatmap-api/pkg/market"
)

// fakeProvider scripts per-symbol behaviour and counts provider calls.
type fakeProvider struct {
	historyCalls int32
	capCalls     int32

	series map[string][]market.PricePoint
	caps   map[string]*market.CapSnapshot
	fail   map[string]error
}

func (f *fakeProvider) DailyCloses(ctx context.Context, symbol string, minDays int) ([]market.PricePoint, error) {
	atomic.AddInt32(&f.historyCalls, 1)
	if err := f.fail[symbol]; err != nil {
		return nil, err
	}
	return f.series[symbol], nil
}

func (f *fakeProvider) MarketCap(ctx context.Context, symbol string) (*market.CapSnapshot, error) {
	atomic.AddInt32(&f.capCalls, 1)
	if err := f.fail[symbol]; err != nil {
		return nil, err
	}
	return f.caps[symbol], nil
}

func testTTL() cache.TTLSet {
	return cache.TTLSet{History: time.Minute, Snapshot: time.Minute}
}

func somePoints() []market.PricePoint {
	return []market.PricePoint{
		{Date: time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC), Close: 100},
		{Date: time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC), Close: 110},
	}
}

func TestGatewayCachesPriceHistory(t *testing.T) {
	provider := &fakeProvider{series: map[string][]market.PricePoint{"AKBNK.IS": somePoints()}}
	g := New("test", provider, testTTL())

	ctx := context.Background()
	first := g.PriceHistory(ctx, "AKBNK.IS", 95)
	second := g.PriceHistory(ctx, "AKBNK.IS", 95)

	require.Len(t, first, 2)
	require.Equal(t, first, second)
	require.Equal(t, int32(1), atomic.LoadInt32(&provider.historyCalls))

	// A different day count is a different fetch.
	g.PriceHistory(ctx, "AKBNK.IS", 430)
	require.Equal(t, int32(2), atomic.LoadInt32(&provider.historyCalls))
}

func TestGatewayContainsFailures(t *testing.T) {
	provider := &fakeProvider{fail: map[string]error{"BAD.IS": errors.New("connection reset")}}
	g := New("test", provider, testTTL())

	ctx := context.Background()
	require.Nil(t, g.PriceHistory(ctx, "BAD.IS", 95))
	require.Nil(t, g.MarketCap(ctx, "BAD.IS"))

	// Failures are not cached: the next call hits the provider again.
	provider.fail = map[string]error{}
	provider.series = map[string][]market.PricePoint{"BAD.IS": somePoints()}
	require.Len(t, g.PriceHistory(ctx, "BAD.IS", 95), 2)
}

func TestGatewayMarketCapUnavailable(t *testing.T) {
	provider := &fakeProvider{} // knows nothing about any symbol
	g := New("test", provider, testTTL())

	snap := g.MarketCap(context.Background(), "AKBNK.IS")
	require.Nil(t, snap)
	// Unavailability from a successful fetch is cached like any result.
	g.MarketCap(context.Background(), "AKBNK.IS")
	require.Equal(t, int32(1), atomic.LoadInt32(&provider.capCalls))
}

func TestGatewayFetchAll(t *testing.T) {
	provider := &fakeProvider{
		series: map[string][]market.PricePoint{
			"AKBNK.IS": somePoints(),
			"GARAN.IS": somePoints(),
		},
		caps: map[string]*market.CapSnapshot{
			"AKBNK.IS": {Symbol: "AKBNK.IS", MarketCap: 302e9, Source: market.CapSourceQuote},
		},
		fail: map[string]error{"BAD.IS": errors.New("timeout")},
	}
	g := New("test", provider, testTTL(), WithWorkers(2))

	results := g.FetchAll(context.Background(), []string{"AKBNK.IS", "BAD.IS", "GARAN.IS"}, 95)
	require.Len(t, results, 3)

	// Slots line up with the requested symbols regardless of fetch order.
	require.Equal(t, "AKBNK.IS", results[0].Symbol)
	require.Equal(t, "BAD.IS", results[1].Symbol)
	require.Equal(t, "GARAN.IS", results[2].Symbol)

	require.Len(t, results[0].History, 2)
	require.NotNil(t, results[0].Cap)

	// The failing symbol degrades to no data; the batch is unaffected.
	require.Nil(t, results[1].History)
	require.Nil(t, results[1].Cap)
	require.Len(t, results[2].History, 2)
	require.Nil(t, results[2].Cap)
}
