package logic

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"heatmap-api/internal/cache"
	"heatmap-api/internal/config"
	"heatmap-api/internal/gateway"
	"heatmap-api/internal/svc"
	"heatmap-api/internal/types"
	"heatmap-api/pkg/market"
	"heatmap-api/pkg/market/sim"
	"heatmap-api/pkg/universe"
)

// emptyProvider knows no symbols at all: every fetch succeeds but yields
// nothing usable.
type emptyProvider struct{}

func (emptyProvider) DailyCloses(ctx context.Context, symbol string, minDays int) ([]market.PricePoint, error) {
	return nil, nil
}

func (emptyProvider) MarketCap(ctx context.Context, symbol string) (*market.CapSnapshot, error) {
	return nil, nil
}

func testServiceContext(provider market.Provider) *svc.ServiceContext {
	cfg := config.Config{
		Env:                "test",
		TTL:                config.CacheTTL{History: 60, Snapshot: 60},
		HistoryPaddingDays: 65,
	}
	return &svc.ServiceContext{
		Config:   cfg,
		Universe: universe.Default(),
		Gateway:  gateway.New("test", provider, cache.NewTTLSet(cfg.TTL)),
	}
}

func fixedClock() func() time.Time {
	// A Wednesday, so the simulated provider has a session on the end date.
	return func() time.Time {
		return time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)
	}
}

func TestHeatmapBuildsDataset(t *testing.T) {
	svcCtx := testServiceContext(sim.New(sim.WithNow(fixedClock())))
	l := NewHeatmapLogic(context.Background(), svcCtx)
	l.now = fixedClock()

	resp, err := l.Heatmap(&types.HeatmapReq{Interval: "1 Month"})
	require.NoError(t, err)

	require.Equal(t, "1 Month", resp.Interval)
	require.Equal(t, 30, resp.LookbackDays)
	require.Equal(t, "2025-08-20T15:00:00Z", resp.AsOf)
	require.Empty(t, resp.Message)
	require.NotEmpty(t, resp.Rows)

	// Rows come back sorted by market cap, largest first, and the colour
	// scale bound covers every return.
	require.GreaterOrEqual(t, resp.ScaleBound, 0.01)
	for i, row := range resp.Rows {
		if i > 0 {
			require.LessOrEqual(t, row.MarketCap, resp.Rows[i-1].MarketCap)
		}
		require.Greater(t, row.MarketCap, 0.0)
		require.LessOrEqual(t, math.Abs(row.ReturnPct)/100, resp.ScaleBound+1e-9)
	}
}

func TestHeatmapSelection(t *testing.T) {
	svcCtx := testServiceContext(sim.New(sim.WithNow(fixedClock())))
	l := NewHeatmapLogic(context.Background(), svcCtx)
	l.now = fixedClock()

	resp, err := l.Heatmap(&types.HeatmapReq{Interval: "1 Week", Symbols: "garan.is, AKBNK.IS ,unknown"})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 2)
	for _, row := range resp.Rows {
		require.Contains(t, []string{"AKBNK.IS", "GARAN.IS"}, row.Symbol)
	}
}

func TestHeatmapUnknownInterval(t *testing.T) {
	svcCtx := testServiceContext(sim.New(sim.WithNow(fixedClock())))
	l := NewHeatmapLogic(context.Background(), svcCtx)

	_, err := l.Heatmap(&types.HeatmapReq{Interval: "2 Fortnights"})
	require.ErrorIs(t, err, ErrUnknownInterval)
}

func TestHeatmapEmptyDataset(t *testing.T) {
	svcCtx := testServiceContext(emptyProvider{})
	l := NewHeatmapLogic(context.Background(), svcCtx)
	l.now = fixedClock()

	resp, err := l.Heatmap(&types.HeatmapReq{Interval: "1 Month"})
	require.NoError(t, err)

	require.Empty(t, resp.Rows)
	require.Zero(t, resp.ScaleBound)
	require.NotEmpty(t, resp.Message)
}

func TestSplitSymbols(t *testing.T) {
	require.Nil(t, splitSymbols(""))
	require.Nil(t, splitSymbols("   "))
	require.Equal(t, []string{"AKBNK.IS"}, splitSymbols("AKBNK.IS"))
	require.Equal(t, []string{"AKBNK.IS", "GARAN.IS"}, splitSymbols(" AKBNK.IS ,, GARAN.IS "))
}
