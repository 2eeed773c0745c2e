package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"heatmap-api/internal/config"
)

func TestKeyFormat(t *testing.T) {
	require.Equal(t, "heatmap:history:yahoo:AKBNK.IS:430", PriceHistoryKey("yahoo", "AKBNK.IS", 430))
	require.Equal(t, "heatmap:cap:yahoo:AKBNK.IS", MarketCapKey("yahoo", "AKBNK.IS"))
	// Blank parts collapse instead of producing empty segments.
	require.Equal(t, "heatmap:cap:AKBNK.IS", MarketCapKey("  ", "AKBNK.IS"))
}

func TestKeySeparatesRequests(t *testing.T) {
	require.NotEqual(t,
		PriceHistoryKey("yahoo", "AKBNK.IS", 95),
		PriceHistoryKey("yahoo", "AKBNK.IS", 430))
	require.NotEqual(t,
		PriceHistoryKey("yahoo", "AKBNK.IS", 95),
		PriceHistoryKey("sim", "AKBNK.IS", 95))
}

func TestNewTTLSet(t *testing.T) {
	ttl := NewTTLSet(config.CacheTTL{History: 120, Snapshot: 60})
	require.Equal(t, 2*time.Minute, ttl.History)
	require.Equal(t, time.Minute, ttl.Snapshot)

	defaults := NewTTLSet(config.CacheTTL{})
	require.Equal(t, time.Hour, defaults.History)
	require.Equal(t, time.Hour, defaults.Snapshot)
}
