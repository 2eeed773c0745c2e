package cache

import (
	"strconv"
	"strings"
	"time"

	"heatmap-api/internal/config"
)

// Namespace is the cache key prefix for the heatmap application.
const Namespace = "heatmap"

// TTLSet normalises cache TTLs from config into time.Duration values.
// Gateway data is slow-moving, so both classes default to the order of an
// hour; entries silently expire and are refetched on next access.
type TTLSet struct {
	History  time.Duration
	Snapshot time.Duration
}

// NewTTLSet converts config TTLs (in seconds) into durations.
func NewTTLSet(cfg config.CacheTTL) TTLSet {
	return TTLSet{
		History:  durationOrDefault(cfg.History, time.Hour),
		Snapshot: durationOrDefault(cfg.Snapshot, time.Hour),
	}
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds < 0 {
		return 0
	}
	if seconds == 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func formatKey(parts ...string) string {
	values := make([]string, 0, len(parts)+1)
	values = append(values, Namespace)
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		values = append(values, clean)
	}
	return strings.Join(values, ":")
}

// PriceHistoryKey identifies a cached daily close series. The requested day
// count is part of the key: a longer request is a different fetch.
func PriceHistoryKey(provider, symbol string, minDays int) string {
	return formatKey("history", provider, symbol, strconv.Itoa(minDays))
}

// MarketCapKey identifies a cached market cap snapshot.
func MarketCapKey(provider, symbol string) string {
	return formatKey("cap", provider, symbol)
}
