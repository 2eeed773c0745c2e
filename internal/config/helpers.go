package config

import (
	"heatmap-api/pkg/market"
	"heatmap-api/pkg/universe"
)

// MustLoadMarket loads etc/market.yaml from the project root and panics on error.
// It isolates market config so tools and tests don't need the full app config.
func MustLoadMarket() *market.Config {
	return market.MustLoad()
}

// MustLoadUniverse loads etc/universe.yaml from the project root and panics on error.
func MustLoadUniverse() *universe.Config {
	return universe.MustLoad()
}
