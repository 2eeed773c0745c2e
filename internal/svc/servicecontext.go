package svc

import (
	"log"

	"heatmap-api/internal/cache"
	"heatmap-api/internal/config"
	"heatmap-api/internal/gateway"
	marketpkg "heatmap-api/pkg/market"
	_ "heatmap-api/pkg/market/sim"   // register sim provider
	_ "heatmap-api/pkg/market/yahoo" // register yahoo provider
	universepkg "heatmap-api/pkg/universe"
)

type ServiceContext struct {
	Config config.Config

	Universe *universepkg.Config

	MarketConfig    *marketpkg.Config
	MarketProviders map[string]marketpkg.Provider

	Gateway *gateway.Gateway
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	if c.Universe.Value != nil {
		svc.Universe = c.Universe.Value
	} else {
		svc.Universe = universepkg.Default()
	}

	marketCfg := c.Market.Value
	if marketCfg == nil {
		// Without a market config the service still runs, against the
		// offline simulator.
		marketCfg = &marketpkg.Config{
			Default:   "sim",
			Providers: map[string]*marketpkg.ProviderConfig{"sim": {Type: "sim"}},
		}
	}

	providers, err := marketCfg.BuildProviders()
	if err != nil {
		log.Fatalf("failed to build market providers: %v", err)
	}
	svc.MarketConfig = marketCfg
	svc.MarketProviders = providers

	defaultName := marketCfg.Default
	if defaultName == "" {
		if len(providers) != 1 {
			log.Fatalf("market config has %d providers and no default", len(providers))
		}
		for name := range providers {
			defaultName = name
		}
	}

	svc.Gateway = gateway.New(defaultName, providers[defaultName], cache.NewTTLSet(c.TTL))
	return svc
}
