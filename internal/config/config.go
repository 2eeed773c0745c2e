package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"heatmap-api/pkg/confkit"
	marketpkg "heatmap-api/pkg/market"
	universepkg "heatmap-api/pkg/universe"
)

// defaultTTLSeconds is applied to any TTL left unset; gateway data is
// slow-moving, so an hour is the baseline.
const defaultTTLSeconds = 3600

// CacheTTL bounds how long gateway results live in the process-wide cache,
// in seconds.
type CacheTTL struct {
	History  int `json:",default=3600"`
	Snapshot int `json:",default=3600"`
}

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod.
	Env string   `json:",default=dev"`
	TTL CacheTTL `json:",optional"`

	// HistoryPaddingDays is added to the selected lookback when requesting
	// price history, so holidays and weekends before the target date still
	// leave a usable past close.
	HistoryPaddingDays int `json:",default=65"`

	Market   confkit.Section[marketpkg.Config]   `json:",optional"`
	Universe confkit.Section[universepkg.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test" || c.Env == ""
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.hydrateSections(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "dev"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if c.HistoryPaddingDays < 0 {
		return errors.New("config: historyPaddingDays cannot be negative")
	}
	return c.validateTTL()
}

func (c *Config) validateTTL() error {
	// The struct tag defaults only fire when a TTL block is present; an
	// omitted block leaves zero values, which get the same defaults here.
	if c.TTL.History == 0 {
		c.TTL.History = defaultTTLSeconds
	}
	if c.TTL.Snapshot == 0 {
		c.TTL.Snapshot = defaultTTLSeconds
	}
	if c.TTL.History < 0 {
		return errors.New("config: ttl.history must be positive")
	}
	if c.TTL.Snapshot < 0 {
		return errors.New("config: ttl.snapshot must be positive")
	}
	return nil
}

func (c *Config) hydrateSections() error {
	base := c.baseDir

	if err := c.Market.Hydrate(base, marketpkg.LoadConfig); err != nil {
		return fmt.Errorf("load market config: %w", err)
	}
	if err := c.Universe.Hydrate(base, universepkg.LoadConfig); err != nil {
		return fmt.Errorf("load universe config: %w", err)
	}

	return nil
}

func (c *Config) MainPath() string {
	return c.mainPath
}

func (c *Config) BaseDir() string {
	return c.baseDir
}
