package universe

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"heatmap-api/pkg/confkit"
)

// Config holds the instrument universe and the set of selectable return
// intervals. Both tables are loaded once at startup and are immutable for the
// process lifetime.
type Config struct {
	Instruments []Instrument `yaml:"instruments"`
	Intervals   []Interval   `yaml:"intervals"`

	bySymbol map[string]Instrument
	byLabel  map[string]Interval
}

// LoadConfig reads a universe configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open universe config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// MustLoad reads the universe configuration from the default project location
// and panics on error.
func MustLoad() *Config {
	path := confkit.MustProjectPath("etc/universe.yaml")
	cfg, err := LoadConfig(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfigFromReader constructs a Config from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read universe config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal universe config: %w", err)
	}
	if len(cfg.Intervals) == 0 {
		cfg.Intervals = defaultIntervals()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.buildIndexes()
	return &cfg, nil
}

// Default returns the compiled-in BIST-30 universe with the standard interval
// table.
func Default() *Config {
	cfg := &Config{
		Instruments: defaultInstruments(),
		Intervals:   defaultIntervals(),
	}
	cfg.buildIndexes()
	return cfg
}

// Validate ensures the configuration is structurally sound.
func (c *Config) Validate() error {
	if len(c.Instruments) == 0 {
		return fmt.Errorf("universe config: instruments cannot be empty")
	}
	seenSymbols := make(map[string]bool, len(c.Instruments))
	for i, inst := range c.Instruments {
		symbol := canonicalSymbol(inst.Symbol)
		if symbol == "" {
			return fmt.Errorf("universe config: instrument %d has empty symbol", i)
		}
		if seenSymbols[symbol] {
			return fmt.Errorf("universe config: duplicate symbol %s", inst.Symbol)
		}
		seenSymbols[symbol] = true
	}
	seenLabels := make(map[string]bool, len(c.Intervals))
	for _, iv := range c.Intervals {
		label := strings.TrimSpace(iv.Label)
		if label == "" {
			return fmt.Errorf("universe config: interval label cannot be empty")
		}
		if seenLabels[label] {
			return fmt.Errorf("universe config: duplicate interval label %s", iv.Label)
		}
		seenLabels[label] = true
		if iv.Days <= 0 {
			return fmt.Errorf("universe config: interval %s must have positive days, got %d", iv.Label, iv.Days)
		}
	}
	return nil
}

func (c *Config) buildIndexes() {
	c.bySymbol = make(map[string]Instrument, len(c.Instruments))
	for _, inst := range c.Instruments {
		c.bySymbol[canonicalSymbol(inst.Symbol)] = inst
	}
	c.byLabel = make(map[string]Interval, len(c.Intervals))
	for _, iv := range c.Intervals {
		c.byLabel[strings.TrimSpace(iv.Label)] = iv
	}
}

func defaultIntervals() []Interval {
	return []Interval{
		{Label: "1 Day", Days: 1},
		{Label: "1 Week", Days: 7},
		{Label: "1 Month", Days: 30},
		{Label: "3 Months", Days: 90},
		{Label: "6 Months", Days: 180},
		{Label: "1 Year", Days: 365},
	}
}

func defaultInstruments() []Instrument {
	return []Instrument{
		{Symbol: "AKBNK.IS", Name: "Akbank"},
		{Symbol: "ARCLK.IS", Name: "Arçelik"},
		{Symbol: "ASELS.IS", Name: "Aselsan"},
		{Symbol: "BIMAS.IS", Name: "BİM"},
		{Symbol: "EKGYO.IS", Name: "Emlak Konut"},
		{Symbol: "EREGL.IS", Name: "Ereğli Demir Çelik"},
		{Symbol: "FROTO.IS", Name: "Ford Otosan"},
		{Symbol: "GARAN.IS", Name: "Garanti BBVA"},
		{Symbol: "HEKTS.IS", Name: "Hektaş"},
		{Symbol: "ISCTR.IS", Name: "İş Bankası (C)"},
		{Symbol: "KCHOL.IS", Name: "Koç Holding"},
		{Symbol: "KRDMD.IS", Name: "Kardemir (D)"},
		{Symbol: "KOZAL.IS", Name: "Koza Altın"},
		{Symbol: "PETKM.IS", Name: "Petkim"},
		{Symbol: "PGSUS.IS", Name: "Pegasus"},
		{Symbol: "SAHOL.IS", Name: "Sabancı Holding"},
		{Symbol: "SASA.IS", Name: "SASA Polyester"},
		{Symbol: "SISE.IS", Name: "Şişecam"},
		{Symbol: "TAVHL.IS", Name: "TAV Havalimanları"},
		{Symbol: "TCELL.IS", Name: "Turkcell"},
		{Symbol: "THYAO.IS", Name: "Türk Hava Yolları"},
		{Symbol: "TOASO.IS", Name: "Tofaş"},
		{Symbol: "TTKOM.IS", Name: "Türk Telekom"},
		{Symbol: "TTRAK.IS", Name: "Türk Traktör"},
		{Symbol: "TUPRS.IS", Name: "Tüpraş"},
		{Symbol: "VESTL.IS", Name: "Vestel"},
		{Symbol: "YKBNK.IS", Name: "Yapı Kredi"},
		{Symbol: "ALARK.IS", Name: "Alarko Holding"},
		{Symbol: "AGHOL.IS", Name: "AG Anadolu Grubu"},
		{Symbol: "KONTR.IS", Name: "Kontrolmatik"},
	}
}
