package universe

import "strings"

// Instrument pairs an exchange symbol with its display name.
type Instrument struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// Interval maps a human-readable label to a calendar-day lookback count.
// Calendar days, not trading sessions: a "1 Month" window spans 30 days on
// the calendar regardless of how many of them the market was open.
type Interval struct {
	Label string `yaml:"label"`
	Days  int    `yaml:"days"`
}

func canonicalSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// InstrumentBySymbol looks up an instrument by its (case-insensitive) symbol.
func (c *Config) InstrumentBySymbol(symbol string) (Instrument, bool) {
	inst, ok := c.bySymbol[canonicalSymbol(symbol)]
	return inst, ok
}

// IntervalByLabel looks up an interval by its exact label.
func (c *Config) IntervalByLabel(label string) (Interval, bool) {
	iv, ok := c.byLabel[strings.TrimSpace(label)]
	return iv, ok
}

// Symbols returns all universe symbols in declaration order.
func (c *Config) Symbols() []string {
	symbols := make([]string, 0, len(c.Instruments))
	for _, inst := range c.Instruments {
		symbols = append(symbols, inst.Symbol)
	}
	return symbols
}

// Select filters the universe down to the requested symbols, preserving the
// universe's declaration order and ignoring duplicates and unknown symbols.
// An empty selection means the whole universe.
func (c *Config) Select(symbols []string) []Instrument {
	if len(symbols) == 0 {
		out := make([]Instrument, len(c.Instruments))
		copy(out, c.Instruments)
		return out
	}
	wanted := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		if canonical := canonicalSymbol(s); canonical != "" {
			wanted[canonical] = true
		}
	}
	out := make([]Instrument, 0, len(wanted))
	for _, inst := range c.Instruments {
		if wanted[canonicalSymbol(inst.Symbol)] {
			out = append(out, inst)
		}
	}
	return out
}
