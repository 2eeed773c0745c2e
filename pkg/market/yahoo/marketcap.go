package yahoo

import (
	"context"

	"heatmap-api/pkg/market"
)

// capStrategy attempts one way of producing a market cap figure. Strategies
// report a value and whether it resolved; they never fail the resolution.
type capStrategy struct {
	source  market.CapSource
	resolve func(ctx context.Context) (float64, bool)
}

// ResolveMarketCap produces a best-effort market cap snapshot by trying an
// ordered list of strategies and short-circuiting on the first that yields a
// positive value:
//
//  1. the quote snapshot's marketCap field,
//  2. the extended summaryDetail marketCap field,
//  3. sharesOutstanding x regularMarketPrice.
//
// A nil snapshot with nil error means no strategy resolved; the symbol is
// excluded downstream rather than erred.
func (c *Client) ResolveMarketCap(ctx context.Context, symbol string) (*market.CapSnapshot, error) {
	quote, err := c.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	strategies := []capStrategy{
		{
			source: market.CapSourceQuote,
			resolve: func(context.Context) (float64, bool) {
				if quote != nil && quote.MarketCap != nil && *quote.MarketCap > 0 {
					return *quote.MarketCap, true
				}
				return 0, false
			},
		},
		{
			source: market.CapSourceProfile,
			resolve: func(ctx context.Context) (float64, bool) {
				detail, err := c.GetSummaryDetail(ctx, symbol)
				if err != nil {
					c.logger.Printf("yahoo: summary detail fallback %s: %v", symbol, err)
					return 0, false
				}
				if detail != nil && detail.MarketCap != nil && detail.MarketCap.Raw != nil && *detail.MarketCap.Raw > 0 {
					return *detail.MarketCap.Raw, true
				}
				return 0, false
			},
		},
		{
			source: market.CapSourceSharesPrice,
			resolve: func(context.Context) (float64, bool) {
				if quote == nil || quote.SharesOutstanding == nil || quote.RegularMarketPrice == nil {
					return 0, false
				}
				if *quote.SharesOutstanding <= 0 || *quote.RegularMarketPrice <= 0 {
					return 0, false
				}
				return *quote.SharesOutstanding * *quote.RegularMarketPrice, true
			},
		},
	}

	for _, strategy := range strategies {
		if value, ok := strategy.resolve(ctx); ok {
			return &market.CapSnapshot{
				Symbol:    symbol,
				MarketCap: value,
				Source:    strategy.source,
			}, nil
		}
	}
	return nil, nil
}
