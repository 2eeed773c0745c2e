package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"heatmap-api/pkg/market"
)

// newMockYahooServerWithoutSummary exposes a quote with shares and price but
// no cap field anywhere, forcing the shares x price strategy.
func newMockYahooServerWithoutSummary(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/v7/finance/quote" {
			_, _ = w.Write([]byte(`{
				"quoteResponse": {
					"result": [{"symbol": "NOCAP.IS", "sharesOutstanding": 1000000, "regularMarketPrice": 40.0}],
					"error": null
				}
			}`))
			return
		}
		_, _ = w.Write([]byte(`{"quoteSummary": {"result": [], "error": null}}`))
	}))
	client := NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()), WithMaxRetries(0))
	return server, client
}

func TestResolveMarketCapQuoteField(t *testing.T) {
	server, client := newMockYahooServer(t)
	defer server.Close()

	snap, err := client.ResolveMarketCap(context.Background(), "AKBNK.IS")
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, market.CapSourceQuote, snap.Source)
	require.InDelta(t, 302e9, snap.MarketCap, 1)
}

func TestResolveMarketCapProfileFallback(t *testing.T) {
	server, client := newMockYahooServer(t)
	defer server.Close()

	// NOCAP.IS has no quote marketCap but the summaryDetail module has one;
	// the profile strategy must win over shares x price.
	snap, err := client.ResolveMarketCap(context.Background(), "NOCAP.IS")
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, market.CapSourceProfile, snap.Source)
	require.InDelta(t, 55e6, snap.MarketCap, 1)
}

func TestResolveMarketCapSharesTimesPrice(t *testing.T) {
	server, client := newMockYahooServerWithoutSummary(t)
	defer server.Close()

	snap, err := client.ResolveMarketCap(context.Background(), "NOCAP.IS")
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, market.CapSourceSharesPrice, snap.Source)
	require.InDelta(t, 40e6, snap.MarketCap, 1)
}

func TestResolveMarketCapUnavailable(t *testing.T) {
	server, client := newMockYahooServer(t)
	defer server.Close()

	// BARE.IS only exposes a price: no cap field, no profile, no shares.
	snap, err := client.ResolveMarketCap(context.Background(), "BARE.IS")
	require.NoError(t, err)
	require.Nil(t, snap)

	// Symbols unknown upstream resolve to unavailable as well.
	snap, err = client.ResolveMarketCap(context.Background(), "UNKNOWN.IS")
	require.NoError(t, err)
	require.Nil(t, snap)
}
