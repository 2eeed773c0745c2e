package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"heatmap-api/pkg/market"
)

const (
	defaultBaseURL          = "https://query1.finance.yahoo.com"
	defaultHTTPTimeout      = 10 * time.Second
	defaultMaxRetries       = 3
	defaultRetryBackoffBase = 150 * time.Millisecond
	defaultUserAgent        = "Mozilla/5.0 (compatible; heatmap-api/1.0)"
)

// ErrMalformedPayload indicates the upstream response could not be interpreted.
var ErrMalformedPayload = errors.New("yahoo: malformed payload")

// Client wraps access to the Yahoo Finance query endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	logger     *log.Logger
}

// Option configures a new Client.
type Option func(*Client)

// WithHTTPClient injects a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the default query endpoint URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithMaxRetries adjusts the retry budget.
func WithMaxRetries(max int) Option {
	return func(c *Client) {
		if max >= 0 {
			c.maxRetries = max
		}
	}
}

// WithLogger injects a custom logger (defaults to log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient constructs a Yahoo Finance API client.
func NewClient(opts ...Option) *Client {
	httpClient := &http.Client{Timeout: defaultHTTPTimeout}
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
		maxRetries: defaultMaxRetries,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = httpClient
	}
	if client.logger == nil {
		client.logger = log.Default()
	}
	return client
}

// doRequest issues a GET against path with the supplied query parameters and
// decodes the response into result, retrying transient failures with
// exponential backoff.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, result interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	var lastErr error
	backoff := defaultRetryBackoffBase
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("yahoo: build request: %w", err)
		}
		httpReq.Header.Set("Accept", "application/json")
		httpReq.Header.Set("User-Agent", defaultUserAgent)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
		} else {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("yahoo: read response: %w", readErr)
			} else if resp.StatusCode == http.StatusNotFound {
				// Unknown symbols come back as 404 with a JSON error envelope;
				// callers translate the envelope, so decode it like a success.
				if result != nil {
					if err := json.Unmarshal(body, result); err != nil {
						return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
					}
				}
				return nil
			} else if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = fmt.Errorf("yahoo: http status %d: %s", resp.StatusCode, string(body))
			} else {
				if result != nil {
					if err := json.Unmarshal(body, result); err != nil {
						return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
					}
				}
				return nil
			}
		}

		if attempt < c.maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
			}
			continue
		}
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("yahoo: request failed after %d attempts", c.maxRetries+1)
}

// GetDailyCloses fetches at least minDays trailing calendar days of daily
// closes for the symbol. Sessions without a close are dropped. A symbol with
// no data upstream yields an empty series, not an error.
func (c *Client) GetDailyCloses(ctx context.Context, symbol string, minDays int) ([]market.PricePoint, error) {
	if minDays <= 0 {
		return nil, fmt.Errorf("yahoo: minDays must be positive")
	}
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("yahoo: symbol is required")
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -minDays)

	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("period1", fmt.Sprintf("%d", start.Unix()))
	query.Set("period2", fmt.Sprintf("%d", end.Unix()))

	var response chartResponse
	if err := c.doRequest(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query, &response); err != nil {
		return nil, err
	}
	if response.Chart.Error != nil {
		// "No data found, symbol may be delisted" and friends: the symbol is
		// simply excluded downstream, so report an empty series.
		c.logger.Printf("yahoo: chart %s: %s (%s)", symbol, response.Chart.Error.Description, response.Chart.Error.Code)
		return nil, nil
	}
	if len(response.Chart.Result) == 0 {
		return nil, nil
	}

	result := response.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	closes := result.Indicators.Quote[0].Close
	if len(result.Timestamp) != len(closes) {
		return nil, fmt.Errorf("%w: %d timestamps vs %d closes for %s", ErrMalformedPayload, len(result.Timestamp), len(closes), symbol)
	}

	byDate := make(map[time.Time]float64, len(closes))
	for i, ts := range result.Timestamp {
		if closes[i] == nil || *closes[i] <= 0 {
			continue
		}
		date := time.Unix(ts, 0).UTC().Truncate(24 * time.Hour)
		// Intraday refreshes repeat the current session; the last print wins.
		byDate[date] = *closes[i]
	}

	points := make([]market.PricePoint, 0, len(byDate))
	for date, close := range byDate {
		points = append(points, market.PricePoint{Date: date, Close: close})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

// GetQuote fetches the snapshot quote for one symbol. A nil quote with nil
// error means the upstream knows nothing about the symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("yahoo: symbol is required")
	}

	query := url.Values{}
	query.Set("symbols", symbol)

	var response quoteResponse
	if err := c.doRequest(ctx, "/v7/finance/quote", query, &response); err != nil {
		return nil, err
	}
	if response.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo: quote %s: %s (%s)", symbol, response.QuoteResponse.Error.Description, response.QuoteResponse.Error.Code)
	}
	if len(response.QuoteResponse.Result) == 0 {
		return nil, nil
	}
	quote := response.QuoteResponse.Result[0]
	return &quote, nil
}

// GetSummaryDetail fetches the extended company info module for one symbol.
// A nil detail with nil error means the module is absent upstream.
func (c *Client) GetSummaryDetail(ctx context.Context, symbol string) (*SummaryDetail, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("yahoo: symbol is required")
	}

	query := url.Values{}
	query.Set("modules", "summaryDetail")

	var response quoteSummaryResponse
	if err := c.doRequest(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), query, &response); err != nil {
		return nil, err
	}
	if response.QuoteSummary.Error != nil {
		c.logger.Printf("yahoo: quoteSummary %s: %s (%s)", symbol, response.QuoteSummary.Error.Description, response.QuoteSummary.Error.Code)
		return nil, nil
	}
	if len(response.QuoteSummary.Result) == 0 {
		return nil, nil
	}
	return response.QuoteSummary.Result[0].SummaryDetail, nil
}
