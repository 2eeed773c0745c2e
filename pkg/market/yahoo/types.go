package yahoo

// apiError is the error object Yahoo embeds in every response envelope.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// formattedValue mirrors Yahoo's wrapped numeric fields, e.g. {"raw": 1.2e9, "fmt": "1.2B"}.
type formattedValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

// chartResponse mirrors the v8 chart endpoint payload. Only the fields the
// provider consumes are declared; everything else in the payload is ignored.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Symbol             string  `json:"symbol"`
		Currency           string  `json:"currency"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			// Close entries are null for sessions without a print.
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

// quoteResponse mirrors the v7 quote endpoint payload.
type quoteResponse struct {
	QuoteResponse struct {
		Result []Quote   `json:"result"`
		Error  *apiError `json:"error"`
	} `json:"quoteResponse"`
}

// Quote carries the per-symbol snapshot fields used for cap resolution.
// All of them are optional upstream.
type Quote struct {
	Symbol             string   `json:"symbol"`
	Currency           string   `json:"currency"`
	MarketCap          *float64 `json:"marketCap"`
	SharesOutstanding  *float64 `json:"sharesOutstanding"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
}

// quoteSummaryResponse mirrors the v10 quoteSummary endpoint payload for the
// summaryDetail module.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail *SummaryDetail `json:"summaryDetail"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

// SummaryDetail is the slice of the extended company info used here.
type SummaryDetail struct {
	MarketCap *formattedValue `json:"marketCap"`
}
