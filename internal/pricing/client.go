// Package pricing calls the external pricing-analysis service. The
// store-specific scraping and estimation live behind that service; this
// client only ships the demand list out and maps the response back onto
// core types. A failed fetch degrades to "no prices", never an outage.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"grocery-planner/internal/core"
)

// ErrUnavailable wraps every transport or decode failure so callers can
// collapse them into a single "prices unavailable" state.
var ErrUnavailable = errors.New("pricing service unavailable")

const (
	defaultTimeout = 10 * time.Second
	maxAttempts    = 2 // one retry
)

// Client fetches multi-store price quotes for a grocery list.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a pricing client for the given service base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type requestItem struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type analysisRequest struct {
	Zipcode string        `json:"zipcode"`
	Items   []requestItem `json:"items"`
}

type storeResponse struct {
	Name        string           `json:"name"`
	ItemPrices  []core.ItemPrice `json:"item_prices"`
	Total       json.Number      `json:"total"`
	DeliveryFee json.Number      `json:"delivery_fee"`
}

// FetchAnalysis posts the demand list and zipcode to the pricing
// service and returns per-store quotes and totals. Stores the service
// has no data for are absent from the report. The request times out
// after the client timeout and is retried once before giving up with
// an error wrapping ErrUnavailable.
func (c *Client) FetchAnalysis(ctx context.Context, lines []core.DemandLine, zipcode string) (core.PricingReport, error) {
	if len(lines) == 0 {
		return core.PricingReport{}, nil
	}
	if zipcode == "" {
		return nil, fmt.Errorf("zipcode required for pricing analysis: %w", ErrUnavailable)
	}

	req := analysisRequest{Zipcode: zipcode, Items: make([]requestItem, 0, len(lines))}
	for _, line := range lines {
		req.Items = append(req.Items, requestItem{
			Name:   line.Name,
			Amount: line.Amount.String(),
			Unit:   line.Unit,
		})
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pricing request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		report, err := c.post(ctx, body)
		if err == nil {
			return report, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("pricing analysis failed after %d attempts: %w: %w", maxAttempts, ErrUnavailable, lastErr)
}

func (c *Client) post(ctx context.Context, body []byte) (core.PricingReport, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build pricing request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("pricing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("pricing service returned status %d", resp.StatusCode)
	}

	var raw map[string]storeResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode pricing response: %w", err)
	}

	report := make(core.PricingReport, len(raw))
	for storeKey, sr := range raw {
		store := core.Store(storeKey)
		if !core.ValidStore(store) {
			continue
		}
		quote := core.StoreQuote{Name: sr.Name, ItemPrices: sr.ItemPrices}
		if quote.Name == "" {
			quote.Name = store.Label()
		}
		if quote.Total, err = decimalFromNumber(sr.Total); err != nil {
			return nil, fmt.Errorf("invalid total for %s: %w", store, err)
		}
		if quote.DeliveryFee, err = decimalFromNumber(sr.DeliveryFee); err != nil {
			return nil, fmt.Errorf("invalid delivery fee for %s: %w", store, err)
		}
		report[store] = quote
	}
	return report, nil
}

// decimalFromNumber parses a JSON number, treating absent values as 0.
func decimalFromNumber(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}
