package pricingadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HTTPQuoter asks a remote pricing service for quotes. The service answers
// GET {base}/api/v1/price-quote?totalDays=N&currency=C with
// {"totalPrice": <number>}.
type HTTPQuoter struct {
	base   string
	client *http.Client
}

func NewHTTPQuoter(baseURL string, timeout time.Duration) *HTTPQuoter {
	return &HTTPQuoter{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

type quoteResp struct {
	TotalPrice *decimal.Decimal `json:"totalPrice"`
}

func (q *HTTPQuoter) Quote(ctx context.Context, totalDays int, currency string) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("totalDays", strconv.Itoa(totalDays))
	params.Set("currency", currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.base+"/api/v1/price-quote?"+params.Encode(), nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := q.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price quote request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, fmt.Errorf("price quote: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out quoteResp
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return decimal.Zero, fmt.Errorf("decode price quote: %w", err)
	}
	if out.TotalPrice == nil {
		return decimal.Zero, fmt.Errorf("price quote: missing totalPrice")
	}
	return *out.TotalPrice, nil
}
