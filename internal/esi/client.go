package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const pagesHeader = "X-Pages"

// APIError is a non-2xx response from the wallet API.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("esi: %s returned %d: %s", e.Path, e.StatusCode, e.Body)
}

// Unauthorized reports whether the token was rejected.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Client talks to ESI over HTTP.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

var _ WalletAPI = (*Client)(nil)

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) ListDivisions(ctx context.Context, accountID int64, token string) ([]DivisionRecord, error) {
	var response divisionsResponse
	path := fmt.Sprintf("/corporations/%d/divisions/", accountID)
	if _, err := c.get(ctx, path, nil, token, &response); err != nil {
		return nil, err
	}
	return response.Wallet, nil
}

func (c *Client) ListBalances(ctx context.Context, accountID int64, token string) ([]BalanceRecord, error) {
	var response []BalanceRecord
	path := fmt.Sprintf("/corporations/%d/wallets/", accountID)
	if _, err := c.get(ctx, path, nil, token, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) ListJournalEntries(ctx context.Context, accountID int64, division int, token string) iter.Seq2[JournalRecord, error] {
	path := fmt.Sprintf("/corporations/%d/wallets/%d/journal/", accountID, division)

	return func(yield func(JournalRecord, error) bool) {
		for page, pages := 1, 1; page <= pages; page++ {
			var records []JournalRecord
			query := url.Values{"page": []string{strconv.Itoa(page)}}

			total, err := c.get(ctx, path, query, token, &records)
			if err != nil {
				yield(JournalRecord{}, err)
				return
			}
			pages = total

			for _, record := range records {
				if !yield(record, nil) {
					return
				}
			}
		}
	}
}

// get decodes the response into out and returns the X-Pages count,
// defaulting to 1 when the header is missing.
func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out any) (int, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("esi: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, &APIError{StatusCode: resp.StatusCode, Path: path, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, fmt.Errorf("esi: decode %s: %w", path, err)
	}

	pages := 1
	if header := resp.Header.Get(pagesHeader); header != "" {
		parsed, err := strconv.Atoi(header)
		if err != nil {
			return 0, fmt.Errorf("esi: invalid %s header %q", pagesHeader, header)
		}
		if parsed > 0 {
			pages = parsed
		}
	}
	return pages, nil
}
