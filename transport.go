package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/neoctobers/etherscan-go/internal/httpcache"
)

const (
	userAgent = "etherscan-go - client for etherscan.io (github.com/neoctobers/etherscan-go)"

	// statusFailure is the vendor's soft-failure sentinel: the call
	// produced valid JSON but the vendor flagged an application-level
	// problem. The result payload is still returned to the caller.
	statusFailure = "0"
)

// Doer executes an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// envelope is the vendor response wrapper. Proxy actions answer with a
// JSON-RPC envelope instead, which carries no status field; a missing
// status reads as success.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// transport issues form-encoded POST calls to the API endpoint and
// caches raw response bodies keyed by the full outgoing request. A
// transport is shared by every module client of one root Client.
type transport struct {
	doer   Doer
	apiURL string
	store  httpcache.Store
	ttl    time.Duration
}

func (t *transport) post(ctx context.Context, params url.Values) (json.RawMessage, error) {
	body := params.Encode()
	cacheKey := http.MethodPost + " " + t.apiURL + " " + body

	raw, cached := t.store.Get(cacheKey)
	if !cached {
		fetched, err := t.fetch(ctx, body)
		if err != nil {
			return nil, err
		}
		raw = fetched
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}

	if !cached {
		if err := t.store.Set(cacheKey, raw, time.Now().Add(t.ttl)); err != nil {
			slog.WarnContext(ctx, "Failed to cache API response", "error", err)
		}
	}

	if env.Status == statusFailure {
		slog.WarnContext(ctx, "Etherscan reported a failure", "message", env.Message)
	}

	return env.Result, nil
}

func (t *transport) fetch(ctx context.Context, body string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := t.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute API request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("etherscan API returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read API response: %w", err)
	}

	return raw, nil
}
