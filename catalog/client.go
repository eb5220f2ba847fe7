package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/neptune-labs/neptune-intents-hub/huberr"
)

var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// SetLogger overrides the package logger.
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}

// DefaultTTL is how long a fetched token list stays fresh.
const DefaultTTL = 6 * time.Hour

// Client fetches the supported token list and caches it. A stale
// cache is served when a refresh fails, so a flapping upstream does
// not take down quoting.
type Client struct {
	httpClient *http.Client
	baseURL    string
	ttl        time.Duration

	mu        sync.Mutex
	cached    Snapshot
	fetchedAt time.Time
}

// NewClient builds a catalog client for the given API base URL.
func NewClient(apiURL string, ttl time.Duration) (*Client, error) {
	if _, err := url.Parse(apiURL); err != nil {
		return nil, fmt.Errorf("parse catalog API URL: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(apiURL, "/"),
		ttl:        ttl,
	}, nil
}

// tokenItem mirrors one entry of the GET /v0/tokens response.
type tokenItem struct {
	AssetID         string `json:"assetId"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	Decimals        *int32 `json:"decimals"`
	ContractAddress string `json:"contractAddress"`
	Blockchain      string `json:"blockchain"`
}

// Tokens returns the current token snapshot, refreshing it from the
// API when the cache has expired.
func (c *Client) Tokens(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached.Len() > 0 && time.Since(c.fetchedAt) < c.ttl {
		return c.cached, nil
	}

	snap, err := c.fetch(ctx)
	if err != nil {
		if c.cached.Len() > 0 {
			Logger.Warn().Err(err).Msg("token list refresh failed, serving stale cache")
			return c.cached, nil
		}
		return Snapshot{}, huberr.Wrap(huberr.CodeCatalogUnavailable, err, "can't get supported tokens for now")
	}

	c.cached = snap
	c.fetchedAt = time.Now()
	Logger.Info().Int("tokens", snap.Len()).Msg("token list refreshed")
	return snap, nil
}

// Invalidate drops the cache so the next Tokens call refetches.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.cached = Snapshot{}
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

func (c *Client) fetch(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v0/tokens", nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build token list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch token list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Snapshot{}, fmt.Errorf("token list request returned %d: %s", resp.StatusCode, string(body))
	}

	var items []tokenItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return Snapshot{}, fmt.Errorf("decode token list: %w", err)
	}

	tokens := make([]Token, 0, len(items))
	for _, item := range items {
		if item.AssetID == "" || item.Symbol == "" {
			continue
		}
		symbol := item.Symbol
		// WNEAR listings fold into NEAR so users see one asset.
		if up := strings.ToUpper(symbol); up == "WNEAR" || up == "NEAR" {
			symbol = "NEAR"
		}
		name := item.Name
		if name == "" {
			name = symbol
		}
		decimals := int32(18)
		if item.Decimals != nil {
			decimals = *item.Decimals
		}
		blockchain := item.Blockchain
		if blockchain == "" {
			blockchain = "near"
		}
		tokens = append(tokens, Token{
			Symbol:          symbol,
			Name:            name,
			Decimals:        decimals,
			AssetID:         item.AssetID,
			ContractAddress: item.ContractAddress,
			Blockchain:      blockchain,
		})
	}
	if len(tokens) == 0 {
		return Snapshot{}, fmt.Errorf("token list response contained no usable tokens")
	}

	return NewSnapshot(tokens), nil
}
