package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/neptune-labs/neptune-intents-hub/huberr"
	"github.com/neptune-labs/neptune-intents-hub/retry"
)

var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// SetLogger overrides the package logger.
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}

// transportError marks network level failures. Only these are worth
// retrying, an HTTP status from the service is a firm answer.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return e.err.Error()
}

func (e *transportError) Unwrap() error {
	return e.err
}

func isTransport(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

// statusError carries a non-2xx answer from the quoting service.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("quote service returned %d: %s", e.status, e.message)
	}
	return fmt.Sprintf("quote service returned %d", e.status)
}

// Client requests quotes from the swap service with exponential
// backoff on transport failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	policy     retry.Policy
}

// Option adjusts a Client.
type Option func(*Client)

// WithPolicy replaces the retry policy. The retryable classifier is
// preserved.
func WithPolicy(p retry.Policy) Option {
	return func(c *Client) {
		p.Retryable = isTransport
		c.policy = p
	}
}

// NewClient builds a quote client for the given API base URL.
func NewClient(apiURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(apiURL); err != nil {
		return nil, fmt.Errorf("parse quote API URL: %w", err)
	}
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(apiURL, "/"),
		policy:     retry.DefaultPolicy(isTransport),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetQuote posts the request and returns the quote body. Transport
// failures are retried up to the policy limit, any HTTP error status
// ends the attempt immediately. A quote without a deposit address is
// rejected.
func (c *Client) GetQuote(ctx context.Context, req Request) (Body, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Body{}, fmt.Errorf("encode quote request: %w", err)
	}

	var parsed response
	attempt := 0
	err = c.policy.Do(ctx, func(ctx context.Context) error {
		attempt++
		Logger.Debug().Int("attempt", attempt).Str("origin", req.OriginAsset).Str("destination", req.DestinationAsset).Msg("fetching quote")
		return c.postJSON(ctx, c.baseURL+"/v0/quote", payload, &parsed)
	})
	if err != nil {
		if isTransport(err) {
			return Body{}, huberr.Wrap(huberr.CodeQuoteUnavailable, err,
				"unable to fetch quote after multiple attempts, please try again later")
		}
		var se *statusError
		if errors.As(err, &se) {
			if se.message != "" {
				return Body{}, huberr.Wrap(huberr.CodeQuoteUnavailable, err,
					fmt.Sprintf("quote request rejected: %s", se.message))
			}
			return Body{}, huberr.Wrap(huberr.CodeQuoteUnavailable, err, "quote request rejected")
		}
		return Body{}, err
	}

	if parsed.Message != "" {
		return Body{}, huberr.Newf(huberr.CodeQuoteUnavailable, "quote service: %s", parsed.Message)
	}

	body := parsed.Body
	if parsed.Quote != nil {
		body = *parsed.Quote
	}
	if body.DepositAddress == "" {
		return Body{}, huberr.New(huberr.CodeNoDepositAddress, "no deposit address found in quote")
	}
	return body, nil
}

// SubmitDeposit tells the service a deposit transaction was sent so
// it can start verifying early. Best effort, no retries.
func (c *Client) SubmitDeposit(ctx context.Context, notice DepositNotice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("encode deposit notice: %w", err)
	}
	var out map[string]any
	if err := c.postJSON(ctx, c.baseURL+"/v0/deposit/submit", payload, &out); err != nil {
		return fmt.Errorf("submit deposit notice: %w", err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &transportError{err: err}
	}

	if resp.StatusCode >= 400 {
		msg := serviceMessage(body)
		Logger.Warn().Int("status", resp.StatusCode).Str("message", msg).Msg("quote service error")
		return &statusError{status: resp.StatusCode, message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func serviceMessage(body []byte) string {
	var wire struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wire) == nil && wire.Message != "" {
		return wire.Message
	}
	return strings.TrimSpace(string(body))
}
