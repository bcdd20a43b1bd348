// Package jkopay is a client for the JKoPay online payment platform API:
// order entry, refund and inquiry, each a single signed request.
package jkopay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jkopay-go/internal/logger"

	"go.uber.org/zap"
)

const (
	ProductionURL = "https://onlinepay.jkopay.com"
	SandboxURL    = "https://uat-onlinepay.jkopay.app"

	// Currency is the only currency the platform API accepts.
	Currency = "TWD"

	// DefaultTimeout bounds each round trip when no *http.Client is injected.
	DefaultTimeout = 10 * time.Second

	entryPath   = "/platform/entry"
	refundPath  = "/platform/refund"
	inquiryPath = "/platform/inquiry"

	headerAPIKey = "API-KEY"
	headerDigest = "DIGEST"
)

// Client holds one store's credentials. It has no mutable state and is safe
// for concurrent use.
type Client struct {
	storeID    string
	apiKey     string
	secretKey  []byte
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBaseURL overrides the host picked from the sandbox flag.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// ----------------- Constructor -----------------

func New(storeID, apiKey, secretKey string, sandbox bool, opts ...Option) *Client {
	c := &Client{
		storeID:   storeID,
		apiKey:    apiKey,
		secretKey: []byte(secretKey),
		baseURL:   ProductionURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	if sandbox {
		c.baseURL = SandboxURL
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.L()
	}
	if apiKey == "" || secretKey == "" {
		c.log.Warn("JKoPay credentials are empty", zap.String("store_id", storeID))
	}
	return c
}

func (c *Client) StoreID() string { return c.storeID }

func (c *Client) BaseURL() string { return c.baseURL }

// call is one signed round trip. signed is the exact byte form the DIGEST
// covers: the body for POST, the raw query for GET.
type call struct {
	method   string
	path     string
	rawQuery string
	body     []byte
	signed   []byte
	orderIDs []string
}

func (c *Client) send(ctx context.Context, cl call, out any) error {
	log := logger.FromCtx(ctx, c.log).With(
		zap.String("path", cl.path),
		zap.Strings("platform_order_id", cl.orderIDs),
	)

	url := c.baseURL + cl.path
	if cl.rawQuery != "" {
		url += "?" + cl.rawQuery
	}

	var body io.Reader
	if cl.body != nil {
		body = bytes.NewReader(cl.body)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, url, body)
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return fmt.Errorf("jkopay: build request: %w", err)
	}
	// The encoded query is signed as-is and must not be re-encoded.
	req.URL.RawQuery = cl.rawQuery

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerDigest, c.digest(cl.signed))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("JKoPay request failed", zap.Error(err))
		return &TransportError{Method: cl.method, URL: c.baseURL + cl.path, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return &TransportError{Method: cl.method, URL: c.baseURL + cl.path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("JKoPay returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return &HTTPError{StatusCode: resp.StatusCode, Body: bodyBytes}
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		log.Error("Failed decoding JKoPay response", zap.Error(err))
		return fmt.Errorf("jkopay: decode %s response: %w", cl.path, err)
	}

	log.Info("JKoPay request completed", zap.Int("status", resp.StatusCode))
	return nil
}

// postJSON signs and sends payload as the request body.
func (c *Client) postJSON(ctx context.Context, path string, payload any, orderIDs []string, out any) error {
	body, err := marshalPayload(payload)
	if err != nil {
		return fmt.Errorf("jkopay: encode %s request: %w", path, err)
	}
	return c.send(ctx, call{
		method:   http.MethodPost,
		path:     path,
		body:     body,
		signed:   body,
		orderIDs: orderIDs,
	}, out)
}
