// Package source wraps the external evidence services the validator consults:
// an encyclopedia search API and a dictionary API. Every lookup is bounded by
// a per-call timeout and degrades to an empty result on any failure — network
// errors, bad statuses, malformed payloads, and timeouts are all folded into
// "no evidence" and never surface to callers.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"letterrush/internal/cache"
	"letterrush/internal/model"
)

// maxResponseBytes caps how much of a source response is read.
const maxResponseBytes = 1 << 20

// Client is the shared outbound HTTP client for all evidence sources. It owns
// the timeout, rate limiting, proxying, and response caching policy so the
// individual adapters stay thin.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
	log        *zap.Logger
}

// NewClient builds a client from configuration. The cache may be nil to
// disable response caching.
func NewClient(cfg *model.Config, store cache.Cache, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: newProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		limiter:   NewLimiter(cfg.Sources.RatePerSecond, cfg.Sources.RateBurst),
		cache:     store,
		cacheTTL:  cfg.Cache.TTL,
		log:       log,
	}
}

// getJSON fetches rawURL and decodes the JSON payload into out. It returns
// false on any failure; the caller treats that as an empty result.
func (c *Client) getJSON(ctx context.Context, sourceName, rawURL string, out any) bool {
	if c.cache != nil {
		if body, found := c.cache.Get(cache.Key(sourceName, rawURL)); found {
			return json.Unmarshal(body, out) == nil
		}
	}

	if err := c.limiter.Wait(ctx, rawURL); err != nil {
		c.log.Debug("rate limit wait aborted", zap.String("source", sourceName), zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		c.log.Debug("build request failed", zap.String("source", sourceName), zap.Error(err))
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("source request failed", zap.String("source", sourceName), zap.Error(err))
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("source returned non-success status",
			zap.String("source", sourceName), zap.Int("status", resp.StatusCode))
		return false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.log.Debug("read source body failed", zap.String("source", sourceName), zap.Error(err))
		return false
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.log.Debug("decode source payload failed", zap.String("source", sourceName), zap.Error(err))
		return false
	}

	if c.cache != nil {
		c.cache.Set(cache.Key(sourceName, rawURL), body, c.cacheTTL)
	}

	return true
}

// newProxyFunc builds the transport proxy function. With no explicit proxy
// URLs it falls back to the standard environment variables.
func newProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		switch {
		case req.URL.Scheme == "https" && httpsProxy != "":
			return url.Parse(httpsProxy)
		case httpProxy != "":
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

// queryURL assembles base?params, validating the base URL once per call.
func queryURL(base string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}
