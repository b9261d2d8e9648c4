// Package yahoo implements provider.MarketData against the Yahoo Finance
// v8 chart API. The service treats this as an opaque remote collaborator:
// the only contract is Resolve + FetchRange and the error kinds they produce.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/tickerpulse/internal/domain/errs"
	"github.com/guttosm/tickerpulse/internal/domain/models"
)

// transportMessage is part of the API contract: every network-level failure
// surfaces to clients with exactly this text.
const transportMessage = "Network error while contacting price service"

// Config holds the client settings, normally taken from config.AppConfig.Provider.
type Config struct {
	BaseURL   string        // e.g. "https://query1.finance.yahoo.com"
	Timeout   time.Duration // overall per-request timeout
	UserAgent string        // Yahoo rejects requests without a browser-style UA
}

// Client is a thin HTTP client for the chart endpoint. It is safe for
// concurrent use; all state is the shared connection pool.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// New builds a Client with a tuned transport. The base URL is validated here
// so a misconfiguration fails at startup instead of on the first request.
func New(cfg Config) (*Client, error) {
	if _, err := url.Parse(cfg.BaseURL); err != nil || cfg.BaseURL == "" {
		return nil, fmt.Errorf("invalid provider base URL %q: %w", cfg.BaseURL, err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: timeout, Transport: transport},
	}, nil
}

// Resolve fetches instrument metadata for a symbol via a one-day chart query.
//
// The returned Instrument carries the provider's canonical symbol; callers
// decide whether it matches the requested one. An unknown symbol is
// errs.InvalidSymbol, a network failure errs.Transport.
func (c *Client) Resolve(ctx context.Context, symbol string) (models.Instrument, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(symbol))

	resp, err := c.query(ctx, symbol, endpoint)
	if err != nil {
		return models.Instrument{}, err
	}

	meta := resp.Chart.Result[0].Meta
	if meta.Symbol == "" {
		return models.Instrument{}, errs.Newf(errs.InvalidSymbol, "Invalid ticker symbol: %s", symbol)
	}

	return models.Instrument{
		Symbol:   meta.Symbol,
		Currency: meta.Currency,
		Exchange: meta.ExchangeName,
	}, nil
}

// FetchRange returns daily close candles for [start, end), ordered by date
// ascending as Yahoo delivers them. An empty window yields an empty slice and
// a nil error; distinguishing "no data" from "bad symbol" is the caller's
// business rule, not the client's.
func (c *Client) FetchRange(ctx context.Context, symbol string, start, end time.Time) ([]models.Candle, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL, url.PathEscape(symbol), start.Unix(), end.Unix())

	resp, err := c.query(ctx, symbol, endpoint)
	if err != nil {
		return nil, err
	}

	result := resp.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return nil, nil
	}

	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return nil, fmt.Errorf("mismatched chart data lengths for %s: %d timestamps, %d closes",
			symbol, len(result.Timestamp), len(closes))
	}

	candles := make([]models.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		day := time.Unix(ts, 0).UTC().Truncate(24 * time.Hour)
		closePrice := math.NaN()
		if closes[i] != nil {
			closePrice = *closes[i]
		}
		candles = append(candles, models.Candle{Date: day, Close: closePrice})
	}
	return candles, nil
}

// Ping checks provider reachability for the readiness probe.
func (c *Client) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

// Close releases idle connections held by the pool.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// query performs a chart request and normalizes failures onto the error
// taxonomy: transport problems, provider-reported unknown symbols, and
// malformed payloads each get their own kind.
func (c *Client) query(ctx context.Context, symbol, endpoint string) (*chartResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.Transport, transportMessage, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.Newf(errs.InvalidSymbol, "Invalid ticker symbol: %s", symbol)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errs.Wrap(errs.Transport, transportMessage,
			fmt.Errorf("provider returned status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("provider returned unexpected status %d for %s", resp.StatusCode, symbol)
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("decode chart response for %s: %w", symbol, err)
	}

	if chart.Chart.Error != nil {
		return nil, errs.Wrap(errs.InvalidSymbol,
			fmt.Sprintf("Invalid ticker symbol: %s", symbol),
			fmt.Errorf("%s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description))
	}
	if len(chart.Chart.Result) == 0 {
		return nil, errs.Newf(errs.InvalidSymbol, "Invalid ticker symbol: %s", symbol)
	}

	return &chart, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")
}
