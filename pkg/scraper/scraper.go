// Package scraper provides the HTTP client used to fetch pages from sportschau.de
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// ClientOptions configures the HTTP client.
type ClientOptions struct {
	BaseURL string
	// Timeout defaults to 30 seconds when zero.
	Timeout time.Duration
}

// NewClient builds a resty client for scraping.
func NewClient(opts ClientOptions) *resty.Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := resty.New()
	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)
	return client
}

// FetchPage downloads the HTML content from a URL and returns it as a string.
func FetchPage(ctx context.Context, client *resty.Client, url string) (string, error) {
	slog.DebugContext(ctx, "fetching url", "url", url)

	res, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("error fetching URL: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("non-200 status code: %d %s", res.StatusCode(), res.Status())
	}

	slog.DebugContext(ctx, "fetched url",
		"url", url,
		"status", res.StatusCode(),
		"content_length", len(res.Body()),
	)
	return string(res.Body()), nil
}
