package httpsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/serverpacks/internal/ports"
)

const defaultUserAgent = "serverpacks"

// Source downloads pack archives over HTTP(S).
type Source struct {
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	UserAgent      string
}

var _ ports.PackSource = Source{}

// Open issues a GET for rawURL and returns the response body. The body must be
// closed by the caller; closing it also releases the request timeout.
func (s Source) Open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	requestCtx, cancel := s.requestContext(ctx)
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create pack request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent())

	resp, err := s.httpClient().Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("request pack %s: %w", redactURL(rawURL), err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("request pack %s: unexpected status %d", redactURL(rawURL), resp.StatusCode)
	}

	return &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}, nil
}

func (s Source) httpClient() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return http.DefaultClient
}

func (s Source) userAgent() string {
	if s.UserAgent != "" {
		return s.UserAgent
	}
	return defaultUserAgent
}

func (s Source) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := s.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 5 * time.Minute
	}

	return context.WithTimeout(ctx, requestTimeout)
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("pack url is required")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse pack url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("pack url must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("pack url host is required")
	}

	return nil
}

// redactURL drops userinfo and query so credentials never reach the logs.
func redactURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	parsed.User = nil
	parsed.RawQuery = ""
	return parsed.String()
}
