package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

// DefaultUserAgent identifies profiltool to the servers it contacts.
const DefaultUserAgent = "profiltool/1.0 (public profile fetcher)"

// Config holds configuration for the fetcher.
type Config struct {
	// Timeout bounds each request (default: 5s).
	Timeout time.Duration

	// MaxBodyBytes caps how much of a body is read (default: 2 MiB).
	MaxBodyBytes int64

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// Transport overrides http.DefaultTransport.
	Transport http.RoundTripper
}

// Fetcher retrieves pages with a single bounded GET.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBody   int64
	userAgent string
	logger    driven.Logger
}

// NewFetcher creates a new fetcher.
func NewFetcher(cfg Config, logger driven.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultFetchTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = domain.DefaultMaxBodyBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = driven.NopLogger{}
	}

	return &Fetcher{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		timeout:   cfg.Timeout,
		maxBody:   cfg.MaxBodyBytes,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Timeout returns the bound applied to each request.
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Get performs one GET request. Responses with status 400 and above, and all
// transport failures, are returned as *domain.FetchError.
func (f *Fetcher) Get(ctx context.Context, url string) (*driven.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, f.fail(ctx, Classify(fmt.Errorf("create request: %w", err), url, f.timeout))
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.fail(ctx, Classify(err, url, f.timeout))
	}
	defer resp.Body.Close()

	if fe := ClassifyStatus(resp.StatusCode, url); fe != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxBody))
		return nil, f.fail(ctx, fe)
	}

	// One byte past the cap tells a truncated body from one that fits exactly.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		fe := Classify(fmt.Errorf("read body: %w", err), url, f.timeout)
		if fe.Category != domain.CategoryTimeout {
			fe.Category = domain.CategoryConnectionError
			fe.Message = msgConnection
		}
		return nil, f.fail(ctx, fe)
	}
	if int64(len(body)) > f.maxBody {
		body = body[:f.maxBody]
		f.logger.Warn("response body truncated", driven.Fields{
			"url":            url,
			"max_body_bytes": f.maxBody,
			"request_id":     driven.RequestIDFrom(ctx),
		})
	}

	f.logger.Debug("page retrieved", driven.Fields{
		"url":          url,
		"status_code":  resp.StatusCode,
		"content_type": resp.Header.Get("Content-Type"),
		"bytes":        len(body),
		"request_id":   driven.RequestIDFrom(ctx),
	})

	return &driven.Page{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// fail records the full diagnostic and returns fe unchanged.
func (f *Fetcher) fail(ctx context.Context, fe *domain.FetchError) error {
	fields := driven.Fields{
		"category":   fe.Category.String(),
		"url":        fe.URL,
		"diagnostic": fe.Diagnostic(),
		"request_id": driven.RequestIDFrom(ctx),
	}
	if fe.StatusCode != 0 {
		fields["status_code"] = fe.StatusCode
	} else {
		fields["timeout"] = fe.Timeout.String()
	}
	if fe.Cause != nil {
		fields["cause_type"] = TypeName(fe.Cause)
	}
	f.logger.Error("page retrieval failed", fe.Cause, fields)
	return fe
}
