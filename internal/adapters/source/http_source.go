package source

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 1
	defaultBackoff     = 200 * time.Millisecond
)

// StatusError reports a non-2xx response from the hall source.
type StatusError struct {
	Code      int
	Body      string
	Retriable bool
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// HTTPSource fetches the halls document with a single GET.
//
// By default a request is attempted once. WithMaxAttempts enables retries of
// transient failures (network errors, 429 and 5xx) with exponential backoff.
// The source is safe for concurrent use.
type HTTPSource struct {
	client      *http.Client
	timeout     time.Duration
	url         string
	userAgent   string
	maxAttempts int
	backoff     time.Duration
	log         *zap.Logger
}

type HTTPOption func(*HTTPSource)

// WithHTTPClient supplies the transport. The client is copied, so the
// source's timeout never leaks into the caller's client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithMaxAttempts(n int) HTTPOption {
	return func(s *HTTPSource) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithBackoff(d time.Duration) HTTPOption {
	return func(s *HTTPSource) { s.backoff = d }
}

func WithUserAgent(ua string) HTTPOption {
	return func(s *HTTPSource) { s.userAgent = ua }
}

func WithLogger(log *zap.Logger) HTTPOption {
	return func(s *HTTPSource) { s.log = log }
}

func NewHTTPSource(url string, opts ...HTTPOption) (*HTTPSource, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("http hall source: url is empty")
	}

	s := &HTTPSource{
		client:      http.DefaultClient,
		timeout:     defaultTimeout,
		url:         url,
		userAgent:   "boulderhall-service/dev",
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	client := *s.client
	client.Timeout = s.timeout
	s.client = &client

	return s, nil
}

func (s *HTTPSource) FetchHalls(ctx context.Context) (_ []domain.Hall, err error) {
	defer obs.Time(ctx, s.log, "halls.http.Fetch")(&err)

	resp, err := s.doWithRetry(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch halls %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	halls, err := DecodeHalls(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch halls %s: %w", s.url, err)
	}

	s.log.Debug("fetched halls", zap.String("url", s.url), zap.Int("count", len(halls)))
	return halls, nil
}

func (s *HTTPSource) newRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)
	return req, nil
}

func (s *HTTPSource) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, &StatusError{
			Code:      resp.StatusCode,
			Body:      strings.TrimSpace(string(b)),
			Retriable: isRetriableStatus(resp.StatusCode),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures using exponential backoff while
// respecting context cancellation.
func (s *HTTPSource) doWithRetry(ctx context.Context) (*http.Response, error) {
	backoff := s.backoff

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := s.newRequest(ctx)
		if err != nil {
			return nil, err
		}

		resp, err := s.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRetriable(err) || attempt == s.maxAttempts {
			return nil, lastErr
		}

		s.log.Warn("retrying halls request",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func isRetriableStatus(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusRequestTimeout ||
		code >= 500
}

func isRetriable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Retriable
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
