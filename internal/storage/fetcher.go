package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// VCardFetcher retrieves a vCard collection from a remote location.
// The import command consumes the stream through Merge.
type VCardFetcher interface {
	Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error)
}

// HTTPFetcher implements VCardFetcher over plain HTTP(S) with optional basic
// auth, matching what CardDAV servers expose for address book downloads.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher with the standard request timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// Fetch downloads vCard data from targetURL. Only http and https schemes are
// accepted and the response body is capped to protect against oversized
// payloads. Query parameters are stripped from logged URLs since they may
// carry tokens.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, user, pass string) (io.ReadCloser, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	safeURL := u.Scheme + "://" + u.Host + u.Path
	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, safeURL),
	)
	log.Debug(config.MsgFetchStarting)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	if user != "" || pass != "" {
		req.SetBasicAuth(user, pass)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error during fetch: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgFetchStatus,
			slog.Int(config.LogKeyStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("server returned unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	return &limitedReadCloser{
		Reader: io.LimitReader(resp.Body, config.MaxHTTPResponseSize),
		Closer: resp.Body,
	}, nil
}

// limitedReadCloser bounds the bytes read while keeping the underlying
// connection closable.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	return l.Reader.Read(p)
}

func (l *limitedReadCloser) Close() error {
	return l.Closer.Close()
}
