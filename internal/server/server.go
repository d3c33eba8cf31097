// Package server exposes the exported birthday calendar over localhost HTTP
// so calendar clients can subscribe to it.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// feedItem is one immutable rendered snapshot of the calendar.
type feedItem struct {
	data []byte
	etag string
}

// FeedServer serves the latest calendar snapshot. The command loop replaces
// the snapshot after each mutating command; requests only ever see a complete
// snapshot through the atomic pointer, so the address book itself is never
// shared across goroutines.
type FeedServer struct {
	cache atomic.Pointer[feedItem]
	Port  string
}

// NewFeedServer creates a server bound to the given localhost port.
func NewFeedServer(port string) *FeedServer {
	return &FeedServer{Port: port}
}

// Start runs the HTTP server and blocks until the context is cancelled.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleFeedRequest)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerStop, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served snapshot.
func (s *FeedServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	item := &feedItem{
		data: data,
		etag: fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:])),
	}
	s.cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, item.etag,
	)
}

// handleFeedRequest serves the snapshot with ETag-based caching.
func (s *FeedServer) handleFeedRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
