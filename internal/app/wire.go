package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"bigsum/internal/domain"
	"bigsum/internal/relay"
	sumsvc "bigsum/internal/services/sum"
	"bigsum/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	History domain.HistoryStore
	Adder   domain.Adder
	Relay   domain.RelayClient // nil when no relay is configured
	HTTP    *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, errors.New("no data directory: set BIGSUM_HOME or --home")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home %s: %w", cfg.Home, err)
	}
	historyStore := store.NewHistoryFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	w := &Wire{History: historyStore, HTTP: httpClient}
	opts := sumsvc.Options{StrictGrouping: cfg.StrictGrouping}
	if cfg.RelayURL != "" {
		rc := relay.NewHTTP(cfg.RelayURL, httpClient)
		w.Relay = rc
		opts.Remote = rc
	}
	if cfg.History {
		opts.History = historyStore
	}
	w.Adder = sumsvc.New(opts)
	return w, nil
}
