// Package perkwatch provides a library for enriching competitor records
// with AI-generated loyalty-program summaries.
//
// Basic usage:
//
//	client, err := perkwatch.New(
//	    perkwatch.WithSQLite("perkwatch.db"),
//	    perkwatch.WithOpenAI(os.Getenv("OPENAI_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Enrich a single competitor
//	record, err := client.Competitors.Get(ctx, 42)
//	updated, err := client.Enrichment.Enrich(ctx, record.ID(), record.Name())
//
//	// Enrich every competitor missing a summary
//	result, err := client.Enrichment.EnrichAll(ctx)
package perkwatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/perkwatch/perkwatch/application/service"
	"github.com/perkwatch/perkwatch/infrastructure/enricher"
	"github.com/perkwatch/perkwatch/infrastructure/persistence"
	"github.com/perkwatch/perkwatch/internal/database"
)

// Construction errors.
var (
	ErrNoDatabase = errors.New("no database configured: use WithSQLite or WithDatabaseURL")
	ErrNoProvider = errors.New("no text provider configured: use WithOpenAI or WithTextProvider")
)

// Client is the main entry point for the perkwatch library.
//
// Access resources via struct fields:
//
//	client.Competitors.Get(ctx, id)
//	client.Enrichment.EnrichAll(ctx)
type Client struct {
	Competitors *service.Competitor
	Enrichment  *service.Enrichment

	db      database.Database
	store   persistence.CompetitorStore
	summary *enricher.SummaryGenerator

	logger  *slog.Logger
	closers []io.Closer
	closed  atomic.Bool
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}
	if cfg.textProvider == nil {
		return nil, ErrNoProvider
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	store := persistence.NewCompetitorStore(db)

	summary := enricher.NewSummaryGenerator(cfg.textProvider, logger).
		WithTemplate(cfg.template)
	if cfg.maxTokens > 0 {
		summary = summary.WithMaxTokens(cfg.maxTokens)
	}

	competitors := service.NewCompetitor(store)
	enrichment := service.NewEnrichment(competitors, store, summary, logger)

	return &Client{
		Competitors: competitors,
		Enrichment:  enrichment,
		db:          db,
		store:       store,
		summary:     summary,
		logger:      logger,
		closers:     cfg.closers,
	}, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Store returns the competitor store, primarily for tests and custom wiring.
func (c *Client) Store() persistence.CompetitorStore {
	return c.store
}

// Close releases the database connection and any registered closers.
// It is safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := c.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
