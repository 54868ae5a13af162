package perkwatch

import (
	"io"
	"log/slog"

	"github.com/perkwatch/perkwatch/infrastructure/enricher"
	"github.com/perkwatch/perkwatch/infrastructure/provider"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL        string
	textProvider provider.TextGenerator
	template     enricher.PromptTemplate
	maxTokens    int
	logger       *slog.Logger
	closers      []io.Closer
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		template: enricher.DefaultPromptTemplate(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithDatabaseURL configures the database from a connection URL
// (sqlite:///path or postgres://...).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithOpenAI sets OpenAI as the summary provider.
func WithOpenAI(apiKey string) Option {
	return func(c *clientConfig) {
		p := provider.NewOpenAIProvider(apiKey)
		c.textProvider = p
		c.closers = append(c.closers, p)
	}
}

// WithOpenAIConfig sets OpenAI with custom configuration.
func WithOpenAIConfig(cfg provider.OpenAIConfig) Option {
	return func(c *clientConfig) {
		p := provider.NewOpenAIProviderFromConfig(cfg)
		c.textProvider = p
		c.closers = append(c.closers, p)
	}
}

// WithTextProvider sets a custom text generation provider.
func WithTextProvider(p provider.TextGenerator) Option {
	return func(c *clientConfig) {
		c.textProvider = p
	}
}

// WithPromptTemplate sets the summary prompt template.
func WithPromptTemplate(t enricher.PromptTemplate) Option {
	return func(c *clientConfig) {
		c.template = t
	}
}

// WithMaxTokens sets the completion token limit for summaries.
func WithMaxTokens(n int) Option {
	return func(c *clientConfig) {
		c.maxTokens = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithCloser registers an io.Closer to be closed with the client.
func WithCloser(closer io.Closer) Option {
	return func(c *clientConfig) {
		c.closers = append(c.closers, closer)
	}
}
