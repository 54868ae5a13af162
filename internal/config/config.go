// Package config provides application configuration.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Default configuration values.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8000
	DefaultLogLevel        = "INFO"
	DefaultChatModel       = "gpt-4"
	DefaultOpenAITimeout   = 60 * time.Second
	DefaultOpenAIMaxTokens = 500
)

// defaultSupabaseUser is the role Supabase provisions for pooler connections.
const defaultSupabaseUser = "postgres"

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// OpenAI configures the chat completion endpoint.
type OpenAI struct {
	apiKey    string
	baseURL   string
	model     string
	timeout   time.Duration
	maxTokens int
}

// NewOpenAI creates a new OpenAI config with defaults.
func NewOpenAI() OpenAI {
	return OpenAI{
		model:     DefaultChatModel,
		timeout:   DefaultOpenAITimeout,
		maxTokens: DefaultOpenAIMaxTokens,
	}
}

// APIKey returns the API key.
func (o OpenAI) APIKey() string { return o.apiKey }

// BaseURL returns the base URL override, empty for the public API.
func (o OpenAI) BaseURL() string { return o.baseURL }

// Model returns the chat model identifier.
func (o OpenAI) Model() string { return o.model }

// Timeout returns the request timeout.
func (o OpenAI) Timeout() time.Duration { return o.timeout }

// MaxTokens returns the completion token limit.
func (o OpenAI) MaxTokens() int { return o.maxTokens }

// IsConfigured returns true if an API key is present.
func (o OpenAI) IsConfigured() bool {
	return o.apiKey != ""
}

// OpenAIOption is a functional option for OpenAI.
type OpenAIOption func(*OpenAI)

// WithAPIKey sets the API key.
func WithAPIKey(key string) OpenAIOption {
	return func(o *OpenAI) { o.apiKey = key }
}

// WithBaseURL sets the base URL override.
func WithBaseURL(url string) OpenAIOption {
	return func(o *OpenAI) { o.baseURL = url }
}

// WithModel sets the chat model.
func WithModel(model string) OpenAIOption {
	return func(o *OpenAI) { o.model = model }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) OpenAIOption {
	return func(o *OpenAI) { o.timeout = d }
}

// WithMaxTokens sets the completion token limit.
func WithMaxTokens(n int) OpenAIOption {
	return func(o *OpenAI) { o.maxTokens = n }
}

// NewOpenAIWithOptions creates an OpenAI config with functional options.
func NewOpenAIWithOptions(opts ...OpenAIOption) OpenAI {
	o := NewOpenAI()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	host               string
	port               int
	dbURL              string
	supabaseURL        string
	supabaseKey        string
	logLevel           string
	logFormat          LogFormat
	openAI             OpenAI
	promptTemplatePath string
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		host:      DefaultHost,
		port:      DefaultPort,
		logLevel:  DefaultLogLevel,
		logFormat: LogFormatPretty,
		openAI:    NewOpenAI(),
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// OpenAI returns the chat endpoint config.
func (c AppConfig) OpenAI() OpenAI { return c.openAI }

// PromptTemplatePath returns the prompt template override path, empty when
// the built-in template is used.
func (c AppConfig) PromptTemplatePath() string { return c.promptTemplatePath }

// SupabaseURL returns the Supabase connection URL.
func (c AppConfig) SupabaseURL() string { return c.supabaseURL }

// StoreURL resolves the database connection URL. An explicit DB_URL wins;
// otherwise the Supabase URL is used with the service key injected as the
// password when the URL carries none.
func (c AppConfig) StoreURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	if c.supabaseURL == "" {
		return ""
	}
	u, err := url.Parse(c.supabaseURL)
	if err != nil {
		return c.supabaseURL
	}
	if c.supabaseKey != "" {
		if u.User == nil {
			u.User = url.UserPassword(defaultSupabaseUser, c.supabaseKey)
		} else if _, hasPassword := u.User.Password(); !hasPassword {
			u.User = url.UserPassword(u.User.Username(), c.supabaseKey)
		}
	}
	return u.String()
}

// MissingRequired returns the names of required settings that are absent.
// The service starts regardless; requests that need them fail at call time.
func (c AppConfig) MissingRequired() []string {
	var missing []string
	if c.openAI.apiKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.supabaseURL == "" && c.dbURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.supabaseKey == "" && c.dbURL == "" {
		missing = append(missing, "SUPABASE_KEY")
	}
	return missing
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDBURL sets an explicit database URL, overriding the Supabase URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithSupabase sets the Supabase connection URL and service key.
func WithSupabase(url, key string) AppConfigOption {
	return func(c *AppConfig) {
		c.supabaseURL = url
		c.supabaseKey = key
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithOpenAI sets the chat endpoint config.
func WithOpenAI(o OpenAI) AppConfigOption {
	return func(c *AppConfig) { c.openAI = o }
}

// WithPromptTemplatePath sets the prompt template override path.
func WithPromptTemplatePath(path string) AppConfigOption {
	return func(c *AppConfig) { c.promptTemplatePath = path }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
