package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8000)
	Port int `envconfig:"PORT" default:"8000"`

	// DBURL is an explicit database connection URL. When set it overrides
	// the Supabase settings entirely.
	// Env: DB_URL
	DBURL string `envconfig:"DB_URL"`

	// SupabaseURL is the Supabase Postgres connection URL.
	// Env: SUPABASE_URL
	SupabaseURL string `envconfig:"SUPABASE_URL"`

	// SupabaseKey is the Supabase service key, used as the database
	// password when the URL does not carry one.
	// Env: SUPABASE_KEY
	SupabaseKey string `envconfig:"SUPABASE_KEY"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// OpenAI configures the chat completion endpoint.
	OpenAI OpenAIEnv `envconfig:"OPENAI"`

	// PromptTemplatePath points to a YAML file overriding the built-in
	// summary prompt.
	// Env: PROMPT_TEMPLATE_PATH
	PromptTemplatePath string `envconfig:"PROMPT_TEMPLATE_PATH"`
}

// OpenAIEnv holds environment configuration for the chat endpoint.
type OpenAIEnv struct {
	// APIKey is the API key for authentication.
	// Env: OPENAI_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// BaseURL overrides the API base URL.
	// Env: OPENAI_BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// Model is the chat model identifier.
	// Env: OPENAI_MODEL (default: gpt-4)
	Model string `envconfig:"MODEL" default:"gpt-4"`

	// Timeout is the request timeout in seconds.
	// Env: OPENAI_TIMEOUT (default: 60)
	Timeout float64 `envconfig:"TIMEOUT" default:"60"`

	// MaxTokens is the completion token limit.
	// Env: OPENAI_MAX_TOKENS (default: 500)
	MaxTokens int `envconfig:"MAX_TOKENS" default:"500"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	opts := []AppConfigOption{
		WithOpenAI(e.OpenAI.ToOpenAI()),
	}

	if e.Host != "" {
		opts = append(opts, WithHost(e.Host))
	}
	if e.Port != 0 {
		opts = append(opts, WithPort(e.Port))
	}
	if e.DBURL != "" {
		opts = append(opts, WithDBURL(e.DBURL))
	}
	if e.SupabaseURL != "" || e.SupabaseKey != "" {
		opts = append(opts, WithSupabase(e.SupabaseURL, e.SupabaseKey))
	}
	if e.LogLevel != "" {
		opts = append(opts, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		opts = append(opts, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.PromptTemplatePath != "" {
		opts = append(opts, WithPromptTemplatePath(e.PromptTemplatePath))
	}

	return NewAppConfigWithOptions(opts...)
}

// ToOpenAI converts OpenAIEnv to OpenAI.
func (o OpenAIEnv) ToOpenAI() OpenAI {
	opts := []OpenAIOption{
		WithTimeout(time.Duration(o.Timeout * float64(time.Second))),
		WithMaxTokens(o.MaxTokens),
	}
	if o.APIKey != "" {
		opts = append(opts, WithAPIKey(o.APIKey))
	}
	if o.BaseURL != "" {
		opts = append(opts, WithBaseURL(o.BaseURL))
	}
	if o.Model != "" {
		opts = append(opts, WithModel(o.Model))
	}
	return NewOpenAIWithOptions(opts...)
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
