package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/perkwatch/perkwatch"
	"github.com/perkwatch/perkwatch/infrastructure/api"
	"github.com/perkwatch/perkwatch/infrastructure/enricher"
	"github.com/perkwatch/perkwatch/infrastructure/provider"
	"github.com/perkwatch/perkwatch/internal/config"
	"github.com/perkwatch/perkwatch/internal/log"
)

// shutdownTimeout bounds how long in-flight requests get to drain on SIGINT
// or SIGTERM before Shutdown gives up.
const shutdownTimeout = 30 * time.Second

// shutdownContext returns a live context so Shutdown can drain in-flight
// requests up to shutdownTimeout.
func shutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), shutdownTimeout)
}

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                  Server host to bind to (default: 0.0.0.0)
  PORT                  Server port to listen on (default: 8000)
  SUPABASE_URL          Supabase Postgres connection URL
  SUPABASE_KEY          Supabase service key (used as the database password)
  DB_URL                Explicit database URL, overrides Supabase settings
                        (sqlite:///path or postgres://...)
  LOG_LEVEL             Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT            Log format: pretty, json (default: pretty)
  PROMPT_TEMPLATE_PATH  YAML file overriding the summary prompt

  OPENAI_API_KEY        OpenAI API key
  OPENAI_MODEL          Chat model (default: gpt-4)
  OPENAI_BASE_URL       Base URL override for OpenAI-compatible endpoints
  OPENAI_TIMEOUT        Request timeout in seconds (default: 60)
  OPENAI_MAX_TOKENS     Completion token limit (default: 500)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8000)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = applyServeOverrides(cfg, host, port)

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	// The server starts with whatever settings are present; requests that
	// depend on a missing one fail at call time.
	if missing := cfg.MissingRequired(); len(missing) > 0 {
		slogger.Warn("missing configuration, dependent requests will fail",
			slog.String("missing", strings.Join(missing, ", ")))
	}

	storeURL := cfg.StoreURL()
	if storeURL == "" {
		storeURL = "sqlite:///perkwatch.db"
		slogger.Warn("no database configured, falling back to local SQLite",
			slog.String("db_url", storeURL))
	}

	openAI := cfg.OpenAI()
	opts := []perkwatch.Option{
		perkwatch.WithDatabaseURL(storeURL),
		perkwatch.WithLogger(slogger),
		perkwatch.WithOpenAIConfig(provider.OpenAIConfig{
			APIKey:    openAI.APIKey(),
			BaseURL:   openAI.BaseURL(),
			ChatModel: openAI.Model(),
			Timeout:   openAI.Timeout(),
		}),
		perkwatch.WithMaxTokens(openAI.MaxTokens()),
	}

	if path := cfg.PromptTemplatePath(); path != "" {
		template, err := enricher.LoadPromptTemplate(path)
		if err != nil {
			return fmt.Errorf("load prompt template: %w", err)
		}
		opts = append(opts, perkwatch.WithPromptTemplate(template))
	}

	slogger.Info("starting perkwatch",
		slog.String("version", version),
		slog.String("addr", cfg.Addr()),
		slog.String("model", openAI.Model()),
	)

	client, err := perkwatch.New(opts...)
	if err != nil {
		return fmt.Errorf("create perkwatch client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close perkwatch client", slog.Any("error", err))
		}
	}()

	apiServer := api.NewAPIServer(client)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		slogger.Info("shutting down server")
		ctx, cancel := shutdownContext()
		defer cancel()
		if err := apiServer.Shutdown(ctx); err != nil {
			slogger.Error("shutdown error", slog.Any("error", err))
		}
	}()

	if err := apiServer.ListenAndServe(cfg.Addr()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
