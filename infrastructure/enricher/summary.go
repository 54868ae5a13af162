// Package enricher provides AI-powered loyalty-program summary generation.
package enricher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/perkwatch/perkwatch/domain/competitor"
	"github.com/perkwatch/perkwatch/infrastructure/provider"
)

// SummaryGenerator produces loyalty-program summaries via a TextGenerator.
type SummaryGenerator struct {
	generator   provider.TextGenerator
	template    PromptTemplate
	maxTokens   int
	temperature float64
	log         *slog.Logger
}

// NewSummaryGenerator creates a SummaryGenerator with the built-in template.
func NewSummaryGenerator(generator provider.TextGenerator, log *slog.Logger) *SummaryGenerator {
	if log == nil {
		log = slog.Default()
	}
	return &SummaryGenerator{
		generator: generator,
		template:  DefaultPromptTemplate(),
		log:       log,
	}
}

// WithTemplate sets the prompt template.
func (g *SummaryGenerator) WithTemplate(t PromptTemplate) *SummaryGenerator {
	g.template = t
	return g
}

// WithMaxTokens sets the maximum tokens for generation.
func (g *SummaryGenerator) WithMaxTokens(n int) *SummaryGenerator {
	g.maxTokens = n
	return g
}

// WithTemperature sets the temperature for generation.
func (g *SummaryGenerator) WithTemperature(t float64) *SummaryGenerator {
	g.temperature = t
	return g
}

// Summary generates a loyalty-program summary for the named competitor.
// The result is whitespace-trimmed. All failure modes (completion error,
// no choices, blank content) wrap competitor.ErrSummaryGeneration; there
// is no retry.
func (g *SummaryGenerator) Summary(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: empty competitor name", competitor.ErrSummaryGeneration)
	}

	g.log.InfoContext(ctx, "generating loyalty program summary", "competitor_name", name)

	messages := []provider.Message{
		provider.SystemMessage(g.template.System()),
		provider.UserMessage(g.template.Render(name)),
	}

	req := provider.NewChatCompletionRequest(messages)
	if g.maxTokens > 0 {
		req = req.WithMaxTokens(g.maxTokens)
	}
	if g.temperature > 0 {
		req = req.WithTemperature(g.temperature)
	}

	resp, err := g.generator.ChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", competitor.ErrSummaryGeneration, err)
	}

	summary := strings.TrimSpace(resp.Content())
	if summary == "" {
		return "", fmt.Errorf("%w: completion returned empty content", competitor.ErrSummaryGeneration)
	}
	return summary, nil
}
