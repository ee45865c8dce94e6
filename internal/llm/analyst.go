package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/verinews/verinews/internal/model"
)

// excerptLimit caps how much of the submitted text reaches the prompt
const excerptLimit = 400

// Analyst wraps a provider and produces the LLMAnalysis attached to a
// report. Always runs after the verdict; the result is commentary only.
type Analyst struct {
	provider Provider
	config   Config
}

// NewAnalyst creates an analyst for the configured provider. Returns an
// analyst with a nil provider (disabled) when no provider is configured.
func NewAnalyst(config Config) (*Analyst, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Analyst{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether analysis will actually run
func (a *Analyst) IsEnabled() bool {
	return a != nil && a.provider != nil
}

// GenerateAnalysis produces commentary for a finished report
func (a *Analyst) GenerateAnalysis(ctx context.Context, report model.Report, rawText string) (*model.LLMAnalysis, error) {
	if !a.IsEnabled() {
		return nil, nil
	}

	resp, err := a.provider.Analyze(ctx, AnalyzeRequest{
		Report:  report,
		Excerpt: excerpt(rawText),
	})
	if err != nil {
		return nil, fmt.Errorf("%s analysis: %w", a.provider.Name(), err)
	}

	return &model.LLMAnalysis{
		Enabled:    true,
		Provider:   a.provider.Name(),
		Model:      resp.Model,
		AnalysisMD: resp.Analysis,
	}, nil
}

// RenderSeparateMarkdown renders an analysis as a standalone Markdown
// document, clearly labeled as non-authoritative
func RenderSeparateMarkdown(analysis *model.LLMAnalysis) string {
	var sb strings.Builder

	sb.WriteString("# LLM Analysis\n\n")
	sb.WriteString(fmt.Sprintf("> Generated by %s/%s. Commentary only; the verdict was produced by the classifier and is not affected by this text.\n\n", analysis.Provider, analysis.Model))
	sb.WriteString(analysis.AnalysisMD)
	sb.WriteString("\n")

	return sb.String()
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLimit {
		return text
	}
	return string(runes[:excerptLimit]) + "…"
}
