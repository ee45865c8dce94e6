// Package llm generates an optional natural-language analysis of a
// finished classification report. The analysis runs after the verdict
// and never feeds back into it.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/verinews/verinews/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Analyze generates commentary on a finished report
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// AnalyzeRequest contains the input for LLM analysis
type AnalyzeRequest struct {
	// Report is the finished classification report to explain
	Report model.Report

	// Excerpt is the opening of the submitted text, for context
	Excerpt string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AnalyzeResponse contains the LLM's analysis output
type AnalyzeResponse struct {
	// Analysis is the generated commentary
	Analysis string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // disabled by default
		Timeout:   30,
		MaxTokens: 600,
	}
}

// BuildPrompt constructs the default analysis prompt
func BuildPrompt(report model.Report, excerpt string) string {
	var sb strings.Builder

	sb.WriteString(`You are commenting on the output of an automated news authenticity classifier.

CRITICAL RULES:
1. The verdict below is final. Do NOT second-guess, change, or re-score it.
2. Explain in plain language which of the listed signals likely drove the verdict.
3. Suggest how a reader could verify the story through official channels.
4. Do not invent facts about the story beyond the excerpt and signals given.

`)

	sb.WriteString(fmt.Sprintf("Verdict: %s (confidence %.1f%%)\n", report.Verdict.Label, report.Verdict.Confidence*100))
	if report.Verdict.Reason != "" {
		sb.WriteString(fmt.Sprintf("Override reason: %s\n", report.Verdict.Reason))
	}

	sb.WriteString("\nHeuristic signals:\n")
	sb.WriteString(fmt.Sprintf("- length: %.0f runes, sentences: %.0f\n", report.Features.Length, report.Features.Sentences))
	sb.WriteString(fmt.Sprintf("- authority source cited: %v\n", report.Features.Reliable == 1.0))
	sb.WriteString(fmt.Sprintf("- absurd claim phrasing: %v\n", report.Features.IsAbsurd == 1.0))
	sb.WriteString(fmt.Sprintf("- urgency markers: %v, hyperbole markers: %v\n", report.Features.Urgent == 1.0, report.Features.Exaggeration == 1.0))
	if report.Degraded {
		sb.WriteString("- NOTE: the text vectorizer failed; the statistical model saw a neutral zero vector\n")
	}

	if excerpt != "" {
		sb.WriteString("\nText excerpt:\n")
		sb.WriteString(excerpt)
		sb.WriteString("\n")
	}

	sb.WriteString("\nWrite a short Markdown analysis (3-6 sentences).")

	return sb.String()
}
