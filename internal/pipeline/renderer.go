package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/verinews/verinews/internal/llm"
	"github.com/verinews/verinews/internal/model"
)

// Renderer writes classification reports as JSON, Markdown, and a
// stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var sb strings.Builder

	sb.WriteString("# News Authenticity Report\n\n")
	if report.SourceURL != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n\n", report.SourceURL))
	}
	sb.WriteString(fmt.Sprintf("Checked: %s\n\n", report.CheckedAt.Format("2006-01-02 15:04:05 MST")))

	switch report.Verdict.Label {
	case model.LabelFake:
		sb.WriteString(fmt.Sprintf("## Verdict: FAKE (confidence %.1f%%)\n\n", report.Verdict.Confidence*100))
	default:
		sb.WriteString(fmt.Sprintf("## Verdict: REAL (confidence %.1f%%)\n\n", report.Verdict.Confidence*100))
	}
	if report.Verdict.Reason != "" {
		sb.WriteString(fmt.Sprintf("> %s\n\n", report.Verdict.Reason))
	}

	sb.WriteString("## Probabilities\n\n")
	sb.WriteString(fmt.Sprintf("| real | fake |\n|------|------|\n| %.4f | %.4f |\n\n", report.Probabilities.Real, report.Probabilities.Fake))

	sb.WriteString("## Content Features\n\n")
	sb.WriteString(fmt.Sprintf("- Length: %.0f characters, %.0f sentence(s)\n", report.Features.Length, report.Features.Sentences))
	sb.WriteString(fmt.Sprintf("- Authority source cited: %s\n", yesNo(report.Features.Reliable == 1.0)))
	sb.WriteString(fmt.Sprintf("- Absurd claim phrasing: %s\n", yesNo(report.Features.IsAbsurd == 1.0)))
	sb.WriteString(fmt.Sprintf("- Urgency markers: %s, hyperbole markers: %s\n\n", yesNo(report.Features.Urgent == 1.0), yesNo(report.Features.Exaggeration == 1.0)))

	if len(report.Signals) > 0 {
		sb.WriteString("## Signals\n\n")
		for _, sig := range report.Signals {
			sb.WriteString(fmt.Sprintf("- **%s** [%s]: %s\n", sig.Type, sig.Severity, sig.Description))
		}
		sb.WriteString("\n")
	}

	if report.Degraded {
		sb.WriteString("> Note: text vectorization failed for this input; the statistical model scored a neutral zero vector.\n\n")
	}

	if r.includeFooter {
		sb.WriteString("---\n\nGenerated by verinews. The verdict reflects heuristic and statistical signals, not editorial judgement; verify important stories through official channels.\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderLLMMarkdown writes the optional LLM analysis to its own file
func (r *Renderer) RenderLLMMarkdown(markdown string, path string) error {
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write LLM analysis: %w", err)
	}
	return nil
}

// RenderSummary prints a one-screen summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	switch report.Verdict.Label {
	case model.LabelFake:
		fmt.Printf("⚠️  FAKE (confidence %.1f%%)\n", report.Verdict.Confidence*100)
	default:
		fmt.Printf("✅ REAL (confidence %.1f%%)\n", report.Verdict.Confidence*100)
	}

	if report.Verdict.Reason != "" {
		fmt.Printf("   %s\n", report.Verdict.Reason)
	}

	for _, sig := range report.Signals {
		if sig.Severity != model.SeverityInfo {
			fmt.Printf("   [%s] %s\n", sig.Severity, sig.Description)
		}
	}
}

// RenderReport renders the report to the configured outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		llmPath := strings.TrimSuffix(mdPath, ".md") + ".llm.md"
		if err := p.renderer.RenderLLMMarkdown(llm.RenderSeparateMarkdown(report.LLM), llmPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write LLM analysis: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote LLM analysis: %s\n", llmPath)
		}
	}

	p.renderer.RenderSummary(report)

	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
