package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verinews/verinews/internal/model"
	"github.com/verinews/verinews/internal/pipeline"
)

var (
	checkFile    string
	checkJSON    string
	checkMD      string
	checkTimeout time.Duration
	checkNoCache bool
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Classify a news text as real or fake",
	Long: `Check classifies a pasted news text:
- Known physically-impossible claims are rejected without model inference
- Otherwise the text is normalized, vectorized, and scored by the
  trained model
- Authority-source citations boost the real-news probability during
  calibration

The text comes from the arguments, from --file, or from stdin.

Example:
  verinews check "新华社报道：经调查，该事件系谣言。"
  verinews check --file article.txt --json report.json --md report.md
  cat article.txt | verinews check --llm --llm-provider openai`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFile, "file", "", "read the news text from a file")
	checkCmd.Flags().StringVar(&checkJSON, "json", "", "output JSON path (optional)")
	checkCmd.Flags().StringVar(&checkMD, "md", "", "output Markdown path (optional)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 2*time.Minute, "overall timeout")
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "disable the verdict cache")

	// LLM flags
	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM analysis of the verdict")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Cache.Enabled = !checkNoCache
	if llmEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
	}

	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, bundle)
	if err != nil {
		return err
	}

	report, err := p.Classify(ctx, text)
	if err != nil {
		if errors.Is(err, model.ErrEmptyInput) {
			return fmt.Errorf("no news content to check: paste a full article, not an empty line")
		}
		var infErr *model.InferenceError
		if errors.As(err, &infErr) {
			return fmt.Errorf("model inference failed (check the model artifacts): %w", infErr)
		}
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Checked %d characters\n", len([]rune(text)))
		if report.Degraded {
			fmt.Fprintln(os.Stderr, "! Vectorizer degraded to a neutral zero vector")
		}
	}

	return p.RenderReport(report, checkJSON, checkMD, verbose)
}

// readText resolves the input text from args, --file, or stdin
func readText(args []string) (string, error) {
	if checkFile != "" {
		data, err := os.ReadFile(checkFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
