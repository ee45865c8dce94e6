package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verinews/verinews/internal/extract"
	"github.com/verinews/verinews/internal/model"
	"github.com/verinews/verinews/internal/pipeline"
	"github.com/verinews/verinews/internal/worker"
)

var (
	batchWorkers int
	batchTimeout time.Duration
	batchURLs    bool
	batchJSON    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Classify many texts or URLs concurrently",
	Long: `Batch reads one input per line (blank lines and # comments are
skipped) and classifies them on a worker pool.

By default each line is treated as a news text; with --urls each line
is fetched as an article URL first.

Example:
  verinews batch headlines.txt
  verinews batch urls.txt --urls --workers 8 --json results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "concurrent classification workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "overall batch timeout")
	batchCmd.Flags().BoolVar(&batchURLs, "urls", false, "treat each line as an article URL")
	batchCmd.Flags().StringVar(&batchJSON, "json", "", "write all reports to a JSON file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Concurrency.BatchWorkers = batchWorkers

	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, bundle)
	if err != nil {
		return err
	}

	run := worker.ClassifyFunc(p.Classify)
	if batchURLs {
		fetcher := pipeline.NewFetcher(cfg.HTTP)
		run = func(ctx context.Context, input string) (*model.Report, error) {
			fetched, err := fetcher.Fetch(ctx, input)
			if err != nil {
				return nil, fmt.Errorf("fetch %s: %w", input, err)
			}
			article, err := extract.ExtractArticle(fetched.HTML)
			if err != nil {
				return nil, fmt.Errorf("extract %s: %w", input, err)
			}
			text := article.Text
			if article.Title != "" {
				text = article.Title + "。" + text
			}
			report, err := p.Classify(ctx, text)
			if err != nil {
				return nil, err
			}
			report.SourceURL = fetched.FinalURL
			report.FetchMeta = &fetched.Meta
			return report, nil
		}
	}

	processor := worker.NewBatchProcessor(run, cfg.Concurrency.BatchWorkers)

	results, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}

	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", truncateInput(res.Input), res.Err)
			continue
		}
		fmt.Printf("%s (%.1f%%)  %s\n", res.Report.Verdict.Label, res.Report.Verdict.Confidence*100, truncateInput(res.Input))
	}

	if batchJSON != "" {
		reports := make([]*model.Report, 0, len(results))
		for _, res := range results {
			if res.Report != nil {
				reports = append(reports, res.Report)
			}
		}
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		if err := os.WriteFile(batchJSON, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %d reports: %s\n", len(reports), batchJSON)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d inputs failed", failures, len(results))
	}

	return nil
}

func truncateInput(input string) string {
	runes := []rune(input)
	if len(runes) > 60 {
		return string(runes[:60]) + "…"
	}
	return input
}
