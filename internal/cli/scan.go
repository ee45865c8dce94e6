package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verinews/verinews/internal/extract"
	"github.com/verinews/verinews/internal/pipeline"
)

var (
	scanJSON     string
	scanMD       string
	scanTimeout  time.Duration
	scanUA       string
	scanMaxBytes int64
	scanNoCache  bool
	scanNoRobots bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch an article URL and classify its text",
	Long: `Scan fetches a news article page, extracts the readable text, and
runs the same classification as check. robots.txt is honored and
fetches are rate-limited per domain.

Example:
  verinews scan https://news.example.com/story.html
  verinews scan https://news.example.com/story.html --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanJSON, "json", "", "output JSON path (optional)")
	scanCmd.Flags().StringVar(&scanMD, "md", "", "output Markdown path (optional)")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&scanUA, "ua", "", "HTTP User-Agent override")
	scanCmd.Flags().Int64Var(&scanMaxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&scanNoCache, "no-cache", false, "disable the verdict cache")
	scanCmd.Flags().BoolVar(&scanNoRobots, "no-robots", false, "skip robots.txt checks")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	cfg := buildConfig()
	cfg.Cache.Enabled = !scanNoCache
	cfg.HTTP.MaxBodyBytes = scanMaxBytes
	cfg.HTTP.RespectRobots = !scanNoRobots
	if scanUA != "" {
		cfg.HTTP.UserAgent = scanUA
	}

	bundle, err := loadBundle(cfg)
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, bundle)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Fetching: %s\n", url)
	}

	fetcher := pipeline.NewFetcher(cfg.HTTP)
	fetched, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	article, err := extract.ExtractArticle(fetched.HTML)
	if err != nil {
		return fmt.Errorf("extract article: %w", err)
	}

	text := article.Text
	if article.Title != "" {
		text = article.Title + "。" + text
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d characters\n", len([]rune(text)))
	}

	report, err := p.Classify(ctx, text)
	if err != nil {
		return fmt.Errorf("classify failed: %w", err)
	}

	report.SourceURL = fetched.FinalURL
	report.FetchMeta = &fetched.Meta

	return p.RenderReport(report, scanJSON, scanMD, verbose)
}
