package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/verinews/verinews/internal/model"
)

// ClassifyFunc classifies one batch input (a pasted text or a URL,
// depending on the batch mode)
type ClassifyFunc func(ctx context.Context, input string) (*model.Report, error)

// ClassifyJob classifies a single input line
type ClassifyJob struct {
	Input string
	Run   ClassifyFunc
}

// Execute runs the classification
func (j *ClassifyJob) Execute(ctx context.Context) Result {
	report, err := j.Run(ctx, j.Input)
	return &ClassifyResult{
		Input:  j.Input,
		Report: report,
		Err:    err,
	}
}

// ClassifyResult is the outcome for one batch input
type ClassifyResult struct {
	Input  string
	Report *model.Report
	Err    error
}

// GetError returns the job error, if any
func (r *ClassifyResult) GetError() error {
	return r.Err
}

// BatchProcessor classifies many inputs concurrently
type BatchProcessor struct {
	run         ClassifyFunc
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(run ClassifyFunc, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		run:         run,
		concurrency: concurrency,
	}
}

// ProcessInputs classifies the inputs on the worker pool
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*ClassifyResult {
	if len(inputs) == 0 {
		return []*ClassifyResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&ClassifyJob{Input: input, Run: b.run})
	}

	results := pool.Wait()

	out := make([]*ClassifyResult, len(results))
	for i, result := range results {
		out[i] = result.(*ClassifyResult)
	}

	return out
}

// ProcessFile classifies the inputs listed in a file, one per line
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*ClassifyResult, error) {
	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.ProcessInputs(ctx, inputs), nil
}

// ReadInputsFromFile reads one input per line, skipping blank lines and
// comments and dropping duplicates
func ReadInputsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
