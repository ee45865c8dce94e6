// Package pipeline sequences the classification stages into one
// Classify call: absurdity gate, normalization, feature assembly,
// model inference, confidence calibration, verdict.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/verinews/verinews/internal/cache"
	"github.com/verinews/verinews/internal/calibrate"
	"github.com/verinews/verinews/internal/feature"
	"github.com/verinews/verinews/internal/llm"
	"github.com/verinews/verinews/internal/model"
	"github.com/verinews/verinews/internal/normalize"
	"github.com/verinews/verinews/internal/vector"
)

// Classifier is the external pre-trained model collaborator. Label
// convention: 0 = real, 1 = fake; probabilities are ordered (real,
// fake). Implementations must be safe for concurrent read-only use.
type Classifier interface {
	Predict(vec []float32) (int, error)
	PredictProbabilities(vec []float32) (real, fake float64, err error)
}

// ModelBundle holds the trained model collaborators. Built once at
// startup and treated as immutable afterwards; no package-level model
// state exists.
type ModelBundle struct {
	Vectorizer  vector.Vectorizer
	Classifier  Classifier
	ExpectedDim int
}

// Pipeline orchestrates one classification run. Classify is
// synchronous and shares no mutable state between calls, so a single
// Pipeline serves concurrent callers.
type Pipeline struct {
	bundle     ModelBundle
	normalizer *normalize.Normalizer
	extractor  *feature.Extractor
	gate       *feature.Gate
	assembler  *vector.Assembler
	calibrator *calibrate.Calibrator
	renderer   *Renderer
	analyst    *llm.Analyst // optional, nil if disabled
	store      cache.Cache  // optional, nil if disabled
	cacheTTL   time.Duration
	config     *model.Config
}

// NewPipeline creates a pipeline from configuration and a model bundle
func NewPipeline(cfg *model.Config, bundle ModelBundle) (*Pipeline, error) {
	if bundle.Vectorizer == nil || bundle.Classifier == nil {
		return nil, fmt.Errorf("model bundle incomplete: vectorizer and classifier are required")
	}
	if bundle.ExpectedDim <= 0 {
		return nil, fmt.Errorf("model bundle: invalid expected dimension %d", bundle.ExpectedDim)
	}

	normalizer, err := normalize.New()
	if err != nil {
		return nil, fmt.Errorf("load segmenter dictionary: %w", err)
	}

	extractor := feature.NewExtractor(&cfg.Detector)

	p := &Pipeline{
		bundle:     bundle,
		normalizer: normalizer,
		extractor:  extractor,
		gate:       feature.NewGate(cfg.Detector.AbsurdPhrases),
		assembler:  vector.NewAssembler(bundle.Vectorizer, extractor, bundle.ExpectedDim),
		calibrator: calibrate.New(cfg.Detector.AuthorityMarkers, cfg.Calibration.ReliableBoost, cfg.Calibration.RealCeiling),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			p.store = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			p.store = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
		}
		p.cacheTTL = cfg.Cache.TTL
	}

	if cfg.LLM.Provider != "" {
		analyst, err := llm.NewAnalyst(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			p.analyst = analyst
		}
	}

	return p, nil
}

// Classify runs the full decision pipeline over one submitted text.
//
// Terminal outcomes: a Fake or Real report, model.ErrEmptyInput for
// blank submissions, or *model.InferenceError when the classifier call
// fails. Vectorizer failures never error; the assembler substitutes a
// zero vector and the report is marked Degraded.
func (p *Pipeline) Classify(ctx context.Context, rawText string) (*model.Report, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, model.ErrEmptyInput
	}

	if report, ok := p.cachedReport(rawText); ok {
		return report, nil
	}

	report := &model.Report{
		CheckedAt: time.Now().UTC(),
		Features:  p.extractor.Extract(rawText),
	}

	// Fast path: unambiguous fabricated claims skip the model entirely
	if phrase, ok := p.gate.Check(rawText); ok {
		report.Verdict = model.Verdict{
			Label:      model.LabelFake,
			Confidence: 1.0,
			Reason:     fmt.Sprintf("absurd claim detected: %s", phrase),
		}
		report.Probabilities = model.ProbabilityPair{Real: 0, Fake: 1}
		report.Signals = buildSignals(report, phrase)

		p.finish(ctx, report, rawText)
		return report, nil
	}

	normalized := p.normalizer.Normalize(rawText)

	assembled := p.assembler.Assemble(normalized, rawText)
	report.Degraded = assembled.Degraded

	label, err := p.bundle.Classifier.Predict(assembled.Vector)
	if err != nil {
		return nil, &model.InferenceError{Stage: "predict", Err: err}
	}

	rawReal, rawFake, err := p.bundle.Classifier.PredictProbabilities(assembled.Vector)
	if err != nil {
		return nil, &model.InferenceError{Stage: "probabilities", Err: err}
	}

	pair := p.calibrator.Calibrate(model.ProbabilityPair{Real: rawReal, Fake: rawFake}, rawText)
	report.Probabilities = pair

	if label == 1 {
		report.Verdict = model.Verdict{Label: model.LabelFake, Confidence: pair.Fake}
	} else {
		report.Verdict = model.Verdict{Label: model.LabelReal, Confidence: pair.Real}
	}

	report.Signals = buildSignals(report, "")

	p.finish(ctx, report, rawText)
	return report, nil
}

// finish runs the post-verdict steps: optional LLM analysis and cache
// storage. Neither can change the verdict.
func (p *Pipeline) finish(ctx context.Context, report *model.Report, rawText string) {
	if p.analyst.IsEnabled() {
		analysis, err := p.analyst.GenerateAnalysis(ctx, *report, rawText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM analysis failed: %v\n", err)
		} else if analysis != nil {
			report.LLM = analysis
		}
	}

	p.storeReport(rawText, report)
}

// cachedReport looks up a previous verdict for identical text
func (p *Pipeline) cachedReport(rawText string) (*model.Report, bool) {
	if p.store == nil {
		return nil, false
	}

	data, found := p.store.Get(cache.Key(rawText))
	if !found {
		return nil, false
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		_ = p.store.Delete(cache.Key(rawText))
		return nil, false
	}

	return &report, true
}

func (p *Pipeline) storeReport(rawText string, report *model.Report) {
	if p.store == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = p.store.Set(cache.Key(rawText), data, p.cacheTTL)
}

// Renderer returns the report renderer configured for this pipeline
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}
