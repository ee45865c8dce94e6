package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/verinews/verinews/internal/model"
	"github.com/verinews/verinews/internal/modelfile"
	"github.com/verinews/verinews/internal/pipeline"
)

// buildConfig layers viper settings over the compiled-in defaults
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if p := viper.GetString("model.vectorizer_path"); p != "" {
		cfg.Model.VectorizerPath = p
	}
	if p := viper.GetString("model.classifier_path"); p != "" {
		cfg.Model.ClassifierPath = p
	}
	if d := viper.GetInt("detector.expected_dim"); d > 0 {
		cfg.Detector.ExpectedDim = d
	}
	if phrases := viper.GetStringSlice("detector.absurd_phrases"); len(phrases) > 0 {
		cfg.Detector.AbsurdPhrases = phrases
	}
	if markers := viper.GetStringSlice("detector.authority_markers"); len(markers) > 0 {
		cfg.Detector.AuthorityMarkers = markers
	}
	if markers := viper.GetStringSlice("detector.urgency_markers"); len(markers) > 0 {
		cfg.Detector.UrgencyMarkers = markers
	}
	if markers := viper.GetStringSlice("detector.hyperbole_markers"); len(markers) > 0 {
		cfg.Detector.HyperboleMarkers = markers
	}
	if dir := viper.GetString("cache.dir"); dir != "" {
		cfg.Cache.Dir = dir
	}
	if path := viper.GetString("feedback.path"); path != "" {
		cfg.Feedback.Path = path
	}

	cfg.Output.Verbose = verbose

	return cfg
}

// loadBundle loads the trained model artifacts into an immutable bundle
func loadBundle(cfg *model.Config) (pipeline.ModelBundle, error) {
	vectorizer, err := modelfile.LoadTFIDF(cfg.Model.VectorizerPath)
	if err != nil {
		return pipeline.ModelBundle{}, fmt.Errorf("load vectorizer: %w", err)
	}

	classifier, err := modelfile.LoadLogistic(cfg.Model.ClassifierPath)
	if err != nil {
		return pipeline.ModelBundle{}, fmt.Errorf("load classifier: %w", err)
	}

	return pipeline.ModelBundle{
		Vectorizer:  vectorizer,
		Classifier:  classifier,
		ExpectedDim: cfg.Detector.ExpectedDim,
	}, nil
}

// configureLLM enables LLM analysis on the config, resolving the API
// key from the environment
func configureLLM(cfg *model.Config, provider, llmModel string) error {
	cfg.LLM.Provider = provider
	cfg.LLM.Model = llmModel

	switch provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama needs no API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return nil
}
