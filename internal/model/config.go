package model

import "time"

// Config holds the complete application configuration
type Config struct {
	Detector    DetectorConfig    `yaml:"detector" json:"detector"`
	Calibration CalibrationConfig `yaml:"calibration" json:"calibration"`
	Model       ModelConfig       `yaml:"model" json:"model"`
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	Feedback    FeedbackConfig    `yaml:"feedback" json:"feedback"`
}

// DetectorConfig holds the marker lists and feature dimensions used by
// the heuristic extractor and the absurdity gate.
//
// The phrase lists ship with compiled-in defaults and can be overridden
// from the config file. AbsurdPhrases is ordered: the gate reports the
// first match in list order.
type DetectorConfig struct {
	ExpectedDim      int      `yaml:"expected_dim" json:"expected_dim"`
	AbsurdPhrases    []string `yaml:"absurd_phrases" json:"absurd_phrases"`
	AuthorityMarkers []string `yaml:"authority_markers" json:"authority_markers"`
	UrgencyMarkers   []string `yaml:"urgency_markers" json:"urgency_markers"`
	HyperboleMarkers []string `yaml:"hyperbole_markers" json:"hyperbole_markers"`
}

// CalibrationConfig controls the post-hoc probability adjustment
type CalibrationConfig struct {
	ReliableBoost float64 `yaml:"reliable_boost" json:"reliable_boost"`
	RealCeiling   float64 `yaml:"real_ceiling" json:"real_ceiling"`
}

// ModelConfig points at the trained model artifacts
type ModelConfig struct {
	VectorizerPath string `yaml:"vectorizer_path" json:"vectorizer_path"`
	ClassifierPath string `yaml:"classifier_path" json:"classifier_path"`
}

// HTTPConfig controls article fetching for scan mode
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" json:"respect_robots"`
	RatePerSecond float64       `yaml:"rate_per_second" json:"rate_per_second"`
	RateBurst     int           `yaml:"rate_burst" json:"rate_burst"`
	HTTPProxy     string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy" json:"no_proxy"`
}

// CacheConfig controls verdict caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
	Dir     string        `yaml:"dir" json:"dir"` // empty: memory only
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" json:"batch_workers"`
}

// LLMConfig controls the optional post-verdict analysis
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // openai, anthropic, ollama, ""
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// FeedbackConfig controls where misclassification reports are appended
type FeedbackConfig struct {
	Path string `yaml:"path" json:"path"`
}

// DefaultConfig returns the built-in configuration defaults.
// The marker lists target literal phrases in the raw text, so they are
// matched case- and punctuation-sensitively.
func DefaultConfig() *Config {
	return &Config{
		Detector: DetectorConfig{
			ExpectedDim: 204,
			AbsurdPhrases: []string{
				"月球爆炸", "太阳消失", "地球停转", "长生不老", "穿越古代",
			},
			AuthorityMarkers: []string{"新华社", "人民日报", "官方"},
			UrgencyMarkers:   []string{"必看", "紧急", "速看"},
			HyperboleMarkers: []string{"震惊", "最牛", "100%"},
		},
		Calibration: CalibrationConfig{
			ReliableBoost: 1.7,
			RealCeiling:   0.97,
		},
		Model: ModelConfig{
			VectorizerPath: "models/tfidf_vectorizer.json",
			ClassifierPath: "models/classifier.json",
		},
		HTTP: HTTPConfig{
			Timeout:       30 * time.Second,
			UserAgent:     "Verinews/0.1 (+https://github.com/verinews/verinews)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
			RatePerSecond: 2,
			RateBurst:     5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 600,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		Feedback: FeedbackConfig{
			Path: "user_feedback/feedback.jsonl",
		},
	}
}
