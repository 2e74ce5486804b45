// Package file loads memora configuration from a TOML file.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

// Config is the on-disk configuration, stored at
// ~/.memora/config.toml. Missing file or fields fall back to
// defaults, so a fresh install needs no configuration at all.
type Config struct {
	Answer    AnswerConfig              `toml:"answer"`
	Store     StoreConfig               `toml:"store"`
	WebSearch WebSearchConfig           `toml:"websearch"`
	Capture   CaptureConfig             `toml:"capture"`
	Intents   map[string]IntentPatterns `toml:"intents"`
	StopWords StopWordsConfig           `toml:"stopwords"`
}

// AnswerConfig tunes the retrieval pipeline.
type AnswerConfig struct {
	// Strategy selects the relevance scorer: "tfidf" or "substring".
	Strategy string `toml:"strategy"`

	// ConfidenceThreshold overrides the strategy's calibrated cutoff.
	// Zero keeps the default.
	ConfidenceThreshold float64 `toml:"confidence_threshold"`

	// MaxSnippets bounds how many passages an answer cites.
	MaxSnippets int `toml:"max_snippets"`

	// Language selects stop words and intent patterns ("fr", "en").
	Language string `toml:"language"`
}

// StoreConfig tunes capture policy.
type StoreConfig struct {
	// MaxMemories bounds the collection size.
	MaxMemories int `toml:"max_memories"`

	// DedupWindowMinutes rejects same-URL re-captures inside this
	// window.
	DedupWindowMinutes int `toml:"dedup_window_minutes"`

	// DataDir overrides the database location.
	DataDir string `toml:"data_dir"`
}

// WebSearchConfig tunes the fallback web search.
type WebSearchConfig struct {
	// EngineURL is the search URL prefix the query is appended to.
	EngineURL string `toml:"engine_url"`
}

// CaptureConfig tunes the capture inbox watcher.
type CaptureConfig struct {
	// InboxDir is the directory watched for dropped capture files.
	InboxDir string `toml:"inbox_dir"`
}

// IntentPatterns overrides the built-in patterns per intent, keyed by
// intent name under a language table, e.g. [intents.fr].
type IntentPatterns map[string][]string

// StopWordsConfig extends the built-in stop-word list.
type StopWordsConfig struct {
	Extra []string `toml:"extra"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Answer: AnswerConfig{
			Strategy:    domain.ScorerTFIDF.String(),
			MaxSnippets: 3,
			Language:    domain.LanguageFrench.String(),
		},
		Store: StoreConfig{
			MaxMemories:        500,
			DedupWindowMinutes: 5,
		},
		WebSearch: WebSearchConfig{
			EngineURL: "https://www.google.com/search?q=",
		},
	}
}

// Load reads the config file at path, or the default location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".memora", "config.toml")
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// AnswerSettings converts the answer section to domain settings.
func (c *Config) AnswerSettings() (domain.AnswerSettings, error) {
	strategy := domain.ScorerStrategy(c.Answer.Strategy)
	if !strategy.IsValid() {
		return domain.AnswerSettings{}, fmt.Errorf(
			"%w: scorer strategy %q", domain.ErrInvalidInput, c.Answer.Strategy)
	}
	lang := domain.Language(c.Answer.Language)
	if !lang.IsValid() {
		return domain.AnswerSettings{}, fmt.Errorf(
			"%w: language %q", domain.ErrInvalidInput, c.Answer.Language)
	}
	return domain.AnswerSettings{
		Strategy:            strategy,
		ConfidenceThreshold: c.Answer.ConfidenceThreshold,
		MaxSnippets:         c.Answer.MaxSnippets,
		Language:            lang,
	}, nil
}

// StoreSettings converts the store section to domain settings.
func (c *Config) StoreSettings() domain.StoreSettings {
	return domain.StoreSettings{
		MaxMemories: c.Store.MaxMemories,
		DedupWindow: time.Duration(c.Store.DedupWindowMinutes) * time.Minute,
	}
}

// IntentOverrides returns the pattern overrides for the configured
// language, keyed by intent.
func (c *Config) IntentOverrides() map[domain.Intent][]string {
	patterns, ok := c.Intents[c.Answer.Language]
	if !ok {
		return nil
	}
	out := make(map[domain.Intent][]string, len(patterns))
	for name, list := range patterns {
		intent := domain.Intent(name)
		if intent.IsValid() {
			out[intent] = list
		}
	}
	return out
}
