// Package cli implements the memora command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/memora-cli/internal/adapters/driven/browser"
	configfile "github.com/custodia-labs/memora-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/memora-cli/internal/adapters/driven/scoring"
	"github.com/custodia-labs/memora-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/memora-cli/internal/analysis/intents"
	"github.com/custodia-labs/memora-cli/internal/analysis/tokens"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/memora-cli/internal/core/services"
	"github.com/custodia-labs/memora-cli/internal/logger"
)

// Services wired once before any command runs. Commands read these
// package-level references; tests swap them for fakes.
var (
	cfg              *configfile.Config
	store            *sqlite.Store
	assistantService driving.AssistantService
	memoryService    driving.MemoryService
	webSearcher      driven.WebSearcher
)

var (
	verboseFlag bool
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "memora",
	Short: "Personal memory assistant for captured web pages",
	Long: `Memora keeps a local collection of captured web pages and answers
natural-language questions against it. When the collection cannot
answer confidently, memora offers to hand the question to a web
search instead.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print pipeline details to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.memora/config.toml)")
}

// Execute runs the CLI. It is the program entry point.
func Execute() {
	defer closeStore()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeStore()
		os.Exit(1)
	}
}

// initServices loads configuration and wires the service graph.
// Runs once before any command.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	var err error
	cfg, err = configfile.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	answerSettings, err := cfg.AnswerSettings()
	if err != nil {
		return err
	}

	store, err = sqlite.NewStore(cfg.Store.DataDir, cfg.StoreSettings())
	if err != nil {
		return fmt.Errorf("opening memory store: %w", err)
	}

	tokenizer := tokens.NewTokenizer(answerSettings.Language, cfg.StopWords.Extra...)
	classifier, err := intents.NewClassifier(answerSettings.Language, cfg.IntentOverrides())
	if err != nil {
		return fmt.Errorf("building intent classifier: %w", err)
	}
	scorer, err := scoring.NewScorer(answerSettings, tokenizer)
	if err != nil {
		return err
	}
	logger.Debug("Scorer: %s, threshold %.2f",
		scorer.Strategy().Description(), scorer.ConfidenceThreshold())

	memoryService = services.NewMemoryService(store)
	assistantService = services.NewAssistantService(
		store, scorer, tokenizer, classifier, answerSettings.MaxSnippets)
	webSearcher = browser.NewSearcher(cfg.WebSearch.EngineURL)

	return nil
}

func closeStore() {
	if store != nil {
		store.Close() //nolint:errcheck
		store = nil
	}
}
