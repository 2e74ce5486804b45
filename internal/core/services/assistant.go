package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/memora-cli/internal/analysis/intents"
	"github.com/custodia-labs/memora-cli/internal/analysis/respond"
	"github.com/custodia-labs/memora-cli/internal/analysis/snippets"
	"github.com/custodia-labs/memora-cli/internal/analysis/tokens"
	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/memora-cli/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// Fixed answer texts. The assistant speaks the capture language.
const (
	msgNoMemories = "📭 Aucun document disponible dans ma mémoire."
	msgFailure    = "⚠️ Désolé, une erreur est survenue lors de l'analyse."
	msgWebSearch  = "\n\n🌐 Je peux lancer une recherche web si vous le souhaitez."
)

// AssistantService answers questions against the memory collection:
// classify intent, extract keywords, rank memories, pull the best
// passages, render, and gate confidence.
type AssistantService struct {
	store      driven.MemoryStore
	scorer     driven.RelevanceScorer
	tokenizer  *tokens.Tokenizer
	classifier *intents.Classifier
	maxSnips   int
}

// NewAssistantService creates an assistant over the given store and
// scorer. maxSnippets bounds how many passages an answer cites; zero
// selects the default.
func NewAssistantService(
	store driven.MemoryStore,
	scorer driven.RelevanceScorer,
	tokenizer *tokens.Tokenizer,
	classifier *intents.Classifier,
	maxSnippets int,
) *AssistantService {
	if maxSnippets <= 0 {
		maxSnippets = snippets.DefaultMax
	}
	return &AssistantService{
		store:      store,
		scorer:     scorer,
		tokenizer:  tokenizer,
		classifier: classifier,
		maxSnips:   maxSnippets,
	}
}

// Answer produces the answer for a query. It never returns an error:
// infrastructure and internal faults are absorbed here into a fixed
// apology answer with no fallback, so an unvalidated query is never
// handed to an external search.
func (s *AssistantService) Answer(ctx context.Context, query string) (answer domain.Answer) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Answer pipeline panic: %v", r)
			answer = domain.FailureAnswer(msgFailure)
		}
	}()

	logger.Section("Answer Pipeline")
	logger.Debug("Query: %q", query)

	memories, err := s.store.GetAll(ctx)
	if err != nil {
		logger.Warn("Reading memories failed: %v", err)
		return domain.FailureAnswer(msgFailure)
	}
	if len(memories) == 0 {
		logger.Debug("Empty collection")
		return domain.FallbackAnswer(msgNoMemories, query)
	}

	intent := s.classifier.Classify(query)
	keywords := s.tokenizer.Keywords(query)
	logger.Debug("Intent: %s, keywords: %v", intent, keywords)

	// A query that tokenises to nothing cannot be ranked; fall back to
	// the plain substring path instead of failing.
	if len(keywords) == 0 {
		logger.Debug("No usable keywords, plain substring fallback")
		return s.plainSearch(ctx, query)
	}

	scores := s.scorer.Score(query, memories)
	best := pickBest(memories, scores)
	logger.Info("Best memory: %q score=%.3f (threshold %.3f)",
		best.Memory.Title, best.Score, s.scorer.ConfidenceThreshold())

	if best.Score <= 0 {
		text := fmt.Sprintf(
			"🤔 Je n'ai pas trouvé d'information spécifique sur %q dans mes documents.\n\n"+
				"J'ai analysé %d document(s) mais les informations ne semblent pas assez précises.",
			query, len(memories))
		return domain.FallbackAnswer(text, query)
	}

	winner := best.Memory
	snips := snippets.Extract(winner.Body(), keywords, s.maxSnips)
	logger.Debug("Snippets: %d", len(snips))

	text := respond.Format(intent, snips, winner.Title)

	if best.Score < s.scorer.ConfidenceThreshold() {
		logger.Debug("Below confidence threshold, offering web search")
		return domain.FallbackAnswer(text+msgWebSearch, query)
	}
	return domain.ConfidentAnswer(text)
}

// plainSearch answers with a simple substring search when the query
// has no rankable keywords.
func (s *AssistantService) plainSearch(ctx context.Context, query string) domain.Answer {
	results, err := s.store.Search(ctx, query)
	if err != nil {
		logger.Warn("Plain search failed: %v", err)
		return domain.FailureAnswer(msgFailure)
	}
	if len(results) == 0 {
		text := fmt.Sprintf("🤔 Je n'ai pas d'information sur %q dans mes documents.", query)
		return domain.FallbackAnswer(text, query)
	}

	text := fmt.Sprintf("📚 J'ai %d document(s) sur ce sujet :\n\n", len(results))
	for i := range results {
		title := results[i].Title
		if title == "" {
			title = results[i].URL
		}
		text += fmt.Sprintf("• %s\n", title)
	}
	return domain.ConfidentAnswer(text)
}

// pickBest pairs each memory with its score and returns the maximum.
// Ties keep the earliest entry, preserving most-recent-first order.
func pickBest(memories []domain.Memory, scores []float64) domain.ScoredMemory {
	best := domain.ScoredMemory{Memory: memories[0], Score: scores[0]}
	for i := 1; i < len(scores); i++ {
		if scores[i] > best.Score {
			best = domain.ScoredMemory{Memory: memories[i], Score: scores[i]}
		}
	}
	return best
}
