package tfidf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/memora-cli/internal/analysis/tokens"
	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

func newScorer() *Scorer {
	return NewScorer(tokens.NewTokenizer(domain.LanguageFrench), 0)
}

func TestNewScorer_DefaultThreshold(t *testing.T) {
	s := newScorer()
	assert.Equal(t, domain.ScorerTFIDF.DefaultThreshold(), s.ConfidenceThreshold())
	assert.Equal(t, domain.ScorerTFIDF, s.Strategy())
}

func TestNewScorer_CustomThreshold(t *testing.T) {
	s := NewScorer(tokens.NewTokenizer(domain.LanguageFrench), 0.8)
	assert.Equal(t, 0.8, s.ConfidenceThreshold())
}

func TestScore_AlignedWithInput(t *testing.T) {
	s := newScorer()
	memories := []domain.Memory{
		{Title: "Photosynthèse", FullText: "La photosynthèse convertit la lumière."},
		{Title: "Cuisine", FullText: "Recette de la tarte aux pommes."},
	}

	scores := s.Score("photosynthèse", memories)

	require.Len(t, scores, 2)
	assert.Greater(t, scores[0], 0.0)
	assert.Equal(t, 0.0, scores[1])
}

func TestScore_RelevantOutranksIrrelevant(t *testing.T) {
	s := newScorer()
	memories := []domain.Memory{
		{Title: "Recettes bretonnes", FullText: "Crêpes et galettes de sarrasin."},
		{Title: "Photosynthesis", FullText: "Photosynthesis is the process used by plants to convert light into chemical energy."},
	}

	scores := s.Score("Qu'est-ce que la photosynthèse ?", memories)

	require.Len(t, scores, 2)
	assert.Greater(t, scores[1], scores[0])
	assert.GreaterOrEqual(t, scores[1], s.ConfidenceThreshold())
}

func TestScore_TitleBonus(t *testing.T) {
	s := newScorer()
	text := "Les panneaux produisent une énergie verte toute l'année."
	// Same tokens in both titles; only the first contains the raw query.
	memories := []domain.Memory{
		{Title: "Énergie verte", FullText: text},
		{Title: "Verte énergie", FullText: text},
	}

	scores := s.Score("énergie verte", memories)

	require.Len(t, scores, 2)
	assert.InDelta(t, 0.5, scores[0]-scores[1], 1e-9)
}

func TestScore_TitleBonusWithoutTokenMatch(t *testing.T) {
	s := newScorer()
	// A word fragment never prefix-matches a document token, so the
	// whole score rides on title containment.
	memories := []domain.Memory{
		{Title: "Architecture des microservices", FullText: "Découper un monolithe en services."},
		{Title: "Recettes bretonnes", FullText: "Crêpes et galettes de sarrasin."},
	}

	scores := s.Score("tecture", memories)

	require.Len(t, scores, 2)
	assert.InDelta(t, 0.5, scores[0], 1e-9)
	assert.Equal(t, 0.0, scores[1])
	assert.Greater(t, scores[0], scores[1])
	assert.GreaterOrEqual(t, scores[0], s.ConfidenceThreshold())
}

func TestScore_EmptyQuery(t *testing.T) {
	s := newScorer()
	memories := []domain.Memory{{Title: "Photosynthèse", FullText: "Texte."}}

	assert.Equal(t, []float64{0}, s.Score("", memories))
	assert.Equal(t, []float64{0}, s.Score("le la les", memories))
}

func TestScore_NoMemories(t *testing.T) {
	s := newScorer()
	assert.Empty(t, s.Score("photosynthèse", nil))
}

func TestScore_Deterministic(t *testing.T) {
	s := newScorer()
	memories := []domain.Memory{
		{Title: "A", FullText: "La photosynthèse des plantes vertes."},
		{Title: "B", FullText: "La photosynthèse expliquée simplement."},
	}

	first := s.Score("photosynthèse plantes", memories)
	second := s.Score("photosynthèse plantes", memories)

	assert.Equal(t, first, second)
}

func TestScore_FrequencyMatters(t *testing.T) {
	s := newScorer()
	memories := []domain.Memory{
		{Title: "A", FullText: "photosynthèse photosynthèse photosynthèse"},
		{Title: "B", FullText: "photosynthèse et autres sujets divers variés"},
	}

	scores := s.Score("photosynthèse", memories)

	assert.Greater(t, scores[0], scores[1])
}
