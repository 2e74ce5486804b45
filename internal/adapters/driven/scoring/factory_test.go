package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/memora-cli/internal/analysis/tokens"
	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

func TestNewScorer_Strategies(t *testing.T) {
	tok := tokens.NewTokenizer(domain.LanguageFrench)

	for _, strategy := range []domain.ScorerStrategy{domain.ScorerTFIDF, domain.ScorerSubstring} {
		settings := domain.AnswerSettings{Strategy: strategy}
		scorer, err := NewScorer(settings, tok)
		require.NoError(t, err)
		assert.Equal(t, strategy, scorer.Strategy())
		assert.Equal(t, strategy.DefaultThreshold(), scorer.ConfidenceThreshold())
		assert.Equal(t, settings.EffectiveThreshold(), scorer.ConfidenceThreshold())
	}
}

func TestNewScorer_CustomThreshold(t *testing.T) {
	tok := tokens.NewTokenizer(domain.LanguageFrench)

	scorer, err := NewScorer(domain.AnswerSettings{
		Strategy:            domain.ScorerTFIDF,
		ConfidenceThreshold: 0.9,
	}, tok)
	require.NoError(t, err)
	assert.Equal(t, 0.9, scorer.ConfidenceThreshold())
}

func TestNewScorer_UnknownStrategy(t *testing.T) {
	tok := tokens.NewTokenizer(domain.LanguageFrench)

	_, err := NewScorer(domain.AnswerSettings{Strategy: "cosine"}, tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
