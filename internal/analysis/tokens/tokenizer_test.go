package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

func TestNewTokenizer(t *testing.T) {
	tok := NewTokenizer(domain.LanguageFrench)
	require.NotNil(t, tok)
}

func TestTokenize_DropsStopWordsAndShortTokens(t *testing.T) {
	tok := NewTokenizer(domain.LanguageFrench)

	got := tok.Tokenize("Qu'est-ce que la photosynthèse dans les plantes ?")

	assert.Equal(t, []string{"photosynthèse", "plantes"}, got)
}

func TestTokenize_KeepsDuplicates(t *testing.T) {
	tok := NewTokenizer(domain.LanguageFrench)

	got := tok.Tokenize("photosynthèse photosynthèse chlorophylle")

	assert.Equal(t, []string{"photosynthèse", "photosynthèse", "chlorophylle"}, got)
}

func TestTokenize_Empty(t *testing.T) {
	tok := NewTokenizer(domain.LanguageFrench)

	assert.Empty(t, tok.Tokenize(""))
	assert.Empty(t, tok.Tokenize("   !!! ??? "))
}

func TestTokenize_ExtraStopWords(t *testing.T) {
	tok := NewTokenizer(domain.LanguageFrench, "Chlorophylle")

	got := tok.Tokenize("chlorophylle photosynthèse")

	assert.Equal(t, []string{"photosynthèse"}, got)
}

func TestKeywords_DeduplicatesPreservingOrder(t *testing.T) {
	tok := NewTokenizer(domain.LanguageFrench)

	got := tok.Keywords("plantes photosynthèse plantes chlorophylle photosynthèse")

	assert.Equal(t, []string{"plantes", "photosynthèse", "chlorophylle"}, got)
}

func TestKeywords_Idempotent(t *testing.T) {
	tok := NewTokenizer(domain.LanguageFrench)

	first := tok.Keywords("Comment fonctionne la photosynthèse ?")
	second := tok.Keywords("Comment fonctionne la photosynthèse ?")

	assert.Equal(t, first, second)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "photosynthese", Fold("Photosynthèse"))
	assert.Equal(t, "francais", Fold("Français"))
	assert.Equal(t, "deja", Fold("DÉJÀ"))
}

func TestStem_LongWordsLoseTwoRunes(t *testing.T) {
	assert.Equal(t, "photosynthes", Stem("photosynthèse"))
	assert.Equal(t, "procedu", Stem("procédure"))
}

func TestStem_ShortWordsKeptWhole(t *testing.T) {
	assert.Equal(t, "plante", Stem("plante"))
	assert.Equal(t, "eau", Stem("eau"))
}

func TestMatchKeyword_CrossLanguageVariant(t *testing.T) {
	// The French keyword must match the English spelling of the term.
	assert.True(t, MatchKeyword("Photosynthesis is the process used by plants", "photosynthèse"))
}

func TestMatchKeyword_AccentInsensitive(t *testing.T) {
	assert.True(t, MatchKeyword("la procedure complete", "procédure"))
	assert.False(t, MatchKeyword("rien à voir ici", "photosynthèse"))
}

func TestEnglishStopWords(t *testing.T) {
	tok := NewTokenizer(domain.LanguageEnglish)

	got := tok.Tokenize("what is the meaning of photosynthesis")

	assert.NotContains(t, got, "what")
	assert.NotContains(t, got, "the")
	assert.Contains(t, got, "photosynthesis")
}
