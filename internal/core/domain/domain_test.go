package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerConstructors(t *testing.T) {
	confident := ConfidentAnswer("réponse")
	assert.True(t, confident.Confident)
	assert.Nil(t, confident.FallbackQuery)

	fallback := FallbackAnswer("pas sûr", "photosynthèse")
	assert.False(t, fallback.Confident)
	require.NotNil(t, fallback.FallbackQuery)
	assert.Equal(t, "photosynthèse", *fallback.FallbackQuery)

	failure := FailureAnswer("erreur")
	assert.False(t, failure.Confident)
	assert.Nil(t, failure.FallbackQuery)
}

func TestScorerStrategy(t *testing.T) {
	assert.True(t, ScorerTFIDF.IsValid())
	assert.True(t, ScorerSubstring.IsValid())
	assert.False(t, ScorerStrategy("cosine").IsValid())

	assert.Equal(t, 0.3, ScorerTFIDF.DefaultThreshold())
	assert.Equal(t, 1.5, ScorerSubstring.DefaultThreshold())

	assert.Contains(t, ScorerTFIDF.Description(), "TF-IDF")
	assert.Contains(t, ScorerSubstring.Description(), "Substring")
	assert.Equal(t, "Unknown", ScorerStrategy("cosine").Description())
}

func TestAnswerSettings_EffectiveThreshold(t *testing.T) {
	s := AnswerSettings{Strategy: ScorerTFIDF}
	assert.Equal(t, 0.3, s.EffectiveThreshold())

	s.ConfidenceThreshold = 0.7
	assert.Equal(t, 0.7, s.EffectiveThreshold())
}

func TestLanguage(t *testing.T) {
	assert.True(t, LanguageFrench.IsValid())
	assert.True(t, LanguageEnglish.IsValid())
	assert.False(t, Language("de").IsValid())
}

func TestIntent_IsValid(t *testing.T) {
	for _, intent := range Intents {
		assert.True(t, intent.IsValid(), intent)
	}
	assert.False(t, Intent("mystery").IsValid())
}

func TestMemory_SearchText(t *testing.T) {
	m := Memory{Title: "Titre", Excerpt: "Résumé", FullText: "Corps"}
	assert.Equal(t, "Titre Résumé Corps", m.SearchText())
}

func TestMemory_Body(t *testing.T) {
	assert.Equal(t, "Corps", Memory{Excerpt: "Résumé", FullText: "Corps"}.Body())
	assert.Equal(t, "Résumé", Memory{Excerpt: "Résumé"}.Body())
}

func TestMemory_JSONShape(t *testing.T) {
	m := Memory{
		ID:         "1",
		Title:      "Titre",
		FullText:   "Corps",
		CapturedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	// The wire format uses the capture export field names.
	assert.Contains(t, string(data), `"fullText":"Corps"`)
	assert.Contains(t, string(data), `"timestamp":"2026-01-02T03:04:05Z"`)
}

func TestDefaults(t *testing.T) {
	store := DefaultStoreSettings()
	assert.Equal(t, 500, store.MaxMemories)
	assert.Equal(t, 5*time.Minute, store.DedupWindow)

	answer := DefaultAnswerSettings()
	assert.Equal(t, ScorerTFIDF, answer.Strategy)
	assert.Equal(t, 3, answer.MaxSnippets)
	assert.Equal(t, LanguageFrench, answer.Language)
}
