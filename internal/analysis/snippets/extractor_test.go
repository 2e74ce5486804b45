package snippets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const photosynthesisText = "La photosynthèse est le processus par lequel les plantes " +
	"convertissent la lumière en énergie chimique. " +
	"Les feuilles captent la lumière grâce à la chlorophylle présente dans les cellules. " +
	"Ce mécanisme produit de l'oxygène comme sous-produit. " +
	"Il pleut souvent en Bretagne au mois de novembre."

func TestExtract_ShortTextReturnedWhole(t *testing.T) {
	got := Extract("La photosynthèse produit de l'oxygène.", []string{"photosynthèse"}, 3)

	require.Len(t, got, 1)
	assert.Equal(t, "La photosynthèse produit de l'oxygène.", got[0])
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Nil(t, Extract("", []string{"photosynthèse"}, 3))
	assert.Nil(t, Extract("   ", []string{"photosynthèse"}, 3))
}

func TestExtract_KeywordSentencesOnly(t *testing.T) {
	got := Extract(photosynthesisText, []string{"photosynthèse", "lumière"}, 3)

	require.NotEmpty(t, got)
	for _, snip := range got {
		assert.NotContains(t, snip, "Bretagne", "irrelevant sentence must not be cited")
	}
}

func TestExtract_MostRelevantFirst(t *testing.T) {
	got := Extract(photosynthesisText, []string{"photosynthèse", "lumière"}, 3)

	require.NotEmpty(t, got)
	// The opening sentence matches both keywords and leads the text.
	assert.Contains(t, got[0], "photosynthèse")
	assert.Contains(t, got[0], "lumière")
}

func TestExtract_RespectsMax(t *testing.T) {
	got := Extract(photosynthesisText, []string{"photosynthèse", "lumière", "oxygène"}, 1)

	assert.Len(t, got, 1)
}

func TestExtract_ZeroMaxUsesDefault(t *testing.T) {
	got := Extract(photosynthesisText, []string{"photosynthèse", "lumière", "oxygène"}, 0)

	assert.LessOrEqual(t, len(got), DefaultMax)
	assert.NotEmpty(t, got)
}

func TestExtract_NoKeywordMatch(t *testing.T) {
	got := Extract(photosynthesisText, []string{"astronomie"}, 3)

	assert.Empty(t, got)
}

func TestExtract_DeduplicatesNearIdentical(t *testing.T) {
	prefix := strings.Repeat("photosynthèse et lumière dans les plantes vertes ", 3)
	text := prefix + "fin une. " + prefix + "fin deux. Autre chose sans rapport aucun ici."

	got := Extract(text, []string{"photosynthèse"}, 3)

	// Both sentences share the first hundred runes; only one survives.
	assert.Len(t, got, 1)
}

func TestSplitSentences_DropsFragments(t *testing.T) {
	got := splitSentences("Oui. Les feuilles captent la lumière du soleil toute la journée. Non!")

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "feuilles")
}
