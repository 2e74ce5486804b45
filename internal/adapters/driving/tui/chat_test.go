package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

// stubAssistant returns a canned answer and records queries.
type stubAssistant struct {
	answer  domain.Answer
	queries []string
}

func (s *stubAssistant) Answer(_ context.Context, query string) domain.Answer {
	s.queries = append(s.queries, query)
	return s.answer
}

// stubSearcher records opened queries.
type stubSearcher struct {
	opened []string
	err    error
}

func (s *stubSearcher) Open(_ context.Context, query string) error {
	s.opened = append(s.opened, query)
	return s.err
}

func (s *stubSearcher) URL(query string) string { return "https://example.org/?q=" + query }

func typeAndSubmit(t *testing.T, c *Chat, line string) tea.Cmd {
	t.Helper()
	c.input.SetValue(line)
	model, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Same(t, c, model)
	return cmd
}

func TestChat_AskFlow(t *testing.T) {
	assistant := &stubAssistant{answer: domain.ConfidentAnswer("📚 Réponse.")}
	c := NewChat(assistant, nil, &stubSearcher{})

	cmd := typeAndSubmit(t, c, "Qu'est-ce que la photosynthèse ?")
	require.NotNil(t, cmd)
	assert.True(t, c.Busy())

	// Run the command and feed the resulting message back in.
	msg := cmd()
	c.Update(msg)

	assert.False(t, c.Busy())
	assert.Equal(t, []string{"Qu'est-ce que la photosynthèse ?"}, assistant.queries)
	assert.Contains(t, c.View(), "📚 Réponse.")
	assert.Nil(t, c.PendingQuery())
}

func TestChat_BusyRejectsOverlappingRequest(t *testing.T) {
	assistant := &stubAssistant{answer: domain.ConfidentAnswer("ok")}
	c := NewChat(assistant, nil, &stubSearcher{})

	cmd := typeAndSubmit(t, c, "première question")
	require.True(t, c.Busy())

	typeAndSubmit(t, c, "seconde question")
	assert.Contains(t, c.View(), msgBusy)

	// Only the first question ever reaches the assistant.
	c.Update(cmd())
	assert.Len(t, assistant.queries, 1)
}

func TestChat_WebSearchConfirmed(t *testing.T) {
	assistant := &stubAssistant{answer: domain.FallbackAnswer("🤔 Pas sûr.", "photosynthèse")}
	searcher := &stubSearcher{}
	c := NewChat(assistant, nil, searcher)

	cmd := typeAndSubmit(t, c, "photosynthèse")
	c.Update(cmd())
	require.NotNil(t, c.PendingQuery())

	cmd = typeAndSubmit(t, c, "oui")
	require.NotNil(t, cmd)
	c.Update(cmd())

	assert.Equal(t, []string{"photosynthèse"}, searcher.opened)
	assert.Nil(t, c.PendingQuery())
	assert.Contains(t, c.View(), msgSearchOpened)
}

func TestChat_WebSearchDeclined(t *testing.T) {
	assistant := &stubAssistant{answer: domain.FallbackAnswer("🤔 Pas sûr.", "photosynthèse")}
	searcher := &stubSearcher{}
	c := NewChat(assistant, nil, searcher)

	cmd := typeAndSubmit(t, c, "photosynthèse")
	c.Update(cmd())
	require.NotNil(t, c.PendingQuery())

	typeAndSubmit(t, c, "non")

	assert.Empty(t, searcher.opened)
	assert.Nil(t, c.PendingQuery())
	assert.Contains(t, c.View(), msgSearchDenied)
}

func TestChat_PendingClearedByUnrelatedQuestion(t *testing.T) {
	assistant := &stubAssistant{answer: domain.FallbackAnswer("🤔 Pas sûr.", "photosynthèse")}
	c := NewChat(assistant, nil, &stubSearcher{})

	cmd := typeAndSubmit(t, c, "photosynthèse")
	c.Update(cmd())
	require.NotNil(t, c.PendingQuery())

	// Asking something else drops the pending offer and asks normally.
	cmd = typeAndSubmit(t, c, "autre question")
	require.NotNil(t, cmd)
	c.Update(cmd())
	assert.Len(t, assistant.queries, 2)
}

func TestChat_QuitKeys(t *testing.T) {
	c := NewChat(&stubAssistant{}, nil, &stubSearcher{})

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
