// Package tui provides the interactive chat session for memora.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driving"
)

const (
	msgBusy         = "🔄 Je traite déjà une requête, un instant..."
	msgSearchOpened = "🌐 Recherche web lancée dans votre navigateur."
	msgSearchDenied = "👍 D'accord, pas de recherche web."
	msgSearchFailed = "⚠️ Impossible d'ouvrir le navigateur."
	placeholderText = "Posez une question, ou « oui » / « non » pour la recherche web"
	maxVisibleLines = 200
)

// answerReceived carries the assistant's answer back into the update loop.
type answerReceived struct {
	answer domain.Answer
}

// searchOpened reports the outcome of a web search launch.
type searchOpened struct {
	err error
}

// chatLine is one rendered entry in the transcript.
type chatLine struct {
	fromUser bool
	text     string
}

// Chat is the bubbletea model for the interactive session.
type Chat struct {
	assistant driving.AssistantService
	memories  driving.MemoryService
	searcher  driven.WebSearcher

	input      textinput.Model
	transcript []chatLine

	ctx     context.Context
	width   int
	height  int
	busy    bool
	pending *string // fallback query awaiting oui/non

	userStyle      lipgloss.Style
	assistantStyle lipgloss.Style
	mutedStyle     lipgloss.Style
}

// NewChat creates the chat model wired to the given services.
func NewChat(
	assistant driving.AssistantService,
	memories driving.MemoryService,
	searcher driven.WebSearcher,
) *Chat {
	ti := textinput.New()
	ti.Placeholder = placeholderText
	ti.Prompt = "❯ "
	ti.CharLimit = 500
	ti.Focus()

	return &Chat{
		assistant: assistant,
		memories:  memories,
		searcher:  searcher,
		input:     ti,
		ctx:       context.Background(),
		width:     80,
		height:    24,

		userStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true),
		assistantStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		mutedStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// WithContext sets the context used for service calls.
func (c *Chat) WithContext(ctx context.Context) *Chat {
	c.ctx = ctx
	return c
}

// Init starts the text input cursor blink.
func (c *Chat) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the chat session.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.input.Width = msg.Width - 4
		return c, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return c, tea.Quit
		case tea.KeyEnter:
			return c.handleSubmit()
		default:
		}

	case answerReceived:
		c.busy = false
		c.pending = msg.answer.FallbackQuery
		c.appendAssistant(msg.answer.Text)
		return c, nil

	case searchOpened:
		c.busy = false
		if msg.err != nil {
			c.appendAssistant(msgSearchFailed)
		} else {
			c.appendAssistant(msgSearchOpened)
		}
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// handleSubmit processes the entered line.
func (c *Chat) handleSubmit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(c.input.Value())
	if line == "" {
		return c, nil
	}
	if c.busy {
		c.appendAssistant(msgBusy)
		return c, nil
	}

	c.input.SetValue("")
	c.transcript = append(c.transcript, chatLine{fromUser: true, text: line})

	switch strings.ToLower(line) {
	case "/quit", "/exit":
		return c, tea.Quit
	}

	// A pending fallback intercepts oui/non before normal questions.
	if c.pending != nil {
		query := *c.pending
		switch strings.ToLower(line) {
		case "oui", "o", "yes", "y":
			c.pending = nil
			c.busy = true
			return c, c.openSearch(query)
		case "non", "n", "no":
			c.pending = nil
			c.appendAssistant(msgSearchDenied)
			return c, nil
		}
		c.pending = nil
	}

	c.busy = true
	return c, c.ask(line)
}

// ask answers the question off the update loop.
func (c *Chat) ask(question string) tea.Cmd {
	return func() tea.Msg {
		return answerReceived{answer: c.assistant.Answer(c.ctx, question)}
	}
}

// openSearch launches the web search in the browser.
func (c *Chat) openSearch(query string) tea.Cmd {
	return func() tea.Msg {
		if c.searcher == nil {
			return searchOpened{err: ErrNoSearcher}
		}
		return searchOpened{err: c.searcher.Open(c.ctx, query)}
	}
}

func (c *Chat) appendAssistant(text string) {
	c.transcript = append(c.transcript, chatLine{fromUser: false, text: text})
	if len(c.transcript) > maxVisibleLines {
		c.transcript = c.transcript[len(c.transcript)-maxVisibleLines:]
	}
}

// View renders the transcript above the input line.
func (c *Chat) View() string {
	var b strings.Builder

	b.WriteString(c.userStyle.Render("Memora"))
	b.WriteString(c.mutedStyle.Render("  ·  esc pour quitter"))
	b.WriteString("\n\n")

	for _, line := range c.transcript {
		if line.fromUser {
			b.WriteString(c.userStyle.Render("vous ❯ "))
			b.WriteString(line.text)
		} else {
			b.WriteString(c.assistantStyle.Render(line.text))
		}
		b.WriteString("\n\n")
	}

	if c.busy {
		b.WriteString(c.mutedStyle.Render("…"))
		b.WriteString("\n\n")
	}

	b.WriteString(c.input.View())
	b.WriteString("\n")

	return b.String()
}

// Busy reports whether a request is in flight.
func (c *Chat) Busy() bool {
	return c.busy
}

// PendingQuery returns the fallback query awaiting confirmation, if any.
func (c *Chat) PendingQuery() *string {
	return c.pending
}

// Transcript returns the rendered lines so far.
func (c *Chat) Transcript() []string {
	out := make([]string, len(c.transcript))
	for i, line := range c.transcript {
		out[i] = line.text
	}
	return out
}
