package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/memora-cli/internal/core/ports/driving"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the natural-language question to answer from the memories"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer        string `json:"answer"`
	Confident     bool   `json:"confident"`
	FallbackQuery string `json:"fallback_query,omitempty"`
}

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the substring to search for in titles, text and domains"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []MemoryOutput `json:"results"`
	Count   int            `json:"count"`
}

// MemoryOutput represents one memory in tool output.
type MemoryOutput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url,omitempty"`
	Domain     string `json:"domain,omitempty"`
	Excerpt    string `json:"excerpt,omitempty"`
	CapturedAt string `json:"captured_at"`
}

// RememberInput is the input schema for the remember tool.
type RememberInput struct {
	Title    string `json:"title,omitempty" jsonschema:"memory title"`
	URL      string `json:"url,omitempty" jsonschema:"source URL"`
	Domain   string `json:"domain,omitempty" jsonschema:"source host"`
	Excerpt  string `json:"excerpt,omitempty" jsonschema:"short summary"`
	FullText string `json:"full_text" jsonschema:"the body text to remember"`
}

// RememberOutput is the output schema for the remember tool.
type RememberOutput struct {
	ID string `json:"id"`
}

// ForgetInput is the input schema for the forget tool.
type ForgetInput struct {
	ID string `json:"id" jsonschema:"the memory ID to remove"`
}

// ForgetOutput is the output schema for the forget tool.
type ForgetOutput struct {
	Removed bool `json:"removed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question from the captured memories",
	}, s.handleAsk)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Plain substring search over the memories",
	}, s.handleSearch)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remember",
		Description: "Store a new memory",
	}, s.handleRemember)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "forget",
		Description: "Remove a memory by ID",
	}, s.handleForget)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer := s.assistant.Answer(ctx, input.Question)

	output := AskOutput{
		Answer:    answer.Text,
		Confident: answer.Confident,
	}
	if answer.FallbackQuery != nil {
		output.FallbackQuery = *answer.FallbackQuery
	}
	return nil, output, nil
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.memories.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]MemoryOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = MemoryOutput{
			ID:         results[i].ID,
			Title:      results[i].Title,
			URL:        results[i].URL,
			Domain:     results[i].Domain,
			Excerpt:    results[i].Excerpt,
			CapturedAt: results[i].CapturedAt.Format(time.RFC3339),
		}
	}
	return nil, output, nil
}

// handleRemember handles the remember tool invocation.
func (s *Server) handleRemember(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RememberInput,
) (*mcp.CallToolResult, RememberOutput, error) {
	mem, err := s.memories.Capture(ctx, driving.CaptureInput{
		Title:    input.Title,
		URL:      input.URL,
		Domain:   input.Domain,
		Excerpt:  input.Excerpt,
		FullText: input.FullText,
	})
	if err != nil {
		return nil, RememberOutput{}, err
	}
	return nil, RememberOutput{ID: mem.ID}, nil
}

// handleForget handles the forget tool invocation.
func (s *Server) handleForget(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ForgetInput,
) (*mcp.CallToolResult, ForgetOutput, error) {
	if err := s.memories.Remove(ctx, input.ID); err != nil {
		return nil, ForgetOutput{}, err
	}
	return nil, ForgetOutput{Removed: true}, nil
}
