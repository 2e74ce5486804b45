package driving

import (
	"context"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

// AssistantService answers natural-language questions against the
// captured memory collection.
type AssistantService interface {
	// Answer produces a rendered answer for the query, plus a
	// confidence-gated signal telling the caller whether to offer an
	// external web search. It never returns an error: every failure is
	// absorbed into a fixed apology answer.
	Answer(ctx context.Context, query string) domain.Answer
}
