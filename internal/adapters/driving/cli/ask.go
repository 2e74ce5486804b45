package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	askJSON   bool
	askSearch bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against the captured memories",
	Long: `Answers a natural-language question from the captured collection.
When the answer is not confident enough, memora proposes a web
search; accept with --search or interactively.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	askCmd.Flags().BoolVar(&askSearch, "search", false,
		"open the fallback web search without asking")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(args[0])
	if query == "" {
		return errors.New("empty question")
	}
	if assistantService == nil {
		return errors.New("assistant not configured")
	}

	answer := assistantService.Answer(cmd.Context(), query)

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)

	if answer.FallbackQuery == nil {
		return nil
	}

	if askSearch {
		return webSearcher.Open(cmd.Context(), *answer.FallbackQuery)
	}

	cmd.Printf("\n🔍 Rechercher %q sur le web ? [o/N] ", *answer.FallbackQuery)
	if confirmed(cmd.InOrStdin()) {
		return webSearcher.Open(cmd.Context(), *answer.FallbackQuery)
	}
	return nil
}

// confirmed reads a yes/no reply. French and English affirmatives are
// both accepted.
func confirmed(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "o", "oui", "y", "yes":
		return true
	default:
		return false
	}
}
