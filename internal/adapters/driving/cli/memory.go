package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
	"github.com/custodia-labs/memora-cli/internal/core/ports/driving"
)

var (
	addTitle   string
	addURL     string
	addExcerpt string
	listJSON   bool
	clearForce bool
)

var addCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Capture a memory from a file or stdin",
	Long: `Captures a new memory. Reads the body text from the given file, or
from stdin when no file is provided.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List captured memories",
	RunE:  runList,
}

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a memory by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all memories",
	RunE:  runClear,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "memory title")
	addCmd.Flags().StringVar(&addURL, "url", "", "source URL")
	addCmd.Flags().StringVar(&addExcerpt, "excerpt", "", "short summary")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "skip confirmation")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	var body []byte
	var err error
	name := "stdin"
	if len(args) == 1 {
		name = args[0]
		body, err = os.ReadFile(args[0])
	} else {
		body, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading capture body: %w", err)
	}

	title := addTitle
	if title == "" {
		title = name
	}

	mem, err := memoryService.Capture(cmd.Context(), driving.CaptureInput{
		Title:    title,
		URL:      addURL,
		Domain:   hostOf(addURL),
		Excerpt:  addExcerpt,
		FullText: string(body),
	})
	if err != nil {
		return err
	}

	cmd.Printf("✅ Captured %s (%s)\n", mem.ID, mem.Title)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	memories, err := memoryService.List(cmd.Context())
	if err != nil {
		return err
	}

	if listJSON {
		data, err := json.MarshalIndent(memories, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling memories: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printMemories(cmd, memories)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	if err := memoryService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("removing %s: %w", args[0], err)
	}
	cmd.Println("✅ Document supprimé.")
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	memories, err := memoryService.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(memories) == 0 {
		cmd.Println("📭 Aucun document à supprimer.")
		return nil
	}

	if !clearForce {
		cmd.Printf("Supprimer %d document(s) ? [o/N] ", len(memories))
		if !confirmed(cmd.InOrStdin()) {
			return nil
		}
	}

	if err := memoryService.Clear(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("🗑️ Tous les documents ont été supprimés.")
	return nil
}

// printMemories renders the collection as a compact table.
func printMemories(cmd *cobra.Command, memories []domain.Memory) {
	if len(memories) == 0 {
		cmd.Println("📭 Aucun document.")
		return
	}

	cmd.Printf("%d document(s) :\n\n", len(memories))
	for i := range memories {
		m := &memories[i]
		title := m.Title
		if title == "" {
			title = "Sans titre"
		}
		provenance := m.Domain
		if provenance == "" {
			provenance = "Source inconnue"
		}
		cmd.Printf("  %s  %s\n", m.ID, title)
		cmd.Printf("      %s • %s\n", provenance, m.CapturedAt.Format("2006-01-02"))
	}
}

// hostOf extracts the host part of a URL for provenance display.
func hostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	rest := rawURL
	if _, after, ok := strings.Cut(rest, "://"); ok {
		rest = after
	}
	host, _, _ := strings.Cut(rest, "/")
	return host
}
