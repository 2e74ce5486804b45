package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/memora-cli/internal/core/domain"
)

var exportOutput string

var importCmd = &cobra.Command{
	Use:   "import [file...]",
	Short: "Import memories from capture exports",
	Long: `Imports memories from JSON capture exports (single object or array)
or plain text files. Duplicate URLs inside the dedup window are
skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export [id...]",
	Short: "Export memories as JSON",
	Long: `Exports the whole collection as JSON, or only the memories with the
given IDs.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"write to file instead of stdout")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	total := 0
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}

		n, err := memoryService.Import(cmd.Context(), path, f)
		f.Close() //nolint:errcheck
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		total += n
	}

	cmd.Printf("✅ %d document(s) importé(s).\n", total)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	out := cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOutput, err)
		}
		defer f.Close()
		out = f
	}

	var err error
	if len(args) > 0 {
		err = exportByID(cmd, args, out)
	} else {
		err = memoryService.Export(cmd.Context(), out)
	}
	if err != nil {
		return err
	}

	if exportOutput != "" {
		cmd.Printf("✅ Export écrit dans %s\n", exportOutput)
	}
	return nil
}

// exportByID writes only the selected memories, in the requested order.
func exportByID(cmd *cobra.Command, ids []string, out io.Writer) error {
	selected := make([]domain.Memory, 0, len(ids))
	for _, id := range ids {
		mem, err := memoryService.Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", id, err)
		}
		selected = append(selected, *mem)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(selected); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}
