package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/memora-cli/internal/adapters/driven/capture"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the capture inbox and import dropped files",
	Long: `Watches the inbox directory and imports any capture file dropped
into it. Browser-side capture tooling writes into this directory;
memora picks the files up, stores them, then removes them.

Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if memoryService == nil {
		return errors.New("memory service not configured")
	}

	watcher, err := capture.NewWatcher(cfg.Capture.InboxDir, memoryService)
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", watcher.InboxDir())
	return watcher.Run(cmd.Context())
}
