package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsoncanvas/internal/adapters/sqlite"
	"jsoncanvas/internal/config"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened documents",
	Long: `List documents recently opened with jsoncanvas, most recent first.

The index is maintained by the TUI and lives under the user cache
directory (override with JSONCANVAS_RECENTS).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		recents := sqlite.NewRecents()
		if err := recents.Open(config.RecentsPath()); err != nil {
			return fmt.Errorf("failed to open recents index: %w", err)
		}
		defer recents.Close()

		docs, err := recents.List(recentLimit)
		if err != nil {
			return err
		}

		for _, d := range docs {
			if d.Label != "" {
				fmt.Printf("%s\t%s\t%s\n", d.OpenedAt.Format("2006-01-02 15:04"), d.Path, d.Label)
			} else {
				fmt.Printf("%s\t%s\n", d.OpenedAt.Format("2006-01-02 15:04"), d.Path)
			}
		}
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "maximum entries to show")
	rootCmd.AddCommand(recentCmd)
}
