package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsoncanvas/internal/adapters/filesystem"
	"jsoncanvas/internal/config"
	"jsoncanvas/internal/ports"
)

var (
	filePath string
	store    ports.DocumentStore
)

var rootCmd = &cobra.Command{
	Use:   "jsoncanvas-cli",
	Short: "CLI for inspecting and editing JSON documents by path",
	Long: `jsoncanvas-cli is a command-line interface for the jsoncanvas
document model.

It addresses subtrees of a JSON document with bracket paths like
$["user"]["tags"][0], prints them, and applies keyed edits that rewrite
only the containers along the edited path.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = filesystem.NewStore(filePath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", config.DocumentPath(), "path to the JSON document")
}

// GetStore returns the initialized document store
func GetStore() ports.DocumentStore {
	return store
}
