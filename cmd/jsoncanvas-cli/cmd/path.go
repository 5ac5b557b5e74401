package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsoncanvas/internal/domain"
)

var pathCmd = &cobra.Command{
	Use:   "path <path>",
	Short: "Validate a path and print its canonical form",
	Long: `Parse a bracket path and print it back in canonical form. Exits
non-zero when the path does not parse.

Examples:
  jsoncanvas-cli path '$["user"]["tags"][0]'
  jsoncanvas-cli path '$'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := domain.ParsePath(args[0])
		if err != nil {
			return err
		}
		fmt.Println(parsed.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
