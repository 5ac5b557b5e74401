package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsoncanvas/internal/application"
	"jsoncanvas/internal/application/commands"
	"jsoncanvas/internal/domain"
)

var getCmd = &cobra.Command{
	Use:   "get [path]",
	Short: "Print the subtree at a path",
	Long: `Resolve a bracket path against the document and print the subtree
as indented JSON. With no path, prints the whole document.

Examples:
  jsoncanvas-cli get
  jsoncanvas-cli get '$["user"]'
  jsoncanvas-cli get '$["user"]["tags"][0]'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := domain.Path{}
		if len(args) == 1 {
			parsed, err := domain.ParsePath(args[0])
			if err != nil {
				return err
			}
			path = parsed
		}

		resolveCmd := commands.NewResolveCommand(GetStore(), path)
		result, err := resolveCmd.Execute()
		if err != nil {
			if err == application.ErrNotFound {
				return fmt.Errorf("no value at %s", path)
			}
			return err
		}

		text, err := domain.Serialize(result.Value)
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
