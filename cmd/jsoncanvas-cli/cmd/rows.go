package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsoncanvas/internal/application"
	"jsoncanvas/internal/application/commands"
	"jsoncanvas/internal/domain"
)

var rowsCmd = &cobra.Command{
	Use:   "rows [path]",
	Short: "List the rows of the node at a path",
	Long: `Show the node at a path as its flat row list: one line per direct
child, with container children collapsed to {…} or […].

Examples:
  jsoncanvas-cli rows
  jsoncanvas-cli rows '$["user"]'`,
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

		for i, row := range result.Node.Rows {
			fmt.Println(formatRow(i, row))
		}
		return nil
	},
}

func formatRow(i int, row domain.Row) string {
	label := row.Key
	if label == "" {
		label = fmt.Sprintf("[%d]", i)
	}

	switch row.Kind {
	case domain.RowObject:
		return fmt.Sprintf("%s: {…}", label)
	case domain.RowArray:
		return fmt.Sprintf("%s: […]", label)
	default:
		text, err := domain.Serialize(row.Value)
		if err != nil {
			return fmt.Sprintf("%s: ?", label)
		}
		return fmt.Sprintf("%s: %s", label, text)
	}
}

func init() {
	rootCmd.AddCommand(rowsCmd)
}
