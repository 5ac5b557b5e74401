package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jsoncanvas/internal/application"
	"jsoncanvas/internal/application/commands"
	"jsoncanvas/internal/domain"
)

var setCmd = &cobra.Command{
	Use:   "set <path> <key=value>...",
	Short: "Apply keyed edits to the node at a path",
	Long: `Apply one or more key=value edits to the node at the given path and
persist the rewritten document. Only the containers along the path are
rewritten; untouched siblings are carried over as-is.

Values parse as JSON literals where possible (42, true, null, "quoted"),
otherwise they are taken as strings.

Examples:
  jsoncanvas-cli set '$["user"]' name=Alice
  jsoncanvas-cli set '$["user"]' name=Alice age=42 admin=true`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := domain.ParsePath(args[0])
		if err != nil {
			return err
		}

		edits, err := parseEditArgs(args[1:])
		if err != nil {
			return err
		}

		ctx := context.Background()

		resolveCmd := commands.NewResolveCommand(GetStore(), path)
		resolved, err := resolveCmd.Execute()
		if err != nil {
			if err == application.ErrNotFound {
				return fmt.Errorf("no value at %s", path)
			}
			return err
		}

		editCmd := commands.NewEditCommand(GetStore(), &resolved.Node, edits)
		if err := editCmd.Validate(); err != nil {
			return err
		}
		result, err := editCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

// parseEditArgs turns key=value arguments into an edit set. Values are
// parsed as JSON literals, falling back to plain strings.
func parseEditArgs(args []string) (domain.EditSet, error) {
	edits := make(domain.EditSet, 0, len(args))
	for _, arg := range args {
		key, raw, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid edit %q: expected key=value", arg)
		}

		value, err := domain.Parse(raw)
		if err != nil {
			value = domain.String(raw)
		}
		edits = append(edits, domain.Edit{Key: key, Value: value})
	}
	return edits, nil
}

func init() {
	rootCmd.AddCommand(setCmd)
}
