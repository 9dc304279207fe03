package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waypost-dev/waypost/transition"
)

var (
	resolveArgs    []string
	resolveLenient bool
	resolveAs      string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <route-table.json> <name>",
	Short: "Resolve a named transition and print its hypermedia rendering",
	Long: `Resolve looks up a named route in the route table, applies the given
arguments, and prints the resulting link, query, or template as JSON.
By default safe transitions render as links and unsafe ones as templates.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(args[0])
		if err != nil {
			return err
		}

		callArgs := make(map[string]any, len(resolveArgs))
		for _, pair := range resolveArgs {
			k, v, found := strings.Cut(pair, "=")
			if !found || k == "" {
				return fmt.Errorf("invalid --arg %q, expected key=value", pair)
			}
			callArgs[k] = v
		}

		var opts []transition.Option
		if resolveLenient {
			opts = append(opts, transition.Lenient())
		}
		t, err := transition.NewResolver(reg, opts...).Resolve(args[1], callArgs)
		if err != nil {
			return err
		}

		var out any
		switch resolveAs {
		case "link":
			out = t.Link("")
		case "query":
			out = t.Query()
		case "template":
			out = t.Template(nil)
		case "":
			if t.IsSafe() {
				out = t.Link("")
			} else {
				out = t.Template(nil)
			}
		default:
			return fmt.Errorf("unknown rendering %q, expected link, query, or template", resolveAs)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	resolveCmd.Flags().StringArrayVar(&resolveArgs, "arg", nil, "transition argument as key=value (repeatable)")
	resolveCmd.Flags().BoolVar(&resolveLenient, "lenient", false, "ignore arguments the route does not declare")
	resolveCmd.Flags().StringVar(&resolveAs, "as", "", "force rendering: link, query, or template")
}
