package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

func (c *CLI) callCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "call <method> [args...]",
		Short: "Invoke an API endpoint by name",
		Long: `Invoke an API endpoint by name and print the result as JSON.

Arguments that parse as integers are passed as ints, everything else as
strings. Prefix an argument with "s:" to force a string, e.g. s:123.

  swagrinth call search sodium 0 5
  swagrinth call get_project sodium
  swagrinth call --list`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return modrinth.Methods(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, m := range modrinth.Methods() {
					sig, _ := modrinth.Signature(m)
					fmt.Fprintln(out, sig)
				}
				return nil
			}

			ctx := cmd.Context()
			client, err := c.modrinthClient(ctx)
			if err != nil {
				return err
			}
			callArgs := parseCallArgs(args[1:])
			loggerFromContext(ctx).Debug("invoke", "method", args[0], "args", callArgs)

			res, err := client.Invoke(ctx, args[0], callArgs...)
			if err != nil {
				return err
			}
			return printJSON(out, res)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list available methods and their parameters")
	return cmd
}

// parseCallArgs converts command-line words into Invoke arguments.
func parseCallArgs(raw []string) []any {
	args := make([]any, len(raw))
	for i, s := range raw {
		if rest, ok := strings.CutPrefix(s, "s:"); ok {
			args[i] = rest
			continue
		}
		if n, err := strconv.Atoi(s); err == nil {
			args[i] = n
			continue
		}
		args[i] = s
	}
	return args
}
