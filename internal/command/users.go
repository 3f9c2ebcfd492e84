package command

import (
	"encoding/json"
	"fmt"

	"github.com/adamavenir/mentions/internal/mention"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

// NewUsersCmd creates the users command.
func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users [pattern]",
		Short: "List mention candidates",
		Long: `List the configured mention candidates.

A pattern starting with @ is matched the way the chat menu matches it.
Any other pattern is a glob over the usernames (e.g. "john*").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			users := ctx.Config.Mentions.Users
			if len(args) == 1 {
				users, err = filterUsers(users, args[0], ctx.Config.Mentions.CaseInsensitive)
				if err != nil {
					return writeCommandError(cmd, err)
				}
			}

			if ctx.JSONMode {
				if users == nil {
					users = []string{}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(users)
			}
			out := cmd.OutOrStdout()
			if len(users) == 0 {
				fmt.Fprintln(out, "No matching users")
				return nil
			}
			for _, user := range users {
				fmt.Fprintf(out, "@%s\n", user)
			}
			return nil
		},
	}

	return cmd
}

func filterUsers(users []string, pattern string, ignoreCase bool) ([]string, error) {
	if len(pattern) > 0 && pattern[0] == mention.Trigger {
		match := mention.SubstringMatch
		if ignoreCase {
			match = mention.FoldedSubstringMatch
		}
		return mention.ComputeVisible(users, pattern, match), nil
	}

	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	var out []string
	for _, user := range users {
		if matcher.Match(user) {
			out = append(out, user)
		}
	}
	return out, nil
}
