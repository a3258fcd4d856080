package cli

import (
	"fmt"

	"github.com/2beens/grunga/internal/identity"

	"github.com/spf13/cobra"
)

func (a *app) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show the current demo user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Current demo user: %s (known: %v)\n", a.currentUser(), a.users.All())
			return nil
		},
	}
	cmd.AddCommand(a.userSwitchCmd())
	return cmd
}

func (a *app) userSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch [name]",
		Short: "Switch the demo user, picking interactively when no name is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				picked, err := a.opts.Picker("Demo user", a.users.All())
				if err != nil {
					return err
				}
				name = picked
			}

			if !a.users.IsKnown(name) {
				return fmt.Errorf("%w: %s", identity.ErrUnknownUser, name)
			}

			a.state.DemoUser = name
			if err := SaveState(a.opts.StatePath, a.state); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Switched to %s.\n", name)
			return nil
		},
	}
}
