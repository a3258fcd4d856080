package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/friends"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/page"

	"github.com/spf13/cobra"
)

func (a *app) friendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Friends, requests and user search",
	}
	cmd.AddCommand(
		a.friendsListCmd(),
		a.friendsSearchCmd(),
		a.friendsAddCmd(),
		a.friendsRespondCmd(),
		a.friendsRemoveCmd(),
	)
	return cmd
}

func (a *app) friendsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Incoming and outgoing requests and friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			out := cmd.OutOrStdout()

			var view friends.View
			if a.useDemo(ctx, out) {
				view = friends.BuildView(demo.Default().Friends)
			} else {
				f, err := a.api.ListFriends(ctx)
				if err != nil {
					return fmt.Errorf("%s: %w", friends.MsgLoadError, err)
				}
				view = friends.BuildView(*f)
			}

			printFriendList(out, "Incoming Requests", view.Incoming)
			printFriendList(out, "Outgoing Requests", view.Outgoing)
			printFriendList(out, "Friends", view.Friends)
			return nil
		},
	}
}

func printFriendList(w io.Writer, title string, list friends.List) {
	fmt.Fprintf(w, "== %s ==\n", title)
	if list.Placeholder != "" {
		fmt.Fprintln(w, list.Placeholder)
		return
	}
	for _, row := range list.Rows {
		line := fmt.Sprintf("#%d  %s", row.UserID, row.Label)
		if row.Status != "" {
			line += "  " + row.Status
		}
		fmt.Fprintln(w, line)
	}
}

func (a *app) friendsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search users by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			query := strings.TrimSpace(args[0])
			if utf8.RuneCountInString(query) < friends.MinSearchLength {
				fmt.Fprintf(out, "Type at least %d characters.\n", friends.MinSearchLength)
				return nil
			}

			users, err := a.api.SearchUsers(a.ctx(cmd), query)
			if err != nil {
				return fmt.Errorf("%s: %w", friends.MsgSearchError, err)
			}

			view := friends.BuildSearchView(query, users)
			if view.Message != "" {
				fmt.Fprintln(out, view.Message)
				return nil
			}
			for _, row := range view.Rows {
				fmt.Fprintf(out, "#%d  %s\n", row.UserID, row.Label)
			}
			return nil
		},
	}
}

func (a *app) friendsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <user-id>",
		Short: "Send a friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			friendID, err := page.ParseID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.api.SendFriendRequest(a.ctx(cmd), friendID); err != nil {
				return fmt.Errorf("%s: %w", friends.MsgRequestFailed, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), friends.MsgRequestSent)
			return nil
		},
	}
}

func (a *app) friendsRespondCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "respond <user-id> <accept|decline>",
		Short: "Accept or decline a friend request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			otherUserID, err := page.ParseID(args[0])
			if err != nil {
				return err
			}
			action, err := grunga.ParseFriendAction(args[1])
			if err != nil {
				return errors.New(friends.MsgInvalidAction)
			}

			if _, err := a.api.RespondFriendRequest(a.ctx(cmd), otherUserID, action); err != nil {
				return fmt.Errorf("%s: %w", friends.MsgRespondFailed, err)
			}

			message := friends.MsgAccepted
			if action == grunga.FriendDecline {
				message = friends.MsgDeclined
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

func (a *app) friendsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <user-id>",
		Short: "Remove a friend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			otherUserID, err := page.ParseID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.api.RemoveFriend(a.ctx(cmd), otherUserID); err != nil {
				return fmt.Errorf("%s: %w", friends.MsgRemoveFailed, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), friends.MsgRemoved)
			return nil
		},
	}
}
