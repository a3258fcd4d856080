package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/2beens/grunga/internal/challenges"
	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/page"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func (a *app) challengesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "List, send and answer challenges",
	}
	cmd.AddCommand(
		a.challengesListCmd(),
		a.challengesSendCmd(),
		a.challengeTransitionCmd(challenges.ActionAccept, "Accept an incoming challenge"),
		a.challengeTransitionCmd(challenges.ActionDecline, "Decline an incoming challenge"),
		a.challengeTransitionCmd(challenges.ActionComplete, "Mark an active challenge completed"),
	)
	return cmd
}

func (a *app) challengesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Incoming, active and completed challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			out := cmd.OutOrStdout()

			var view challenges.View
			if a.useDemo(ctx, out) {
				d := demo.Default()
				view = challenges.BuildView(d.User, d.Challenges, d.UsersByID(), d.Others)
			} else {
				v, err := a.loadChallenges(ctx)
				if err != nil {
					return fmt.Errorf("%s: %w", challenges.MsgLoadError, err)
				}
				view = v
			}

			printSection(out, "Incoming", view.Incoming)
			printSection(out, "Active", view.Active)
			printSection(out, "Completed", view.Completed)
			return nil
		},
	}
}

// loadChallenges fetches the three boxes one after another; the terminal
// has no render to keep snappy.
func (a *app) loadChallenges(ctx context.Context) (challenges.View, error) {
	me, err := a.me(ctx)
	if err != nil {
		return challenges.View{}, err
	}

	others := a.otherUsers(ctx, me.Username)
	usersByID := map[int]grunga.User{me.UserID: *me}
	for _, u := range others {
		usersByID[u.UserID] = u
	}

	var errs error
	lists := make(map[grunga.ChallengeBox][]grunga.Challenge, 3)
	for _, box := range []grunga.ChallengeBox{grunga.BoxIncoming, grunga.BoxActive, grunga.BoxCompleted} {
		list, err := a.api.ListChallenges(ctx, box)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		lists[box] = list
	}
	if errs != nil {
		return challenges.View{}, errs
	}

	return challenges.BuildView(*me, lists, usersByID, others), nil
}

func (a *app) otherUsers(ctx context.Context, current string) []grunga.User {
	var others []grunga.User
	for _, name := range a.users.Others(current) {
		u, err := a.api.GetUser(ctx, name)
		if err != nil {
			log.Debugf("load demo user %s: %s", name, err)
			continue
		}
		others = append(others, *u)
	}
	return others
}

func printSection(w io.Writer, title string, section challenges.Section) {
	fmt.Fprintf(w, "== %s ==\n", title)
	if section.Placeholder != "" {
		fmt.Fprintln(w, section.Placeholder)
		return
	}
	for _, card := range section.Cards {
		fmt.Fprintf(w, "#%d  %s\n    %s\n", card.ChallengeID, card.Title, card.Meta)
	}
}

func (a *app) challengesSendCmd() *cobra.Command {
	var (
		to     string
		target int
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Challenge another demo user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)

			if to == "" {
				picked, err := a.opts.Picker("Challenge who", a.users.Others(a.currentUser()))
				if err != nil {
					return err
				}
				to = picked
			}
			if to == "" {
				return errors.New(challenges.MsgPickRecipient)
			}
			if target <= 0 {
				return errors.New(challenges.MsgPositiveTarget)
			}

			me, err := a.me(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", challenges.MsgSendFailed, err)
			}
			recipient, err := a.api.GetUser(ctx, to)
			if err != nil {
				return fmt.Errorf("%s: %w", challenges.MsgPickRecipient, err)
			}
			if recipient.UserID == me.UserID {
				return errors.New(challenges.MsgPickRecipient)
			}

			if _, err := a.api.SendChallenge(ctx, grunga.NewChallenge{
				FromUserID: me.UserID,
				ToUserID:   recipient.UserID,
				Kind:       "WORKOUT",
				Target:     target,
			}); err != nil {
				return fmt.Errorf("%s: %w", challenges.MsgSendFailed, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), challenges.MsgSent)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient username or id, picked interactively when empty")
	cmd.Flags().IntVar(&target, "target", 0, "points target")
	return cmd
}

func (a *app) challengeTransitionCmd(action challenges.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " <challenge-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			challengeID, err := page.ParseID(args[0])
			if err != nil {
				return err
			}

			ctx := a.ctx(cmd)
			me, err := a.me(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", challenges.MsgUpdateFailed, err)
			}

			transition := a.api.AcceptChallenge
			switch action {
			case challenges.ActionDecline:
				transition = a.api.DeclineChallenge
			case challenges.ActionComplete:
				transition = a.api.CompleteChallenge
			}
			if _, err := transition(ctx, challengeID, me.UserID); err != nil {
				return fmt.Errorf("%s: %w", challenges.MsgUpdateFailed, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Challenge %d: %s done.\n", challengeID, action)
			return nil
		},
	}
}
