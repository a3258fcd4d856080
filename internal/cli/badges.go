package cli

import (
	"errors"
	"fmt"

	"github.com/2beens/grunga/internal/badges"
	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/profile"

	"github.com/spf13/cobra"
)

var sectionTitles = map[badges.SectionID]string{
	badges.SectionBoss:      "Boss Badges",
	badges.SectionStreak:    "Streak Badges",
	badges.SectionChallenge: "Challenge / Milestone Badges",
}

func (a *app) badgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Badges by section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			out := cmd.OutOrStdout()

			var list []grunga.Badge
			if a.useDemo(ctx, out) {
				list = demo.Default().Badges
			} else {
				user, err := a.me(ctx)
				if err != nil {
					return fmt.Errorf("%s: %w", badges.MsgLoadError, err)
				}
				if list, err = a.api.ListUserBadges(ctx, user.UserID); err != nil {
					return fmt.Errorf("%s: %w", badges.MsgLoadError, err)
				}
			}

			for _, section := range badges.BuildView(list).Sections {
				fmt.Fprintf(out, "== %s ==\n", sectionTitles[section.ID])
				if section.Placeholder != nil {
					fmt.Fprintf(out, "[locked] %s\n", section.Placeholder.Label)
					continue
				}
				for _, item := range section.Items {
					state := "locked"
					if item.Unlocked {
						state = "unlocked"
					}
					fmt.Fprintf(out, "[%s] %s\n", state, item.Label)
				}
			}
			return nil
		},
	}
}

func (a *app) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <username-or-id>",
		Short: "A friend's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.ctx(cmd)

			user, err := a.api.GetUser(ctx, args[0])
			if err != nil {
				if errors.Is(err, grunga.ErrNotFound) {
					return errors.New(profile.MsgInvalidFriend)
				}
				return fmt.Errorf("%s: %w", profile.MsgLoadError, err)
			}
			points, err := a.api.GetPoints(ctx, user.UserID)
			if err != nil {
				return fmt.Errorf("%s: %w", profile.MsgLoadError, err)
			}
			list, err := a.api.ListWorkouts(ctx, user.UserID)
			if err != nil {
				return fmt.Errorf("%s: %w", profile.MsgLoadError, err)
			}
			userBadges, err := a.api.ListUserBadges(ctx, user.UserID)
			if err != nil {
				return fmt.Errorf("%s: %w", profile.MsgLoadError, err)
			}

			view := profile.BuildView(*user, points, list, userBadges)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, view.Name)
			fmt.Fprintf(out, "Streak: %d  Total: %d  Weekly: %d  Daily: %d  Workouts: %d\n",
				view.Streak, view.Total, view.Weekly, view.Daily, view.WorkoutCount)
			if view.BadgesEmpty != "" {
				fmt.Fprintln(out, view.BadgesEmpty)
				return nil
			}
			for _, b := range view.Badges {
				fmt.Fprintf(out, "- %s (%s)\n", b.Name, b.Image)
			}
			return nil
		},
	}
}
